package dto

import "pdv/internal/domain"

type CreateClientRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"max=255"`
	Phone string `json:"phone" validate:"max=32"`
}

func (r CreateClientRequest) ToDomain() domain.Client {
	return domain.Client{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}
