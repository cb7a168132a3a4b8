package dto

import "pdv/internal/domain"

type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1"`
	PaymentMethod string            `json:"paymentMethod" validate:"max=32"`
	ClientID      *int              `json:"clientId"`
}

// SaleItemRequest carries no tags: unknown product ids are reported as not
// found by the sale itself, and quantity rules depend on configuration.
type SaleItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func (r CreateSaleRequest) ToDomain() domain.SaleRequest {
	items := make([]domain.BasketItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.BasketItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}
	return domain.SaleRequest{
		Items:         items,
		PaymentMethod: r.PaymentMethod,
		ClientID:      r.ClientID,
	}
}
