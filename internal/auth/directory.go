package auth

import (
	"crypto/subtle"

	"pdv/internal/config"
	"pdv/internal/domain"
)

// Directory is the fixed set of operators allowed to log in.
type Directory struct {
	users []domain.User
}

func NewDirectory(users ...domain.User) *Directory {
	return &Directory{users: append([]domain.User(nil), users...)}
}

// DirectoryFromConfig builds a directory holding the configured operator.
func DirectoryFromConfig(cfg config.OperatorConfig) *Directory {
	return NewDirectory(domain.User{
		ID:       cfg.ID,
		Name:     cfg.Name,
		Email:    cfg.Email,
		Password: cfg.Password,
		Role:     cfg.Role,
	})
}

// Authenticate compares both email and password in constant time.
func (d *Directory) Authenticate(email, password string) (domain.User, bool) {
	for _, u := range d.users {
		emailOK := subtle.ConstantTimeCompare([]byte(u.Email), []byte(email))
		passwordOK := subtle.ConstantTimeCompare([]byte(u.Password), []byte(password))
		if emailOK&passwordOK == 1 {
			return u, true
		}
	}
	return domain.User{}, false
}

func (d *Directory) Find(id int) (domain.User, bool) {
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}
