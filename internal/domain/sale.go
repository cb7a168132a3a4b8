package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultPaymentMethod = "dinheiro"

// BasketItem is one requested line of a sale.
type BasketItem struct {
	ProductID int
	Quantity  int
}

type SaleRequest struct {
	Items         []BasketItem
	PaymentMethod string
	ClientID      *int
}

// SaleLineItem holds the description and unit price as they were when the
// sale was recorded.
type SaleLineItem struct {
	ProductID   int             `json:"productId"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

func NewSaleLineItem(product Product, quantity int) SaleLineItem {
	return SaleLineItem{
		ProductID:   product.ID,
		Description: product.Description,
		UnitPrice:   product.SalePrice,
		Quantity:    quantity,
		Total:       product.SalePrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

type Sale struct {
	ID            int             `json:"id"`
	Items         []SaleLineItem  `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	ClientID      *int            `json:"clientId"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Clone returns a copy that shares nothing mutable with s.
func (s Sale) Clone() Sale {
	out := s
	out.Items = append([]SaleLineItem(nil), s.Items...)
	if s.ClientID != nil {
		id := *s.ClientID
		out.ClientID = &id
	}
	return out
}
