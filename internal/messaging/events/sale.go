package events

import (
	"encoding/json"
	"time"

	"pdv/internal/domain"
	"pdv/internal/messaging"

	"github.com/shopspring/decimal"
)

type SaleCreatedEvent struct {
	SaleID        int             `json:"saleId"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	ClientID      *int            `json:"clientId"`
	ItemCount     int             `json:"itemCount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func NewSaleCreatedEvent(sale domain.Sale) SaleCreatedEvent {
	count := 0
	for _, line := range sale.Items {
		count += line.Quantity
	}
	return SaleCreatedEvent{
		SaleID:        sale.ID,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		ClientID:      sale.ClientID,
		ItemCount:     count,
		CreatedAt:     sale.CreatedAt,
	}
}

func (e SaleCreatedEvent) Subject() string {
	return messaging.SaleCreatedSubject
}

func (e SaleCreatedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}
