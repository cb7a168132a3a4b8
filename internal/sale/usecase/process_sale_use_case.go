package usecase

import (
	"context"
	"fmt"
	"strings"

	"pdv/internal/domain"
	apperrors "pdv/internal/errors"
	"pdv/internal/messaging"
	"pdv/internal/messaging/events"
	"pdv/internal/persistence"

	"go.uber.org/zap"
)

type SaleRecorder interface {
	RecordSale(ctx context.Context, req domain.SaleRequest) (domain.Sale, error)
}

type Persister interface {
	Persist(ctx context.Context, names ...string) error
}

type Options struct {
	DefaultPaymentMethod string
	// StrictBasket rejects quantities below 1. Duplicate aggregation is
	// configured on the recorder.
	StrictBasket bool
}

type ProcessSaleUseCase struct {
	recorder  SaleRecorder
	persister Persister
	publisher messaging.Publisher
	logger    *zap.Logger
	opts      Options
}

func NewProcessSaleUseCase(
	recorder SaleRecorder,
	persister Persister,
	publisher messaging.Publisher,
	logger *zap.Logger,
	opts Options,
) *ProcessSaleUseCase {
	if opts.DefaultPaymentMethod == "" {
		opts.DefaultPaymentMethod = domain.DefaultPaymentMethod
	}
	return &ProcessSaleUseCase{
		recorder:  recorder,
		persister: persister,
		publisher: publisher,
		logger:    logger,
		opts:      opts,
	}
}

// ProcessSale records one sale. Persistence and event failures are logged
// and do not undo the sale.
func (uc *ProcessSaleUseCase) ProcessSale(ctx context.Context, req domain.SaleRequest) (domain.Sale, error) {
	uc.logger.Info("sale started", zap.Int("itemCount", len(req.Items)))

	if err := uc.validate(req); err != nil {
		return domain.Sale{}, err
	}

	if strings.TrimSpace(req.PaymentMethod) == "" {
		req.PaymentMethod = uc.opts.DefaultPaymentMethod
	}
	if req.ClientID != nil && *req.ClientID == 0 {
		req.ClientID = nil
	}

	sale, err := uc.recorder.RecordSale(ctx, req)
	if err != nil {
		uc.logger.Info("sale rejected", zap.Error(err))
		return domain.Sale{}, err
	}

	// the sale is committed; a client disconnect must not skip the write or the event
	ctx = context.WithoutCancel(ctx)

	if err := uc.persister.Persist(ctx, persistence.Products, persistence.Sales); err != nil {
		uc.logger.Error("failed to persist sale", zap.Int("saleId", sale.ID), zap.Error(err))
	}

	if err := uc.publisher.Publish(ctx, events.NewSaleCreatedEvent(sale)); err != nil {
		uc.logger.Error("failed to publish sale event", zap.Int("saleId", sale.ID), zap.Error(err))
	}

	uc.logger.Info("sale completed",
		zap.Int("saleId", sale.ID),
		zap.String("total", sale.Total.String()),
		zap.String("paymentMethod", sale.PaymentMethod),
	)
	return sale, nil
}

func (uc *ProcessSaleUseCase) validate(req domain.SaleRequest) error {
	if len(req.Items) == 0 {
		return apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	if !uc.opts.StrictBasket {
		return nil
	}

	var details []apperrors.ValidationDetail
	for i, item := range req.Items {
		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be at least 1",
			})
		}
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
