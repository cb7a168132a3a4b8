package service

import (
	"context"

	"pdv/internal/domain"
	apperrors "pdv/internal/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Catalog interface {
	Transact(fn func(view domain.StockView) error) error
}

type Ledger interface {
	Append(sale domain.Sale) domain.Sale
}

// Plan is the outcome of a successful validation pass.
type Plan struct {
	Lines []domain.SaleLineItem
	Total decimal.Decimal
}

// PlanSale validates a basket against lookup without changing anything.
// Lines are checked in request order and the first failure wins. With
// aggregate set, repeated product ids are checked against their combined
// quantity; otherwise each line is checked on its own.
func PlanSale(items []domain.BasketItem, lookup domain.ProductLookup, aggregate bool) (Plan, error) {
	requested := make(map[int]int, len(items))
	if aggregate {
		for _, item := range items {
			requested[item.ProductID] += item.Quantity
		}
	}

	plan := Plan{
		Lines: make([]domain.SaleLineItem, 0, len(items)),
		Total: decimal.Zero,
	}
	for _, item := range items {
		product, ok := lookup.Product(item.ProductID)
		if !ok {
			return Plan{}, apperrors.NewNotFoundError("product", item.ProductID)
		}

		quantity := item.Quantity
		if aggregate {
			quantity = requested[item.ProductID]
		}
		if !product.HasStockFor(quantity) {
			return Plan{}, apperrors.NewInsufficientStockError(product.ID, product.Description, quantity, product.Stock)
		}

		line := domain.NewSaleLineItem(product, item.Quantity)
		plan.Lines = append(plan.Lines, line)
		plan.Total = plan.Total.Add(line.Total)
	}
	return plan, nil
}

type SaleService struct {
	catalog             Catalog
	ledger              Ledger
	logger              *zap.Logger
	aggregateDuplicates bool
}

func NewSaleService(catalog Catalog, ledger Ledger, logger *zap.Logger, aggregateDuplicates bool) *SaleService {
	return &SaleService{
		catalog:             catalog,
		ledger:              ledger,
		logger:              logger,
		aggregateDuplicates: aggregateDuplicates,
	}
}

// RecordSale validates the whole basket, decrements stock and appends the
// sale, all inside one catalog transaction. Nothing is changed when
// validation fails.
func (s *SaleService) RecordSale(ctx context.Context, req domain.SaleRequest) (domain.Sale, error) {
	if err := ctx.Err(); err != nil {
		return domain.Sale{}, err
	}

	var recorded domain.Sale
	err := s.catalog.Transact(func(view domain.StockView) error {
		plan, err := PlanSale(req.Items, view, s.aggregateDuplicates)
		if err != nil {
			return err
		}

		for _, line := range plan.Lines {
			if err := view.DecrementStock(line.ProductID, line.Quantity); err != nil {
				return apperrors.NewInternalError("applying stock decrement", err)
			}
		}

		recorded = s.ledger.Append(domain.Sale{
			Items:         plan.Lines,
			Total:         plan.Total,
			PaymentMethod: req.PaymentMethod,
			ClientID:      req.ClientID,
		})
		return nil
	})
	if err != nil {
		return domain.Sale{}, err
	}

	s.logger.Debug("sale committed",
		zap.Int("saleId", recorded.ID),
		zap.Int("lines", len(recorded.Items)),
	)
	return recorded, nil
}
