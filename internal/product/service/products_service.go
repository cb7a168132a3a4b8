package service

import (
	"context"

	"pdv/internal/domain"
	apperrors "pdv/internal/errors"
	"pdv/internal/persistence"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	Get(id int) (domain.Product, bool)
	List() []domain.Product
	Create(product domain.Product) domain.Product
	Update(id int, patch domain.ProductPatch) (domain.Product, error)
	Delete(id int) (domain.Product, error)
}

type Persister interface {
	Persist(ctx context.Context, names ...string) error
}

type ProductService struct {
	repo      Repository
	persister Persister
	logger    *zap.Logger
}

func NewService(repo Repository, persister Persister, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		persister: persister,
		logger:    logger,
	}
}

func (s *ProductService) List(ctx context.Context) []domain.Product {
	return s.repo.List()
}

func (s *ProductService) Get(ctx context.Context, id int) (domain.Product, error) {
	p, ok := s.repo.Get(id)
	if !ok {
		return domain.Product{}, apperrors.NewNotFoundError("product", id)
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := checkAmounts(&product.CostPrice, &product.SalePrice, &product.Stock, &product.MinStock); err != nil {
		return domain.Product{}, err
	}
	if product.Unit == "" {
		product.Unit = domain.DefaultUnit
	}

	created := s.repo.Create(product)
	s.logger.Info("product created", zap.Int("productId", created.ID))
	s.persist(ctx)
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id int, patch domain.ProductPatch) (domain.Product, error) {
	if err := checkAmounts(patch.CostPrice, patch.SalePrice, patch.Stock, patch.MinStock); err != nil {
		return domain.Product{}, err
	}

	updated, err := s.repo.Update(id, patch)
	if err != nil {
		return domain.Product{}, err
	}
	s.logger.Info("product updated", zap.Int("productId", id))
	s.persist(ctx)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) (domain.Product, error) {
	removed, err := s.repo.Delete(id)
	if err != nil {
		return domain.Product{}, err
	}
	s.logger.Info("product deleted", zap.Int("productId", id))
	s.persist(ctx)
	return removed, nil
}

// persist never fails the request; the in-memory change already happened.
func (s *ProductService) persist(ctx context.Context) {
	if err := s.persister.Persist(context.WithoutCancel(ctx), persistence.Products); err != nil {
		s.logger.Error("failed to persist products", zap.Error(err))
	}
}

func checkAmounts(costPrice, salePrice *decimal.Decimal, stock, minStock *int) error {
	var details []apperrors.ValidationDetail
	if costPrice != nil && costPrice.IsNegative() {
		details = append(details, apperrors.ValidationDetail{Field: "costPrice", Message: "costPrice must not be negative"})
	}
	if salePrice != nil && salePrice.IsNegative() {
		details = append(details, apperrors.ValidationDetail{Field: "salePrice", Message: "salePrice must not be negative"})
	}
	if stock != nil && *stock < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "stock", Message: "stock must not be negative"})
	}
	if minStock != nil && *minStock < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "minStock", Message: "minStock must not be negative"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
