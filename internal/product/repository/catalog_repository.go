package repository

import (
	"sync"
	"time"

	"pdv/internal/domain"
	apperrors "pdv/internal/errors"
)

// CatalogRepository is the in-memory catalog. Every mutation, including the
// stock changes made by sales through Transact, happens under mu.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	now      func() time.Time
}

func NewCatalogRepository(initial []domain.Product) *CatalogRepository {
	return &CatalogRepository{
		products: append([]domain.Product(nil), initial...),
		now:      time.Now,
	}
}

func (r *CatalogRepository) Get(id int) (domain.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Product{}, false
	}
	return r.products[i], true
}

func (r *CatalogRepository) List() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Product{}, r.products...)
}

// Create assigns the next id and both timestamps.
func (r *CatalogRepository) Create(product domain.Product) domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, len(r.products))
	for i, p := range r.products {
		ids[i] = p.ID
	}

	now := r.now()
	product.ID = domain.NextID(ids...)
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products = append(r.products, product)
	return product
}

func (r *CatalogRepository) Update(id int, patch domain.ProductPatch) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Product{}, apperrors.NewNotFoundError("product", id)
	}

	patch.Apply(&r.products[i])
	r.products[i].UpdatedAt = r.now()
	return r.products[i], nil
}

func (r *CatalogRepository) Delete(id int) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Product{}, apperrors.NewNotFoundError("product", id)
	}

	removed := r.products[i]
	r.products = append(r.products[:i], r.products[i+1:]...)
	return removed, nil
}

// Transact runs fn with exclusive access to the catalog. No other catalog
// read or write interleaves with fn.
func (r *CatalogRepository) Transact(fn func(view domain.StockView) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return fn(stockView{repo: r})
}

// Snapshot returns a copy of the catalog for persistence.
func (r *CatalogRepository) Snapshot() any {
	return r.List()
}

func (r *CatalogRepository) indexOf(id int) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

// stockView is only handed out while mu is held.
type stockView struct {
	repo *CatalogRepository
}

func (v stockView) Product(id int) (domain.Product, bool) {
	i := v.repo.indexOf(id)
	if i < 0 {
		return domain.Product{}, false
	}
	return v.repo.products[i], true
}

func (v stockView) DecrementStock(id int, quantity int) error {
	i := v.repo.indexOf(id)
	if i < 0 {
		return apperrors.NewNotFoundError("product", id)
	}
	v.repo.products[i].Stock -= quantity
	v.repo.products[i].UpdatedAt = v.repo.now()
	return nil
}
