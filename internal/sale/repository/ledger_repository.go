package repository

import (
	"sync"
	"time"

	"pdv/internal/domain"
)

// LedgerRepository is the append-only list of recorded sales.
type LedgerRepository struct {
	mu    sync.RWMutex
	sales []domain.Sale
	now   func() time.Time
}

func NewLedgerRepository(initial []domain.Sale) *LedgerRepository {
	return &LedgerRepository{
		sales: append([]domain.Sale(nil), initial...),
		now:   time.Now,
	}
}

func (r *LedgerRepository) Get(id int) (domain.Sale, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sales {
		if s.ID == id {
			return s.Clone(), true
		}
	}
	return domain.Sale{}, false
}

// List returns the sales in insertion order.
func (r *LedgerRepository) List() []domain.Sale {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Sale, len(r.sales))
	for i, s := range r.sales {
		out[i] = s.Clone()
	}
	return out
}

// Append assigns the id and creation time, then records the sale.
func (r *LedgerRepository) Append(sale domain.Sale) domain.Sale {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, len(r.sales))
	for i, s := range r.sales {
		ids[i] = s.ID
	}

	sale.ID = domain.NextID(ids...)
	sale.CreatedAt = r.now()
	r.sales = append(r.sales, sale.Clone())
	return sale
}

func (r *LedgerRepository) Snapshot() any {
	return r.List()
}
