package repository

import (
	"sync"
	"time"

	"pdv/internal/domain"
)

type ClientRepository struct {
	mu      sync.RWMutex
	clients []domain.Client
	now     func() time.Time
}

func NewClientRepository(initial []domain.Client) *ClientRepository {
	return &ClientRepository{
		clients: append([]domain.Client(nil), initial...),
		now:     time.Now,
	}
}

func (r *ClientRepository) Get(id int) (domain.Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.clients {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Client{}, false
}

func (r *ClientRepository) List() []domain.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Client{}, r.clients...)
}

func (r *ClientRepository) Create(client domain.Client) domain.Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, len(r.clients))
	for i, c := range r.clients {
		ids[i] = c.ID
	}

	client.ID = domain.NextID(ids...)
	client.CreatedAt = r.now()
	r.clients = append(r.clients, client)
	return client
}

func (r *ClientRepository) Snapshot() any {
	return r.List()
}
