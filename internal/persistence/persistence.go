// Package persistence writes the in-memory collections to durable storage.
// Each collection is stored as one JSON document, rewritten in full.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"sync"

	apperrors "pdv/internal/errors"

	"go.uber.org/zap"
)

const (
	Products = "products"
	Clients  = "clients"
	Sales    = "sales"
)

// DocumentStore is the durable side of the adapter.
type DocumentStore interface {
	// Load decodes the named document into dst. found is false when the
	// document does not exist yet.
	Load(ctx context.Context, collection string, dst any) (found bool, err error)
	Save(ctx context.Context, collection string, doc any) error
}

// Collection names a snapshot function to be written under Name.
type Collection struct {
	Name     string
	Snapshot func() any
}

// Syncer serializes writes so a later snapshot is never overwritten by an
// earlier one.
type Syncer struct {
	mu          sync.Mutex
	store       DocumentStore
	collections map[string]Collection
	logger      *zap.Logger
}

func NewSyncer(store DocumentStore, logger *zap.Logger, collections ...Collection) *Syncer {
	byName := make(map[string]Collection, len(collections))
	for _, c := range collections {
		byName[c.Name] = c
	}
	return &Syncer{
		store:       store,
		collections: byName,
		logger:      logger,
	}
}

// Persist snapshots and saves the named collections, in order. Every
// collection is attempted; failures are returned joined as PersistenceErrors.
func (s *Syncer) Persist(ctx context.Context, names ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, name := range names {
		c, ok := s.collections[name]
		if !ok {
			errs = append(errs, apperrors.NewPersistenceError(name, fmt.Errorf("collection not registered")))
			continue
		}
		if err := s.store.Save(ctx, name, c.Snapshot()); err != nil {
			errs = append(errs, apperrors.NewPersistenceError(name, err))
			continue
		}
		s.logger.Debug("collection persisted", zap.String("collection", name))
	}
	return errors.Join(errs...)
}

// Load reads one collection at boot. A missing document yields nil.
func Load[T any](ctx context.Context, store DocumentStore, collection string) ([]T, error) {
	var items []T
	found, err := store.Load(ctx, collection, &items)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", collection, err)
	}
	if !found {
		return nil, nil
	}
	return items, nil
}
