package service

import (
	"context"
	"errors"
	"testing"

	"pdv/internal/domain"
	apperrors "pdv/internal/errors"
	"pdv/internal/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRepository struct {
	GetFunc    func(id int) (domain.Client, bool)
	ListFunc   func() []domain.Client
	CreateFunc func(client domain.Client) domain.Client
}

func (m *mockRepository) Get(id int) (domain.Client, bool) {
	return m.GetFunc(id)
}

func (m *mockRepository) List() []domain.Client {
	return m.ListFunc()
}

func (m *mockRepository) Create(client domain.Client) domain.Client {
	return m.CreateFunc(client)
}

type mockPersister struct {
	PersistFunc func(ctx context.Context, names ...string) error
}

func (m *mockPersister) Persist(ctx context.Context, names ...string) error {
	return m.PersistFunc(ctx, names...)
}

func TestClientService_Create_PersistsClients(t *testing.T) {
	var persisted []string
	repo := &mockRepository{
		CreateFunc: func(client domain.Client) domain.Client {
			client.ID = 3
			return client
		},
	}
	persister := &mockPersister{
		PersistFunc: func(ctx context.Context, names ...string) error {
			persisted = names
			return nil
		},
	}
	svc := NewService(repo, persister, zap.NewNop())

	created, err := svc.Create(context.Background(), domain.Client{Name: "Ana"})

	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, []string{persistence.Clients}, persisted)
}

func TestClientService_Create_PersistFailureStillSucceeds(t *testing.T) {
	repo := &mockRepository{
		CreateFunc: func(client domain.Client) domain.Client { return client },
	}
	persister := &mockPersister{
		PersistFunc: func(ctx context.Context, names ...string) error {
			return errors.New("read-only filesystem")
		},
	}
	svc := NewService(repo, persister, zap.NewNop())

	_, err := svc.Create(context.Background(), domain.Client{Name: "Ana"})

	assert.NoError(t, err)
}

func TestClientService_Get_NotFound(t *testing.T) {
	repo := &mockRepository{
		GetFunc: func(id int) (domain.Client, bool) { return domain.Client{}, false },
	}
	svc := NewService(repo, &mockPersister{}, zap.NewNop())

	_, err := svc.Get(context.Background(), 8)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestClientService_Create_PersistsAfterClientDisconnect(t *testing.T) {
	var persistCtxErr error
	repo := &mockRepository{
		CreateFunc: func(client domain.Client) domain.Client {
			client.ID = 1
			return client
		},
	}
	persister := &mockPersister{
		PersistFunc: func(ctx context.Context, names ...string) error {
			persistCtxErr = ctx.Err()
			return nil
		},
	}
	svc := NewService(repo, persister, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Create(ctx, domain.Client{Name: "Bruno"})

	require.NoError(t, err)
	assert.NoError(t, persistCtxErr)
}
