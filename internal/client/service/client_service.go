package service

import (
	"context"

	"pdv/internal/domain"
	apperrors "pdv/internal/errors"
	"pdv/internal/persistence"

	"go.uber.org/zap"
)

type Repository interface {
	Get(id int) (domain.Client, bool)
	List() []domain.Client
	Create(client domain.Client) domain.Client
}

type Persister interface {
	Persist(ctx context.Context, names ...string) error
}

type ClientService struct {
	repo      Repository
	persister Persister
	logger    *zap.Logger
}

func NewService(repo Repository, persister Persister, logger *zap.Logger) *ClientService {
	return &ClientService{
		repo:      repo,
		persister: persister,
		logger:    logger,
	}
}

func (s *ClientService) List(ctx context.Context) []domain.Client {
	return s.repo.List()
}

func (s *ClientService) Get(ctx context.Context, id int) (domain.Client, error) {
	c, ok := s.repo.Get(id)
	if !ok {
		return domain.Client{}, apperrors.NewNotFoundError("client", id)
	}
	return c, nil
}

func (s *ClientService) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	created := s.repo.Create(client)
	s.logger.Info("client created", zap.Int("clientId", created.ID))

	if err := s.persister.Persist(context.WithoutCancel(ctx), persistence.Clients); err != nil {
		s.logger.Error("failed to persist clients", zap.Error(err))
	}
	return created, nil
}
