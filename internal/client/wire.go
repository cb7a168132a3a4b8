package client

import (
	"pdv/internal/client/controller"
	"pdv/internal/client/repository"
	"pdv/internal/client/service"
	"pdv/internal/web"

	"go.uber.org/zap"
)

func NewModule(repo *repository.ClientRepository, persister service.Persister, validator *web.Validator, logger *zap.Logger) *controller.ClientController {
	svc := service.NewService(repo, persister, logger)
	return controller.NewClientController(svc, validator, logger)
}
