package sale

import (
	"pdv/internal/config"
	"pdv/internal/messaging"
	productrepo "pdv/internal/product/repository"
	"pdv/internal/sale/controller"
	salerepo "pdv/internal/sale/repository"
	"pdv/internal/sale/service"
	"pdv/internal/sale/usecase"
	"pdv/internal/web"

	"go.uber.org/zap"
)

func NewModule(
	catalog *productrepo.CatalogRepository,
	ledger *salerepo.LedgerRepository,
	persister usecase.Persister,
	publisher messaging.Publisher,
	validator *web.Validator,
	cfg config.SaleConfig,
	logger *zap.Logger,
) *controller.SaleController {
	recorder := service.NewSaleService(catalog, ledger, logger, cfg.StrictBasket)

	uc := usecase.NewProcessSaleUseCase(recorder, persister, publisher, logger, usecase.Options{
		DefaultPaymentMethod: cfg.DefaultPaymentMethod,
		StrictBasket:         cfg.StrictBasket,
	})

	return controller.NewSaleController(uc, ledger, validator, logger)
}
