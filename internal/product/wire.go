package product

import (
	"pdv/internal/product/controller"
	"pdv/internal/product/repository"
	"pdv/internal/product/service"
	"pdv/internal/web"

	"go.uber.org/zap"
)

// NewModule wires the catalog endpoints. The catalog itself is built by the
// caller because sales share it.
func NewModule(catalog *repository.CatalogRepository, persister service.Persister, validator *web.Validator, logger *zap.Logger) *controller.ProductController {
	svc := service.NewService(catalog, persister, logger)
	return controller.NewProductController(svc, validator, logger)
}
