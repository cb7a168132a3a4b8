package controller

import (
	"context"
	"net/http"

	"pdv/internal/domain"
	"pdv/internal/dto"
	"pdv/internal/web"

	"go.uber.org/zap"
)

type ProductService interface {
	List(ctx context.Context) []domain.Product
	Get(ctx context.Context, id int) (domain.Product, error)
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	Update(ctx context.Context, id int, patch domain.ProductPatch) (domain.Product, error)
	Delete(ctx context.Context, id int) (domain.Product, error)
}

type ProductController struct {
	service   ProductService
	validator *web.Validator
	logger    *zap.Logger
}

func NewProductController(service ProductService, validator *web.Validator, logger *zap.Logger) *ProductController {
	return &ProductController{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	web.WriteJSON(w, c.logger, http.StatusOK, c.service.List(r.Context()))
}

func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := web.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	id, err := web.PathID(r, "id")
	if err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	product, err := c.service.Get(r.Context(), id)
	if err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	web.WriteJSON(w, logger, http.StatusOK, product)
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := web.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateProductRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}
	if err := c.validator.Struct(req); err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	product, err := c.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	web.WriteJSON(w, logger, http.StatusCreated, product)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	traceID := web.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	id, err := web.PathID(r, "id")
	if err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	var req dto.UpdateProductRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}
	if err := c.validator.Struct(req); err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	product, err := c.service.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	web.WriteJSON(w, logger, http.StatusOK, product)
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	traceID := web.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	id, err := web.PathID(r, "id")
	if err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	removed, err := c.service.Delete(r.Context(), id)
	if err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	web.WriteJSON(w, logger, http.StatusOK, removed)
}
