package controller

import (
	"context"
	"net/http"

	"pdv/internal/domain"
	"pdv/internal/dto"
	apperrors "pdv/internal/errors"
	"pdv/internal/web"

	"go.uber.org/zap"
)

type ProcessSaleUseCase interface {
	ProcessSale(ctx context.Context, req domain.SaleRequest) (domain.Sale, error)
}

type Ledger interface {
	Get(id int) (domain.Sale, bool)
	List() []domain.Sale
}

type SaleController struct {
	useCase   ProcessSaleUseCase
	ledger    Ledger
	validator *web.Validator
	logger    *zap.Logger
}

func NewSaleController(useCase ProcessSaleUseCase, ledger Ledger, validator *web.Validator, logger *zap.Logger) *SaleController {
	return &SaleController{
		useCase:   useCase,
		ledger:    ledger,
		validator: validator,
		logger:    logger,
	}
}

func (c *SaleController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := web.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateSaleRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}
	if err := c.validator.Struct(req); err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	sale, err := c.useCase.ProcessSale(r.Context(), req.ToDomain())
	if err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	web.WriteJSON(w, logger, http.StatusCreated, sale)
}

func (c *SaleController) List(w http.ResponseWriter, r *http.Request) {
	web.WriteJSON(w, c.logger, http.StatusOK, c.ledger.List())
}

func (c *SaleController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := web.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	id, err := web.PathID(r, "id")
	if err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	sale, ok := c.ledger.Get(id)
	if !ok {
		web.WriteError(w, logger, traceID, apperrors.NewNotFoundError("sale", id))
		return
	}

	web.WriteJSON(w, logger, http.StatusOK, sale)
}
