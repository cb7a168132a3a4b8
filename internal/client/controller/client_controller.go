package controller

import (
	"context"
	"net/http"

	"pdv/internal/domain"
	"pdv/internal/dto"
	"pdv/internal/web"

	"go.uber.org/zap"
)

type ClientService interface {
	List(ctx context.Context) []domain.Client
	Get(ctx context.Context, id int) (domain.Client, error)
	Create(ctx context.Context, client domain.Client) (domain.Client, error)
}

type ClientController struct {
	service   ClientService
	validator *web.Validator
	logger    *zap.Logger
}

func NewClientController(service ClientService, validator *web.Validator, logger *zap.Logger) *ClientController {
	return &ClientController{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

func (c *ClientController) List(w http.ResponseWriter, r *http.Request) {
	web.WriteJSON(w, c.logger, http.StatusOK, c.service.List(r.Context()))
}

func (c *ClientController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := web.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	id, err := web.PathID(r, "id")
	if err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	client, err := c.service.Get(r.Context(), id)
	if err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	web.WriteJSON(w, logger, http.StatusOK, client)
}

func (c *ClientController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := web.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateClientRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}
	if err := c.validator.Struct(req); err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	client, err := c.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		web.WriteError(w, logger, traceID, err)
		return
	}

	web.WriteJSON(w, logger, http.StatusCreated, client)
}
