// Package web holds the HTTP helpers shared by every controller.
package web

import (
	"encoding/json"
	"net/http"

	"pdv/internal/dto"
	apperrors "pdv/internal/errors"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInternal          = "INTERNAL_ERROR"
	CodeIdempotencyBusy   = "IDEMPOTENCY_CONFLICT"
)

// TraceID returns the chi request id when present, otherwise a fresh uuid.
func TraceID(r *http.Request) string {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return uuid.New().String()
}

func WriteJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// WriteError maps a typed application error onto its HTTP status and error
// body. Anything unrecognised is logged and reported as a 500.
func WriteError(w http.ResponseWriter, logger *zap.Logger, traceID string, err error) {
	status, body := errorResponse(err)
	body.TraceID = traceID

	if status == http.StatusInternalServerError {
		logger.Error("unexpected error", zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}

	WriteJSON(w, logger, status, body)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	if ce, ok := apperrors.IsCredentialError(err); ok {
		return http.StatusUnauthorized, dto.ErrorResponse{
			Error:   ce.Code,
			Message: ce.Message,
		}
	}

	if ve, ok := apperrors.IsValidationError(err); ok {
		return http.StatusBadRequest, dto.ErrorResponse{
			Error:   CodeValidation,
			Message: ve.Message,
			Details: ve.Details,
		}
	}

	if ise, ok := apperrors.IsInsufficientStockError(err); ok {
		return http.StatusBadRequest, dto.ErrorResponse{
			Error:   CodeInsufficientStock,
			Message: ise.Error(),
			Stock: &dto.StockErrorDetails{
				ProductID:   ise.ProductID,
				Description: ise.Description,
				Requested:   ise.Requested,
				Available:   ise.Available,
			},
		}
	}

	if nf, ok := apperrors.IsNotFoundError(err); ok {
		return http.StatusNotFound, dto.ErrorResponse{
			Error:   CodeNotFound,
			Message: nf.Message,
		}
	}

	return http.StatusInternalServerError, dto.ErrorResponse{
		Error:   CodeInternal,
		Message: "an unexpected error occurred",
	}
}
