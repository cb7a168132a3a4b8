package dto

import apperrors "pdv/internal/errors"

type ErrorResponse struct {
	TraceID string                       `json:"traceId,omitempty"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
	Stock   *StockErrorDetails           `json:"stock,omitempty"`
}

type StockErrorDetails struct {
	ProductID   int    `json:"productId"`
	Description string `json:"description"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
}
