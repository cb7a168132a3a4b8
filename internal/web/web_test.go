package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdv/internal/dto"
	apperrors "pdv/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"missing credential", apperrors.NewCredentialMissingError(), http.StatusUnauthorized, apperrors.CodeCredentialMissing},
		{"invalid credential", apperrors.NewCredentialInvalidError(nil), http.StatusUnauthorized, apperrors.CodeCredentialInvalid},
		{"validation", apperrors.NewValidationError("bad"), http.StatusBadRequest, CodeValidation},
		{"insufficient stock", apperrors.NewInsufficientStockError(1, "Arroz", 5, 2), http.StatusBadRequest, CodeInsufficientStock},
		{"not found", apperrors.NewNotFoundError("product", 9), http.StatusNotFound, CodeNotFound},
		{"wrapped not found", fmt.Errorf("loading: %w", apperrors.NewNotFoundError("sale", 3)), http.StatusNotFound, CodeNotFound},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, zap.NewNop(), "trace-1", tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error)
			assert.Equal(t, "trace-1", body.TraceID)
		})
	}
}

func TestWriteError_InsufficientStockDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, zap.NewNop(), "t", apperrors.NewInsufficientStockError(1, "Arroz", 1000, 97))

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Stock)
	assert.Equal(t, 1, body.Stock.ProductID)
	assert.Equal(t, "Arroz", body.Stock.Description)
	assert.Equal(t, 1000, body.Stock.Requested)
	assert.Equal(t, 97, body.Stock.Available)
}

func TestWriteError_InternalHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, zap.NewNop(), "t", fmt.Errorf("dial tcp 10.0.0.1: refused"))

	assert.NotContains(t, rec.Body.String(), "10.0.0.1")
}

type sampleRequest struct {
	Name  string      `json:"name" validate:"required"`
	Items []sampleRow `json:"items" validate:"required,min=1,dive"`
}

type sampleRow struct {
	ProductID int `json:"productId" validate:"required"`
}

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Struct(sampleRequest{Items: []sampleRow{{ProductID: 1}, {}}})

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 2)
	assert.Equal(t, "name", ve.Details[0].Field)
	assert.Equal(t, "name is required", ve.Details[0].Message)
	assert.Equal(t, "items[1].productId", ve.Details[1].Field)
}

func TestValidator_EmptySlice(t *testing.T) {
	err := NewValidator().Struct(sampleRequest{Name: "x", Items: []sampleRow{}})

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "items", ve.Details[0].Field)
}

func TestValidator_Valid(t *testing.T) {
	assert.NoError(t, NewValidator().Struct(sampleRequest{Name: "x", Items: []sampleRow{{ProductID: 1}}}))
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantField string
	}{
		{name: "valid", body: `{"name":"a","items":[{"productId":1}]}`},
		{name: "empty body", body: "", wantErr: true, wantField: "body"},
		{name: "malformed", body: `{"name":`, wantErr: true, wantField: "body"},
		{name: "items not an array", body: `{"items":"x"}`, wantErr: true, wantField: "items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst sampleRequest

			err := DecodeJSON(req, &dst)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			ve, ok := apperrors.IsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, ve.Details[0].Field)
		})
	}
}

func TestPathID(t *testing.T) {
	withParam := func(value string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", value)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := PathID(withParam("42"), "id")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"abc", "0", "-1", ""} {
		_, err := PathID(withParam(bad), "id")
		_, ok := apperrors.IsValidationError(err)
		assert.True(t, ok, "value %q", bad)
	}
}

func TestTraceID_PrefersRequestID(t *testing.T) {
	assert.NotEmpty(t, TraceID(httptest.NewRequest(http.MethodGet, "/", nil)))

	var seen string
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = TraceID(r)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-abc")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "req-abc", seen)
}
