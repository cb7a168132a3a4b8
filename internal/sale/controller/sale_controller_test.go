package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdv/internal/domain"
	"pdv/internal/dto"
	apperrors "pdv/internal/errors"
	"pdv/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockProcessSaleUseCase struct {
	ProcessSaleFunc func(ctx context.Context, req domain.SaleRequest) (domain.Sale, error)
}

func (m *mockProcessSaleUseCase) ProcessSale(ctx context.Context, req domain.SaleRequest) (domain.Sale, error) {
	return m.ProcessSaleFunc(ctx, req)
}

type mockLedger struct {
	GetFunc  func(id int) (domain.Sale, bool)
	ListFunc func() []domain.Sale
}

func (m *mockLedger) Get(id int) (domain.Sale, bool) {
	return m.GetFunc(id)
}

func (m *mockLedger) List() []domain.Sale {
	return m.ListFunc()
}

func newTestRouter(uc ProcessSaleUseCase, ledger Ledger) http.Handler {
	ctrl := NewSaleController(uc, ledger, web.NewValidator(), zap.NewNop())
	r := chi.NewRouter()
	r.Get("/sales", ctrl.List)
	r.Get("/sales/{id}", ctrl.Get)
	r.Post("/sales", ctrl.Create)
	return r
}

func postSale(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(body))
}

func TestSaleController_Create(t *testing.T) {
	var received domain.SaleRequest
	uc := &mockProcessSaleUseCase{
		ProcessSaleFunc: func(ctx context.Context, req domain.SaleRequest) (domain.Sale, error) {
			received = req
			return domain.Sale{ID: 1, Total: decimal.RequireFromString("30.5"), PaymentMethod: "pix"}, nil
		},
	}

	rec := httptest.NewRecorder()
	newTestRouter(uc, &mockLedger{}).ServeHTTP(rec, postSale(
		`{"items":[{"productId":1,"quantity":3},{"productId":2,"quantity":2}],"paymentMethod":"pix","clientId":4}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []domain.BasketItem{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 2}}, received.Items)
	assert.Equal(t, "pix", received.PaymentMethod)
	require.NotNil(t, received.ClientID)
	assert.Equal(t, 4, *received.ClientID)
	assert.Contains(t, rec.Body.String(), `"total":30.5`)
}

func TestSaleController_Create_RejectsBadBaskets(t *testing.T) {
	uc := &mockProcessSaleUseCase{
		ProcessSaleFunc: func(ctx context.Context, req domain.SaleRequest) (domain.Sale, error) {
			t.Fatal("use case must not be called")
			return domain.Sale{}, nil
		},
	}

	for name, body := range map[string]string{
		"missing items":   `{}`,
		"empty items":     `{"items":[]}`,
		"items not array": `{"items":{"productId":1}}`,
		"not json":        `items=1`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestRouter(uc, &mockLedger{}).ServeHTTP(rec, postSale(body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, web.CodeValidation, resp.Error)
		})
	}
}

func TestSaleController_Create_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"insufficient stock", apperrors.NewInsufficientStockError(1, "Refrigerante", 1000, 97), http.StatusBadRequest, web.CodeInsufficientStock},
		{"unknown product", apperrors.NewNotFoundError("product", 99), http.StatusNotFound, web.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockProcessSaleUseCase{
				ProcessSaleFunc: func(ctx context.Context, req domain.SaleRequest) (domain.Sale, error) {
					return domain.Sale{}, tt.err
				},
			}

			rec := httptest.NewRecorder()
			newTestRouter(uc, &mockLedger{}).ServeHTTP(rec, postSale(`{"items":[{"productId":1,"quantity":1}]}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error)
		})
	}
}

func TestSaleController_Get(t *testing.T) {
	ledger := &mockLedger{
		GetFunc: func(id int) (domain.Sale, bool) {
			if id == 6 {
				return domain.Sale{ID: 6}, true
			}
			return domain.Sale{}, false
		},
	}

	found := httptest.NewRecorder()
	newTestRouter(&mockProcessSaleUseCase{}, ledger).ServeHTTP(found, httptest.NewRequest(http.MethodGet, "/sales/6", nil))
	missing := httptest.NewRecorder()
	newTestRouter(&mockProcessSaleUseCase{}, ledger).ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/sales/7", nil))

	assert.Equal(t, http.StatusOK, found.Code)
	assert.Contains(t, found.Body.String(), `"id":6`)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestSaleController_List(t *testing.T) {
	ledger := &mockLedger{
		ListFunc: func() []domain.Sale { return []domain.Sale{{ID: 1}, {ID: 2}} },
	}

	rec := httptest.NewRecorder()
	newTestRouter(&mockProcessSaleUseCase{}, ledger).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sales", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var sales []domain.Sale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sales))
	assert.Len(t, sales, 2)
}
