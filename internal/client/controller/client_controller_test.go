package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdv/internal/domain"
	apperrors "pdv/internal/errors"
	"pdv/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockClientService struct {
	ListFunc   func(ctx context.Context) []domain.Client
	GetFunc    func(ctx context.Context, id int) (domain.Client, error)
	CreateFunc func(ctx context.Context, client domain.Client) (domain.Client, error)
}

func (m *mockClientService) List(ctx context.Context) []domain.Client {
	return m.ListFunc(ctx)
}

func (m *mockClientService) Get(ctx context.Context, id int) (domain.Client, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockClientService) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	return m.CreateFunc(ctx, client)
}

func newTestRouter(svc ClientService) http.Handler {
	ctrl := NewClientController(svc, web.NewValidator(), zap.NewNop())
	r := chi.NewRouter()
	r.Get("/clients", ctrl.List)
	r.Get("/clients/{id}", ctrl.Get)
	r.Post("/clients", ctrl.Create)
	return r
}

func TestClientController_Create(t *testing.T) {
	svc := &mockClientService{
		CreateFunc: func(ctx context.Context, client domain.Client) (domain.Client, error) {
			client.ID = 1
			return client, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"name":"Ana","email":"ana@example.com"}`))
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ana"`)
	assert.Contains(t, rec.Body.String(), `"id":1`)
}

func TestClientController_Create_NameRequired(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"phone":"123"}`))
	rec := httptest.NewRecorder()

	newTestRouter(&mockClientService{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"name"`)
}

func TestClientController_Get_NotFound(t *testing.T) {
	svc := &mockClientService{
		GetFunc: func(ctx context.Context, id int) (domain.Client, error) {
			return domain.Client{}, apperrors.NewNotFoundError("client", id)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/clients/5", nil)
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClientController_List_Empty(t *testing.T) {
	svc := &mockClientService{
		ListFunc: func(ctx context.Context) []domain.Client { return []domain.Client{} },
	}

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
