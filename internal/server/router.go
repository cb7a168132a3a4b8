package server

import (
	"net/http"

	"pdv/internal/auth"
	clientctrl "pdv/internal/client/controller"
	"pdv/internal/dto"
	productctrl "pdv/internal/product/controller"
	salectrl "pdv/internal/sale/controller"
	pdvmw "pdv/internal/server/middleware"
	"pdv/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const appName = "PDV Backend"

type Handlers struct {
	Auth     *auth.Controller
	Products *productctrl.ProductController
	Clients  *clientctrl.ClientController
	Sales    *salectrl.SaleController
}

type RouterConfig struct {
	Verifier    auth.Verifier
	CORSOrigins []string
	// Idempotency wraps POST /sales when set.
	Idempotency func(http.Handler) http.Handler
}

func NewRouter(h Handlers, cfg RouterConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(pdvmw.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", pdvmw.IdempotencyKeyHeader},
		ExposedHeaders: []string{pdvmw.IdempotencyHitHeader},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		web.WriteJSON(w, logger, http.StatusOK, dto.HealthResponse{Status: "ok", App: appName})
	})
	r.Post("/login", h.Auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(cfg.Verifier, logger))

		r.Get("/me", h.Auth.Me)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products.List)
			r.Post("/", h.Products.Create)
			r.Get("/{id}", h.Products.Get)
			r.Put("/{id}", h.Products.Update)
			r.Delete("/{id}", h.Products.Delete)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.Clients.List)
			r.Post("/", h.Clients.Create)
			r.Get("/{id}", h.Clients.Get)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", h.Sales.List)
			r.Get("/{id}", h.Sales.Get)
			if cfg.Idempotency != nil {
				r.With(cfg.Idempotency).Post("/", h.Sales.Create)
			} else {
				r.Post("/", h.Sales.Create)
			}
		})
	})

	return r
}
