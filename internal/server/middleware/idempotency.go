package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"pdv/internal/dto"
	redisinfra "pdv/internal/infrastructure/redis"
	"pdv/internal/web"

	"go.uber.org/zap"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	IdempotencyHitHeader = "X-Idempotency-Hit"
)

type IdempotencyStore interface {
	Get(ctx context.Context, key string) (*redisinfra.CachedResponse, error)
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
	Save(ctx context.Context, key string, response redisinfra.CachedResponse, ttl time.Duration) error
}

// inFlightTTL bounds how long a crashed request keeps its key reserved.
const inFlightTTL = 30 * time.Second

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for a repeated Idempotency-Key.
// The key is reserved before the handler runs, so concurrent requests with
// the same key execute it once; the others get 409 while it is in flight.
// Store errors never block the request. 5xx responses release the key so
// the client can retry.
func Idempotency(store IdempotencyStore, ttl time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyKeyHeader)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			logger := logger.With(zap.String("idempotencyKey", key))

			cached, err := store.Get(ctx, key)
			if err != nil {
				logger.Error("failed to read idempotency key", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if cached == nil {
				reserved, err := store.Reserve(ctx, key, inFlightTTL)
				if err != nil {
					logger.Error("failed to reserve idempotency key", zap.Error(err))
					next.ServeHTTP(w, r)
					return
				}
				if reserved {
					serveAndStore(w, r, next, store, key, ttl, logger)
					return
				}

				// lost the race; the winner may already have finished
				cached, err = store.Get(ctx, key)
				if err != nil {
					logger.Error("failed to read idempotency key", zap.Error(err))
				}
			}

			if cached == nil || cached.Pending {
				logger.Info("idempotency key in flight")
				web.WriteJSON(w, logger, http.StatusConflict, dto.ErrorResponse{
					TraceID: web.TraceID(r),
					Error:   web.CodeIdempotencyBusy,
					Message: "Requisição com esta chave em andamento",
				})
				return
			}

			logger.Info("idempotency cache hit")
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set(IdempotencyHitHeader, "true")
			w.WriteHeader(cached.StatusCode)
			if _, err := w.Write(cached.Body); err != nil {
				logger.Error("failed to write cached response", zap.Error(err))
			}
		})
	}
}

func serveAndStore(w http.ResponseWriter, r *http.Request, next http.Handler, store IdempotencyStore, key string, ttl time.Duration, logger *zap.Logger) {
	recorder := &responseRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
		body:           &bytes.Buffer{},
	}
	next.ServeHTTP(recorder, r)

	// the outcome must be recorded even if the client went away
	ctx := context.WithoutCancel(r.Context())

	if recorder.statusCode >= http.StatusInternalServerError {
		if err := store.Release(ctx, key); err != nil {
			logger.Error("failed to release idempotency key", zap.Error(err))
		}
		return
	}

	err := store.Save(ctx, key, redisinfra.CachedResponse{
		StatusCode: recorder.statusCode,
		Body:       recorder.body.Bytes(),
	}, ttl)
	if err != nil {
		logger.Error("failed to save idempotency key", zap.Error(err))
	}
}
