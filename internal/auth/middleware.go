package auth

import (
	"context"
	"net/http"
	"strings"

	"pdv/internal/domain"
	apperrors "pdv/internal/errors"
	"pdv/internal/web"

	"go.uber.org/zap"
)

type contextKey struct{}

type Verifier interface {
	Verify(raw string) (domain.Identity, error)
}

// Middleware rejects requests without a valid token and stores the verified
// identity in the request context. The scheme word before the token is not
// checked.
func Middleware(verifier Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				web.WriteError(w, logger, web.TraceID(r), apperrors.NewCredentialMissingError())
				return
			}

			_, token, _ := strings.Cut(header, " ")
			token = strings.TrimSpace(token)
			if token == "" {
				web.WriteError(w, logger, web.TraceID(r), apperrors.NewCredentialInvalidError(nil))
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				web.WriteError(w, logger, web.TraceID(r), apperrors.NewCredentialInvalidError(err))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(domain.Identity)
	return identity, ok
}
