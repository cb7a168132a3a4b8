package auth

import (
	"errors"
	"fmt"
	"time"

	"pdv/internal/domain"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

const (
	claimID   = "id"
	claimRole = "role"
)

// TokenService issues and verifies HS256 tokens carrying the operator id
// and role.
type TokenService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		key: []byte(secret),
		ttl: ttl,
		now: time.Now,
	}
}

func (s *TokenService) Issue(user domain.User) (string, error) {
	issuedAt := s.now()
	tok, err := jwt.NewBuilder().
		IssuedAt(issuedAt).
		Expiration(issuedAt.Add(s.ttl)).
		Claim(claimID, user.ID).
		Claim(claimRole, user.Role).
		Build()
	if err != nil {
		return "", fmt.Errorf("building token: %w", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256(), s.key))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return string(signed), nil
}

// Verify checks signature and expiry and extracts the identity.
func (s *TokenService) Verify(raw string) (domain.Identity, error) {
	tok, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256(), s.key),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(s.now)),
	)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("verifying token: %w", err)
	}

	var id any
	if err := tok.Get(claimID, &id); err != nil {
		return domain.Identity{}, fmt.Errorf("reading %s claim: %w", claimID, err)
	}
	userID, err := intClaim(id)
	if err != nil {
		return domain.Identity{}, err
	}

	var role string
	if err := tok.Get(claimRole, &role); err != nil {
		return domain.Identity{}, fmt.Errorf("reading %s claim: %w", claimRole, err)
	}

	return domain.Identity{UserID: userID, Role: role}, nil
}

// intClaim accepts the float64 that JSON decoding produces for numbers.
func intClaim(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, errors.New("id claim is not an integer")
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("id claim has unexpected type %T", v)
	}
}
