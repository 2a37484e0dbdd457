// Package token decodes session tokens issued by the API.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sullhouse/operative-connect-lite/internal/domain"
)

// ErrMalformedToken is returned when a stored token is not a decodable JWT.
var ErrMalformedToken = errors.New("malformed token")

// sessionClaims mirrors the claims the API signs into its tokens.
type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Inspector decodes token claims without checking the signature.
// Implements domain.TokenInspector.
type Inspector struct {
	parser *jwt.Parser
}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{parser: jwt.NewParser()}
}

// Inspect returns the claims carried by raw.
func (i *Inspector) Inspect(raw string) (*domain.TokenClaims, error) {
	if raw == "" {
		return nil, domain.ErrNoToken
	}

	var claims sessionClaims
	if _, _, err := i.parser.ParseUnverified(raw, &claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	username := claims.Username
	if username == "" {
		username = claims.Subject
	}

	out := &domain.TokenClaims{Username: username}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
