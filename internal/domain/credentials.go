package domain

import "time"

// Credentials is the username/password pair typed by the user.
// It lives only for the request that uses it and is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenClaims holds the claims read from a session token for display.
// The claims are decoded without verification; only the API decides validity.
type TokenClaims struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token had expired at now.
func (c *TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ExpiresWithin reports whether the token expires within d of now.
func (c *TokenClaims) ExpiresWithin(now time.Time, d time.Duration) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return c.ExpiresAt.Sub(now) <= d
}
