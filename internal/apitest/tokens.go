package apitest

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const usernameKey = "username"

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IssueToken signs a token for username that expires after ttl. A negative ttl
// yields an already expired token.
func (s *Server) IssueToken(username string, ttl time.Duration) string {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		panic(fmt.Sprintf("signing token: %v", err))
	}
	return signed
}

func (s *Server) parseToken(raw string) (string, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if c.Username == "" {
		return "", errors.New("token has no username")
	}
	return c.Username, nil
}

// requireToken rejects requests without a valid token and stores the username on the context.
func (s *Server) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(TokenHeader)
		if raw == "" {
			return message(c, http.StatusUnauthorized, "Token is missing")
		}
		username, err := s.parseToken(raw)
		if err != nil {
			return message(c, http.StatusUnauthorized, "Token is invalid")
		}
		c.Set(usernameKey, username)
		return next(c)
	}
}

func currentUser(c echo.Context) string {
	username, _ := c.Get(usernameKey).(string)
	return username
}
