package gateway

import (
	"context"
	"net/http"

	"github.com/sullhouse/operative-connect-lite/internal/domain"
)

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	var resp tokenResponse
	req := credentialsRequest{Username: creds.Username, Password: creds.Password}
	if err := c.do(ctx, http.MethodPost, PathLogin, "", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", c.invalid(http.MethodPost, PathLogin, http.StatusOK, missing("token"))
	}
	return resp.Token, nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, creds domain.Credentials) error {
	req := credentialsRequest{Username: creds.Username, Password: creds.Password}
	return c.do(ctx, http.MethodPost, PathRegister, "", req, nil)
}

// Refresh exchanges a still-valid token for a fresh one.
func (c *Client) Refresh(ctx context.Context, token string) (string, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, PathRefresh, token, nil, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", c.invalid(http.MethodPost, PathRefresh, http.StatusOK, missing("token"))
	}
	return resp.Token, nil
}

// ValidateToken succeeds when the API accepts token.
func (c *Client) ValidateToken(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, PathValidateToken, token, nil, nil)
}

// Protected calls the protected probe endpoint and returns its message.
func (c *Client) Protected(ctx context.Context, token string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodGet, PathProtected, token, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
