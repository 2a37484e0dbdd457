// Package gateway talks to the Operative Connect Lite API over HTTP.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sullhouse/operative-connect-lite/internal/domain"
)

// API paths.
const (
	PathLogin              = "/auth/login"
	PathRegister           = "/auth/register"
	PathRefresh            = "/auth/refresh"
	PathValidateToken      = "/auth/validate-token"
	PathProtected          = "/auth/protected"
	PathListOrganizations  = "/organizations/list"
	PathCreateOrganization = "/organizations/create"
	PathListPartnerships   = "/organizations/partnerships/list"
	PathCreatePartnership  = "/organizations/partnerships/create"
)

// TokenHeader carries the session token on authenticated requests.
const TokenHeader = "x-access-token"

// User-facing fallback messages.
const (
	MsgUnreachable     = "Unable to reach API"
	MsgInvalidResponse = "Invalid response from server"
)

const maxResponseBytes = 1 << 20

var _ domain.API = (*Client)(nil)

// Client implements domain.API against the remote HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new API client. A zero timeout leaves requests bounded only
// by the caller's context.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one request. body is JSON-encoded when non-nil; on a 2xx response the
// body is decoded into out when out is non-nil. Every failure is a *domain.RequestError.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return c.unreachable(method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("api request failed", "method", method, "path", path, "error", err)
		return c.unreachable(method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.unreachable(method, path, err)
	}

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.RequestError{
			Method:   method,
			Endpoint: path,
			Status:   resp.StatusCode,
			Message:  failureMessage(resp.StatusCode, payload),
			Err:      fmt.Errorf("%w: status %d", domain.ErrRejected, resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return c.invalid(method, path, resp.StatusCode, err)
	}
	return nil
}

func (c *Client) unreachable(method, path string, err error) error {
	return &domain.RequestError{
		Method:   method,
		Endpoint: path,
		Message:  MsgUnreachable,
		Err:      fmt.Errorf("%w: %w", domain.ErrAPIUnreachable, err),
	}
}

func (c *Client) invalid(method, path string, status int, err error) error {
	return &domain.RequestError{
		Method:   method,
		Endpoint: path,
		Status:   status,
		Message:  MsgInvalidResponse,
		Err:      fmt.Errorf("%w: %w", domain.ErrInvalidResponse, err),
	}
}

// failureMessage picks the server-provided message out of an error body,
// falling back to a generic one.
func failureMessage(status int, payload []byte) string {
	var body messageResponse
	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fmt.Sprintf("Request failed with status %d", status)
}

var errMissingField = errors.New("missing field")

func missing(field string) error {
	return fmt.Errorf("%w: %s", errMissingField, field)
}
