package output

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sullhouse/operative-connect-lite/internal/domain"
)

func TestFormatError_AllFields(t *testing.T) {
	p, _, stderr := newTestPrinter(false)

	p.FormatError(&CLIError{
		Summary:    "Invalid credentials",
		Detail:     "POST /auth/login returned 401",
		Suggestion: "Run 'oclctl login' to start a new session",
		ExitCode:   ExitRequestError,
	})

	assert.Equal(t,
		"[ERROR] Invalid credentials\n"+
			"  Cause: POST /auth/login returned 401\n"+
			"  Suggestion: Run 'oclctl login' to start a new session\n",
		stderr.String())
}

func TestFormatError_NoDetail(t *testing.T) {
	p, _, stderr := newTestPrinter(true)

	p.FormatError(&CLIError{Summary: "config file not found", Suggestion: "Check .oclctl.yaml", ExitCode: ExitConfigError})

	out := stderr.String()
	assert.Contains(t, out, "config file not found")
	assert.NotContains(t, out, "Cause:")
	assert.Contains(t, out, "Check .oclctl.yaml")
}

func TestFromError(t *testing.T) {
	unreachable := &domain.RequestError{
		Method:   http.MethodGet,
		Endpoint: "/auth/validate-token",
		Message:  "Unable to reach API",
		Err:      fmt.Errorf("%w: %w", domain.ErrAPIUnreachable, errors.New("connection refused")),
	}
	unauthorized := &domain.RequestError{
		Method:   http.MethodPost,
		Endpoint: "/auth/login",
		Status:   http.StatusUnauthorized,
		Message:  "Invalid credentials",
		Err:      domain.ErrRejected,
	}
	serverError := &domain.RequestError{
		Method:   http.MethodGet,
		Endpoint: "/organizations/list",
		Status:   http.StatusInternalServerError,
		Message:  "Request failed with status 500",
		Err:      domain.ErrRejected,
	}
	existing := &CLIError{Summary: "bad flag", ExitCode: ExitUsageError}

	tests := []struct {
		name           string
		err            error
		wantSummary    string
		wantDetail     string
		wantSuggestion string
		wantCode       int
	}{
		{
			name:        "validation",
			err:         domain.NewValidationError("username", "Username is required"),
			wantSummary: "Username is required",
			wantCode:    ExitValidationError,
		},
		{
			name:           "no token",
			err:            fmt.Errorf("refresh: %w", domain.ErrNoToken),
			wantSummary:    "No token found. Please log in first.",
			wantSuggestion: "Run 'oclctl login' to start a session",
			wantCode:       ExitNotLoggedIn,
		},
		{
			name:           "unreachable",
			err:            unreachable,
			wantSummary:    "Unable to reach API",
			wantDetail:     "GET /auth/validate-token: api unreachable: connection refused",
			wantSuggestion: "Check api.base_url in .oclctl.yaml or pass --api-url",
			wantCode:       ExitRequestError,
		},
		{
			name:           "unauthorized",
			err:            unauthorized,
			wantSummary:    "Invalid credentials",
			wantDetail:     "POST /auth/login returned 401",
			wantSuggestion: "Run 'oclctl login' to start a new session",
			wantCode:       ExitRequestError,
		},
		{
			name:        "server error",
			err:         serverError,
			wantSummary: "Request failed with status 500",
			wantDetail:  "GET /organizations/list returned 500",
			wantCode:    ExitRequestError,
		},
		{
			name:        "cli error passes through",
			err:         fmt.Errorf("wrapped: %w", existing),
			wantSummary: "bad flag",
			wantCode:    ExitUsageError,
		},
		{
			name:        "anything else",
			err:         errors.New("disk full"),
			wantSummary: "disk full",
			wantCode:    ExitGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError(tt.err)

			assert.Equal(t, tt.wantSummary, got.Summary)
			assert.Equal(t, tt.wantDetail, got.Detail)
			assert.Equal(t, tt.wantSuggestion, got.Suggestion)
			assert.Equal(t, tt.wantCode, got.ExitCode)
		})
	}
}
