package output

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fatih/color"

	"github.com/sullhouse/operative-connect-lite/internal/domain"
)

// Exit code constants
const (
	ExitSuccess         = 0
	ExitGeneral         = 1
	ExitUsageError      = 2
	ExitRequestError    = 3
	ExitConfigError     = 4
	ExitValidationError = 5
	ExitNotLoggedIn     = 6
)

// CLIError is a structured error with user-facing context
type CLIError struct {
	Summary    string
	Detail     string
	Suggestion string
	ExitCode   int
}

// Error implements the error interface, returning the summary
func (e *CLIError) Error() string {
	return e.Summary
}

// FromError converts err into a CLIError with an exit code matching its kind
func FromError(err error) *CLIError {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return &CLIError{
			Summary:  validationErr.Message,
			ExitCode: ExitValidationError,
		}
	}

	if errors.Is(err, domain.ErrNoToken) {
		return &CLIError{
			Summary:    domain.NoTokenMessage,
			Suggestion: "Run 'oclctl login' to start a session",
			ExitCode:   ExitNotLoggedIn,
		}
	}

	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		return fromRequestError(reqErr)
	}

	return &CLIError{
		Summary:  err.Error(),
		ExitCode: ExitGeneral,
	}
}

func fromRequestError(e *domain.RequestError) *CLIError {
	cliErr := &CLIError{
		Summary:  e.Message,
		ExitCode: ExitRequestError,
	}

	switch {
	case errors.Is(e, domain.ErrAPIUnreachable):
		cliErr.Detail = fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
		cliErr.Suggestion = "Check api.base_url in .oclctl.yaml or pass --api-url"
	case e.Status == http.StatusUnauthorized:
		cliErr.Detail = fmt.Sprintf("%s %s returned %d", e.Method, e.Endpoint, e.Status)
		cliErr.Suggestion = "Run 'oclctl login' to start a new session"
	case e.Status != 0:
		cliErr.Detail = fmt.Sprintf("%s %s returned %d", e.Method, e.Endpoint, e.Status)
	}
	return cliErr
}

// FormatError prints a structured error message to stderr
func (p *Printer) FormatError(e *CLIError) {
	if p.useColors {
		color.New(color.FgRed, color.Bold).Fprintf(p.err, "Error: %s\n", e.Summary)
		if e.Detail != "" {
			fmt.Fprintf(p.err, "  Cause: %s\n", e.Detail)
		}
		if e.Suggestion != "" {
			color.New(color.FgCyan).Fprintf(p.err, "  Suggestion: %s\n", e.Suggestion)
		}
	} else {
		fmt.Fprintf(p.err, "[ERROR] %s\n", e.Summary)
		if e.Detail != "" {
			fmt.Fprintf(p.err, "  Cause: %s\n", e.Detail)
		}
		if e.Suggestion != "" {
			fmt.Fprintf(p.err, "  Suggestion: %s\n", e.Suggestion)
		}
	}
}
