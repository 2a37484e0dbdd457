package domain

import "errors"

// Session errors.
var (
	ErrNoToken = errors.New("no token found")
)

// NoTokenMessage is the notice shown when an action needs a session and none is stored.
const NoTokenMessage = "No token found. Please log in first."

// Request failure causes, wrapped by RequestError.
var (
	ErrAPIUnreachable  = errors.New("api unreachable")
	ErrRejected        = errors.New("request rejected")
	ErrInvalidResponse = errors.New("invalid response")
)

// ValidationError is a local, pre-network rejection of user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// RequestError reports a failed round trip to the API: the network failed,
// the API answered with a non-2xx status, or the response body could not be decoded.
// Message is what the user sees; it comes from the server payload when there is one.
type RequestError struct {
	Method   string
	Endpoint string
	Status   int
	Message  string
	Err      error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is a RequestError with a 401 status.
func IsUnauthorized(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Status == 401
}
