// Package validate holds the local input rules checked before any request leaves the client.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sullhouse/operative-connect-lite/internal/domain"
)

// Username rule messages, in check order.
const (
	MsgUsernameRequired = "Username is required"
	MsgUsernameLength   = "Username must be between 3 and 50 characters"
	MsgUsernameChars    = "Username can only contain letters, numbers, dots, @, hyphens, and underscores"
)

// Password rule messages, in check order.
const (
	MsgPasswordRequired = "Password is required"
	MsgPasswordLength   = "Password must be at least 8 characters long"
	MsgPasswordUpper    = "Password must contain at least one uppercase letter"
	MsgPasswordLower    = "Password must contain at least one lowercase letter"
	MsgPasswordDigit    = "Password must contain at least one number"
	MsgPasswordSpecial  = "Password must contain at least one special character"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
	passwordMinLen = 8

	// PasswordSpecialChars lists the characters accepted as "special".
	PasswordSpecialChars = `!@#$%^&*(),.?":{}|<>`
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-.@]+$`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

// Result is the verdict of a single field check. Message is set only when Valid is false.
type Result struct {
	Valid   bool
	Message string
}

func pass() Result {
	return Result{Valid: true}
}

func fail(message string) Result {
	return Result{Message: message}
}

// Username checks a candidate username. The first failing rule wins.
func Username(username string) Result {
	if username == "" {
		return fail(MsgUsernameRequired)
	}

	n := utf8.RuneCountInString(username)
	if n < usernameMinLen || n > usernameMaxLen {
		return fail(MsgUsernameLength)
	}

	if !usernamePattern.MatchString(username) {
		return fail(MsgUsernameChars)
	}

	return pass()
}

// Password checks a candidate password in the order
// length, uppercase, lowercase, digit, special. The first failing rule wins.
func Password(password string) Result {
	if password == "" {
		return fail(MsgPasswordRequired)
	}

	if utf8.RuneCountInString(password) < passwordMinLen {
		return fail(MsgPasswordLength)
	}

	if !upperPattern.MatchString(password) {
		return fail(MsgPasswordUpper)
	}

	if !lowerPattern.MatchString(password) {
		return fail(MsgPasswordLower)
	}

	if !digitPattern.MatchString(password) {
		return fail(MsgPasswordDigit)
	}

	if !strings.ContainsAny(password, PasswordSpecialChars) {
		return fail(MsgPasswordSpecial)
	}

	return pass()
}

// Credentials runs the username check and then the password check and
// returns a *domain.ValidationError for the first failure, or nil.
func Credentials(creds domain.Credentials) error {
	if r := Username(creds.Username); !r.Valid {
		return domain.NewValidationError("username", r.Message)
	}
	if r := Password(creds.Password); !r.Valid {
		return domain.NewValidationError("password", r.Message)
	}
	return nil
}
