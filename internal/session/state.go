// Package session owns the client session lifecycle: the stored token, the API
// calls made with it, and which view the user is shown.
package session

// View is a top-level screen.
type View int

const (
	// ViewLoggedOut is the login/registration screen.
	ViewLoggedOut View = iota
	// ViewLoggedIn is the home screen with organizations and partnerships.
	ViewLoggedIn
)

func (v View) String() string {
	switch v {
	case ViewLoggedIn:
		return "logged-in"
	case ViewLoggedOut:
		return "logged-out"
	default:
		return "unknown"
	}
}

// State is the client-side session state.
type State struct {
	HasToken           bool
	LastCheckSucceeded bool
}

// ResolveView maps a session state to the view that should be visible.
func ResolveView(s State) View {
	if s.HasToken && s.LastCheckSucceeded {
		return ViewLoggedIn
	}
	return ViewLoggedOut
}
