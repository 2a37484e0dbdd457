package domain

import "context"

// AuthAPI is the authentication half of the remote API.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (string, error)
	Register(ctx context.Context, creds Credentials) error
	Refresh(ctx context.Context, token string) (string, error)
	ValidateToken(ctx context.Context, token string) error
	Protected(ctx context.Context, token string) (string, error)
}

// OrganizationAPI is the organization and partnership half of the remote API.
type OrganizationAPI interface {
	ListOrganizations(ctx context.Context, token string) ([]Organization, error)
	CreateOrganization(ctx context.Context, token, name string) (string, error)
	ListPartnerships(ctx context.Context, token string) ([]Partnership, error)
	CreatePartnership(ctx context.Context, token, demandOrgID, supplyOrgID string) (string, error)
}

// API is the full remote API consumed by the client.
type API interface {
	AuthAPI
	OrganizationAPI
}

// TokenStore persists the session token under a fixed key.
// Load returns an empty token and no error when nothing is stored.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// TokenInspector decodes token claims for display.
type TokenInspector interface {
	Inspect(token string) (*TokenClaims, error)
}
