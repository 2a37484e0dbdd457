package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sullhouse/operative-connect-lite/internal/domain"
	"github.com/sullhouse/operative-connect-lite/internal/validate"
)

// Notices shown after successful actions.
const (
	MsgLoginSuccessful        = "Login successful!"
	MsgRegistrationSuccessful = "Registration successful! You can now log in."
	MsgTokenRefreshed         = "Token refreshed successfully!"
	MsgLoggedOut              = "Logged out."
	MsgOrganizationCreated    = "Organization created successfully!"
	MsgPartnershipCreated     = "Partnership created successfully!"
	msgProtectedPrefix        = "Protected endpoint response: "
)

var errInspectorUnavailable = errors.New("token inspection unavailable")

// Controller runs the session lifecycle against the API. It is not safe for
// concurrent use; each user action runs to completion before the next.
type Controller struct {
	api       domain.API
	store     domain.TokenStore
	inspector domain.TokenInspector
	presenter Presenter
	logger    *slog.Logger

	expiryWarning time.Duration
	now           func() time.Time

	state State
}

// Option configures a Controller.
type Option func(*Controller)

// WithExpiryWarning makes CheckSession warn when the token expires within d.
// Zero disables the warning.
func WithExpiryWarning(d time.Duration) Option {
	return func(c *Controller) { c.expiryWarning = d }
}

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController creates a Controller. inspector may be nil, in which case
// Inspect fails and no expiry warning is shown.
func NewController(api domain.API, store domain.TokenStore, inspector domain.TokenInspector, presenter Presenter, logger *slog.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Controller{
		api:       api,
		store:     store,
		inspector: inspector,
		presenter: presenter,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current session state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) show() View {
	v := ResolveView(c.state)
	c.presenter.SwitchView(v)
	return v
}

// token loads the stored token, returning domain.ErrNoToken when there is none.
func (c *Controller) token() (string, error) {
	token, err := c.store.Load()
	if err != nil {
		return "", fmt.Errorf("loading session token: %w", err)
	}
	if token == "" {
		c.state = State{}
		return "", domain.ErrNoToken
	}
	c.state.HasToken = true
	return token, nil
}

// saveToken persists token and marks the session as accepted by the API.
func (c *Controller) saveToken(token string) error {
	if err := c.store.Save(token); err != nil {
		return fmt.Errorf("saving session token: %w", err)
	}
	c.state = State{HasToken: true, LastCheckSucceeded: true}
	return nil
}

// reject records an API failure; a 401 means the stored token is no longer good.
func (c *Controller) reject(err error) error {
	if domain.IsUnauthorized(err) {
		c.state.LastCheckSucceeded = false
	}
	return err
}

// CheckSession validates the stored token with the API and shows the matching
// view. Validation failures of any kind end in the logged-out view and are not
// returned; only a token store failure is.
func (c *Controller) CheckSession(ctx context.Context) (View, error) {
	token, err := c.token()
	if err != nil {
		if errors.Is(err, domain.ErrNoToken) {
			return c.show(), nil
		}
		return c.show(), err
	}

	if err := c.api.ValidateToken(ctx, token); err != nil {
		c.logger.Info("session check failed", "error", err)
		c.state.LastCheckSucceeded = false
		return c.show(), nil
	}

	c.state.LastCheckSucceeded = true
	v := c.show()
	c.warnIfExpiring(token)
	return v, nil
}

func (c *Controller) warnIfExpiring(token string) {
	if c.inspector == nil || c.expiryWarning <= 0 {
		return
	}
	claims, err := c.inspector.Inspect(token)
	if err != nil {
		c.logger.Debug("token claims unreadable", "error", err)
		return
	}
	now := c.now()
	if claims.ExpiresWithin(now, c.expiryWarning) && !claims.Expired(now) {
		remaining := claims.ExpiresAt.Sub(now).Round(time.Second)
		c.presenter.Notice(fmt.Sprintf("Session expires in %s. Run 'oclctl session refresh' to extend it.", remaining))
	}
}

// Login validates the credentials locally, then exchanges them for a token.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	creds := domain.Credentials{Username: username, Password: password}
	if err := validate.Credentials(creds); err != nil {
		return err
	}

	token, err := c.api.Login(ctx, creds)
	if err != nil {
		return err
	}
	if err := c.saveToken(token); err != nil {
		return err
	}

	c.logger.Debug("logged in", "username", username)
	c.presenter.Notice(MsgLoginSuccessful)
	c.show()
	return nil
}

// Register validates the credentials locally, then creates the account and
// returns the user to the login view.
func (c *Controller) Register(ctx context.Context, username, password string) error {
	creds := domain.Credentials{Username: username, Password: password}
	if err := validate.Credentials(creds); err != nil {
		return err
	}

	if err := c.api.Register(ctx, creds); err != nil {
		return err
	}

	c.state.LastCheckSucceeded = false
	c.presenter.Notice(MsgRegistrationSuccessful)
	c.show()
	return nil
}

// Logout forgets the stored token. The API is not contacted.
func (c *Controller) Logout() error {
	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("clearing session token: %w", err)
	}
	c.state = State{}
	c.presenter.Notice(MsgLoggedOut)
	c.show()
	return nil
}

// RefreshToken exchanges the stored token for a fresh one.
func (c *Controller) RefreshToken(ctx context.Context) error {
	token, err := c.token()
	if err != nil {
		return err
	}

	fresh, err := c.api.Refresh(ctx, token)
	if err != nil {
		return c.reject(err)
	}
	if err := c.saveToken(fresh); err != nil {
		return err
	}

	c.presenter.Notice(MsgTokenRefreshed)
	return nil
}

// CallProtectedResource calls the protected probe endpoint and shows its message.
func (c *Controller) CallProtectedResource(ctx context.Context) error {
	token, err := c.token()
	if err != nil {
		return err
	}

	message, err := c.api.Protected(ctx, token)
	if err != nil {
		return c.reject(err)
	}

	c.presenter.Notice(msgProtectedPrefix + message)
	return nil
}

// ListOrganizations fetches and renders the user's organizations.
func (c *Controller) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	return c.listOrganizations(ctx, token)
}

func (c *Controller) listOrganizations(ctx context.Context, token string) ([]domain.Organization, error) {
	orgs, err := c.api.ListOrganizations(ctx, token)
	if err != nil {
		return nil, c.reject(err)
	}
	c.presenter.RenderOrganizations(orgs)
	return orgs, nil
}

// CreateOrganization creates an organization and re-renders the organization list.
// It returns the new organization's id when the API reports one.
func (c *Controller) CreateOrganization(ctx context.Context, name string) (string, error) {
	token, err := c.token()
	if err != nil {
		return "", err
	}
	if err := validate.OrganizationName(name); err != nil {
		return "", err
	}

	id, err := c.api.CreateOrganization(ctx, token, strings.TrimSpace(name))
	if err != nil {
		return "", c.reject(err)
	}
	c.logger.Debug("organization created", "organization_id", id)
	c.presenter.Notice(MsgOrganizationCreated)

	if _, err := c.listOrganizations(ctx, token); err != nil {
		return id, err
	}
	return id, nil
}

// ListPartnerships fetches and renders the user's partnerships.
func (c *Controller) ListPartnerships(ctx context.Context) ([]domain.Partnership, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	return c.listPartnerships(ctx, token)
}

func (c *Controller) listPartnerships(ctx context.Context, token string) ([]domain.Partnership, error) {
	partnerships, err := c.api.ListPartnerships(ctx, token)
	if err != nil {
		return nil, c.reject(err)
	}
	c.presenter.RenderPartnerships(partnerships)
	return partnerships, nil
}

// CreatePartnership links a demand organization with a supply organization and
// re-renders the partnership list.
func (c *Controller) CreatePartnership(ctx context.Context, demandOrgID, supplyOrgID string) (string, error) {
	token, err := c.token()
	if err != nil {
		return "", err
	}
	demandOrgID = strings.TrimSpace(demandOrgID)
	supplyOrgID = strings.TrimSpace(supplyOrgID)
	if err := validate.PartnershipIDs(demandOrgID, supplyOrgID); err != nil {
		return "", err
	}

	id, err := c.api.CreatePartnership(ctx, token, demandOrgID, supplyOrgID)
	if err != nil {
		return "", c.reject(err)
	}
	c.logger.Debug("partnership created", "partnership_id", id)
	c.presenter.Notice(MsgPartnershipCreated)

	if _, err := c.listPartnerships(ctx, token); err != nil {
		return id, err
	}
	return id, nil
}

// ShowHome fetches organizations and partnerships concurrently and renders
// the logged-in view with both. Nothing is rendered unless both succeed.
func (c *Controller) ShowHome(ctx context.Context) error {
	token, err := c.token()
	if err != nil {
		return err
	}

	var (
		orgs         []domain.Organization
		partnerships []domain.Partnership
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orgs, err = c.api.ListOrganizations(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		partnerships, err = c.api.ListPartnerships(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return c.reject(err)
	}

	c.state.LastCheckSucceeded = true
	c.show()
	c.presenter.RenderOrganizations(orgs)
	c.presenter.RenderPartnerships(partnerships)
	return nil
}

// Inspect decodes the stored token's claims without contacting the API.
func (c *Controller) Inspect() (*domain.TokenClaims, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	if c.inspector == nil {
		return nil, errInspectorUnavailable
	}
	claims, err := c.inspector.Inspect(token)
	if err != nil {
		return nil, fmt.Errorf("inspecting session token: %w", err)
	}
	return claims, nil
}
