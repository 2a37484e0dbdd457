// Package apitest runs an in-process fake of the Operative Connect Lite API for tests.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// TokenHeader carries the session token.
const TokenHeader = "x-access-token"

// DefaultTokenTTL matches the lifetime of tokens issued by the real API.
const DefaultTokenTTL = time.Hour

type organization struct {
	ID        string `json:"organization_id"`
	Name      string `json:"organization_name"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

type partnership struct {
	ID       string
	DemandID string
	SupplyID string
}

type fault struct {
	status  int
	body    string
	message string
}

// Server is a fake API backed by in-memory state. It is safe for concurrent use.
type Server struct {
	srv    *httptest.Server
	secret []byte
	now    func() time.Time

	mu           sync.Mutex
	users        map[string][]byte
	orgs         map[string]*organization
	orgOrder     []string
	members      map[string]map[string]bool
	partnerships []partnership
	calls        map[string]int
	faults       map[string]fault
}

// NewServer starts a fake API that is shut down when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		secret:  []byte("apitest-secret"),
		now:     time.Now,
		users:   make(map[string][]byte),
		orgs:    make(map[string]*organization),
		members: make(map[string]map[string]bool),
		calls:   make(map[string]int),
		faults:  make(map[string]fault),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(s.countCalls, s.injectFaults)

	e.POST("/auth/register", s.handleRegister)
	e.POST("/auth/login", s.handleLogin)

	e.POST("/auth/refresh", s.handleRefresh, s.requireToken)
	e.GET("/auth/validate-token", s.handleValidateToken, s.requireToken)
	e.GET("/auth/protected", s.handleProtected, s.requireToken)
	e.GET("/organizations/list", s.handleListOrganizations, s.requireToken)
	e.POST("/organizations/create", s.handleCreateOrganization, s.requireToken)
	e.GET("/organizations/partnerships/list", s.handleListPartnerships, s.requireToken)
	e.POST("/organizations/partnerships/create", s.handleCreatePartnership, s.requireToken)

	s.srv = httptest.NewServer(e)
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the base URL of the fake API.
func (s *Server) URL() string {
	return s.srv.URL
}

// AddUser registers a user directly.
func (s *Server) AddUser(username, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = hash
}

// AddOrganization creates an organization owned by username and returns its id.
func (s *Server) AddOrganization(username, name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createOrganizationLocked(username, name).ID
}

// AddPartnership links two organizations, both of which must exist, and returns the partnership id.
func (s *Server) AddPartnership(demandID, supplyID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createPartnershipLocked(demandID, supplyID)
}

// Fail makes every request to path answer status with a {"message": message} body.
func (s *Server) Fail(path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[path] = fault{status: status, message: message}
}

// Garble makes every request to path answer 200 with a body that is not valid JSON.
func (s *Server) Garble(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[path] = fault{status: http.StatusOK, body: `{"organizations": [`}
}

// Calls returns how many requests path has received.
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// TotalCalls returns how many requests the server has received.
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// OrganizationNames returns the names of the organizations username belongs to, sorted.
func (s *Server) OrganizationNames(username string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var names []string
	for id := range s.members[username] {
		names = append(names, s.orgs[id].Name)
	}
	sort.Strings(names)
	return names
}

// PartnershipCount returns the number of partnerships created.
func (s *Server) PartnershipCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.partnerships)
}

func (s *Server) countCalls(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		s.calls[c.Request().URL.Path]++
		s.mu.Unlock()
		return next(c)
	}
}

func (s *Server) injectFaults(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		f, ok := s.faults[c.Request().URL.Path]
		s.mu.Unlock()
		if !ok {
			return next(c)
		}
		if f.body != "" {
			return c.Blob(f.status, echo.MIMEApplicationJSON, []byte(f.body))
		}
		return message(c, f.status, f.message)
	}
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"message": msg})
}
