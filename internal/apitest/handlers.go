package apitest

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// isoLayout mirrors the zone-less timestamps the real API emits.
const isoLayout = "2006-01-02T15:04:05.999999"

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createOrganizationRequest struct {
	OrganizationName string `json:"organization_name"`
}

type createPartnershipRequest struct {
	DemandOrgID string `json:"demand_org_id"`
	SupplyOrgID string `json:"supply_org_id"`
}

type partnershipResponse struct {
	ID     string       `json:"partnership_id"`
	Demand organization `json:"demand_organization"`
	Supply organization `json:"supply_organization"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil || req.Username == "" || req.Password == "" {
		return message(c, http.StatusBadRequest, "Username and password are required")
	}

	s.mu.Lock()
	_, exists := s.users[req.Username]
	s.mu.Unlock()
	if exists {
		return message(c, http.StatusBadRequest, "Username already exists")
	}

	s.AddUser(req.Username, req.Password)
	return message(c, http.StatusOK, "User registered successfully")
}

func (s *Server) handleLogin(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil || req.Username == "" || req.Password == "" {
		return message(c, http.StatusBadRequest, "Username and password are required")
	}

	s.mu.Lock()
	hash, ok := s.users[req.Username]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil {
		return message(c, http.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(http.StatusOK, map[string]string{"token": s.IssueToken(req.Username, DefaultTokenTTL)})
}

func (s *Server) handleRefresh(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"token": s.IssueToken(currentUser(c), DefaultTokenTTL)})
}

func (s *Server) handleValidateToken(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message":  "Token is valid",
		"username": currentUser(c),
	})
}

func (s *Server) handleProtected(c echo.Context) error {
	return message(c, http.StatusOK, "Hello "+currentUser(c)+", you are authorized to access this resource")
}

func (s *Server) handleListOrganizations(c echo.Context) error {
	username := currentUser(c)

	s.mu.Lock()
	orgs := make([]organization, 0)
	for _, id := range s.orgOrder {
		if s.members[username][id] {
			orgs = append(orgs, *s.orgs[id])
		}
	}
	s.mu.Unlock()

	return c.JSON(http.StatusOK, map[string]any{"organizations": orgs})
}

func (s *Server) handleCreateOrganization(c echo.Context) error {
	var req createOrganizationRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.OrganizationName) == "" {
		return message(c, http.StatusBadRequest, "Organization name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orgs {
		if o.Name == req.OrganizationName {
			return message(c, http.StatusBadRequest, "Organization name already exists")
		}
	}
	org := s.createOrganizationLocked(currentUser(c), req.OrganizationName)

	return c.JSON(http.StatusOK, map[string]string{
		"message":         "Organization created successfully",
		"organization_id": org.ID,
	})
}

func (s *Server) handleListPartnerships(c echo.Context) error {
	username := currentUser(c)

	s.mu.Lock()
	out := make([]partnershipResponse, 0)
	for _, p := range s.partnerships {
		if s.members[username][p.DemandID] || s.members[username][p.SupplyID] {
			out = append(out, partnershipResponse{
				ID:     p.ID,
				Demand: *s.orgs[p.DemandID],
				Supply: *s.orgs[p.SupplyID],
			})
		}
	}
	s.mu.Unlock()

	return c.JSON(http.StatusOK, map[string]any{"partnerships": out})
}

func (s *Server) handleCreatePartnership(c echo.Context) error {
	var req createPartnershipRequest
	if err := c.Bind(&req); err != nil || req.DemandOrgID == "" || req.SupplyOrgID == "" {
		return message(c, http.StatusBadRequest, "Both organization IDs are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.members[currentUser(c)][req.DemandOrgID] {
		return message(c, http.StatusUnauthorized, "Unauthorized access to demand organization")
	}
	if _, ok := s.orgs[req.SupplyOrgID]; !ok {
		return message(c, http.StatusNotFound, "Supply organization not found")
	}
	id := s.createPartnershipLocked(req.DemandOrgID, req.SupplyOrgID)

	return c.JSON(http.StatusOK, map[string]string{
		"message":        "Partnership created successfully",
		"partnership_id": id,
	})
}

func (s *Server) createOrganizationLocked(username, name string) *organization {
	org := &organization{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedBy: username,
		CreatedAt: s.now().UTC().Format(isoLayout),
	}
	s.orgs[org.ID] = org
	s.orgOrder = append(s.orgOrder, org.ID)
	if s.members[username] == nil {
		s.members[username] = make(map[string]bool)
	}
	s.members[username][org.ID] = true
	return org
}

func (s *Server) createPartnershipLocked(demandID, supplyID string) string {
	id := uuid.NewString()
	s.partnerships = append(s.partnerships, partnership{ID: id, DemandID: demandID, SupplyID: supplyID})
	return id
}

