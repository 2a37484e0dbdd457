package gateway

import (
	"time"

	"github.com/sullhouse/operative-connect-lite/internal/domain"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type organizationDTO struct {
	OrganizationID   string `json:"organization_id"`
	ID               string `json:"id"`
	OrganizationName string `json:"organization_name"`
	CreatedBy        string `json:"created_by"`
	CreatedAt        string `json:"created_at"`
}

type partnershipDTO struct {
	PartnershipID      string          `json:"partnership_id"`
	DemandOrganization organizationDTO `json:"demand_organization"`
	SupplyOrganization organizationDTO `json:"supply_organization"`
}

// The list wrappers use pointers so a missing key can be told apart from an empty list.
type listOrganizationsResponse struct {
	Organizations *[]organizationDTO `json:"organizations"`
}

type listPartnershipsResponse struct {
	Partnerships *[]partnershipDTO `json:"partnerships"`
}

type createOrganizationRequest struct {
	OrganizationName string `json:"organization_name"`
}

type createOrganizationResponse struct {
	Message        string `json:"message"`
	OrganizationID string `json:"organization_id"`
}

type createPartnershipRequest struct {
	DemandOrgID string `json:"demand_org_id"`
	SupplyOrgID string `json:"supply_org_id"`
}

type createPartnershipResponse struct {
	Message       string `json:"message"`
	PartnershipID string `json:"partnership_id"`
}

func (d organizationDTO) toDomain() domain.Organization {
	id := d.OrganizationID
	if id == "" {
		id = d.ID
	}
	return domain.Organization{
		ID:        id,
		Name:      d.OrganizationName,
		CreatedBy: d.CreatedBy,
		CreatedAt: parseTimestamp(d.CreatedAt),
	}
}

func (d partnershipDTO) toDomain() domain.Partnership {
	return domain.Partnership{
		ID:     d.PartnershipID,
		Demand: d.DemandOrganization.toDomain(),
		Supply: d.SupplyOrganization.toDomain(),
	}
}

// timestampLayouts covers RFC 3339 and the zone-less ISO 8601 form the API emits.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// parseTimestamp returns the zero time for empty or unrecognised values; the
// timestamp is display-only.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
