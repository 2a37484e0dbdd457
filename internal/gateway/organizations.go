package gateway

import (
	"context"
	"net/http"

	"github.com/sullhouse/operative-connect-lite/internal/domain"
)

// ListOrganizations returns the organizations the session user belongs to.
func (c *Client) ListOrganizations(ctx context.Context, token string) ([]domain.Organization, error) {
	var resp listOrganizationsResponse
	if err := c.do(ctx, http.MethodGet, PathListOrganizations, token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Organizations == nil {
		return nil, c.invalid(http.MethodGet, PathListOrganizations, http.StatusOK, missing("organizations"))
	}

	orgs := make([]domain.Organization, 0, len(*resp.Organizations))
	for _, o := range *resp.Organizations {
		orgs = append(orgs, o.toDomain())
	}
	return orgs, nil
}

// CreateOrganization creates an organization and returns its id when the API reports one.
func (c *Client) CreateOrganization(ctx context.Context, token, name string) (string, error) {
	var resp createOrganizationResponse
	req := createOrganizationRequest{OrganizationName: name}
	if err := c.do(ctx, http.MethodPost, PathCreateOrganization, token, req, &resp); err != nil {
		return "", err
	}
	return resp.OrganizationID, nil
}

// ListPartnerships returns the partnerships visible to the session user.
func (c *Client) ListPartnerships(ctx context.Context, token string) ([]domain.Partnership, error) {
	var resp listPartnershipsResponse
	if err := c.do(ctx, http.MethodGet, PathListPartnerships, token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Partnerships == nil {
		return nil, c.invalid(http.MethodGet, PathListPartnerships, http.StatusOK, missing("partnerships"))
	}

	partnerships := make([]domain.Partnership, 0, len(*resp.Partnerships))
	for _, p := range *resp.Partnerships {
		partnerships = append(partnerships, p.toDomain())
	}
	return partnerships, nil
}

// CreatePartnership links two organizations and returns the partnership id when the API reports one.
func (c *Client) CreatePartnership(ctx context.Context, token, demandOrgID, supplyOrgID string) (string, error) {
	var resp createPartnershipResponse
	req := createPartnershipRequest{DemandOrgID: demandOrgID, SupplyOrgID: supplyOrgID}
	if err := c.do(ctx, http.MethodPost, PathCreatePartnership, token, req, &resp); err != nil {
		return "", err
	}
	return resp.PartnershipID, nil
}
