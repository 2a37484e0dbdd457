package domain

import "time"

// Organization is an organization owned by the API. The client only keeps a display copy.
type Organization struct {
	ID        string    `json:"organization_id"`
	Name      string    `json:"organization_name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Partnership links a demand-side organization with a supply-side organization.
type Partnership struct {
	ID     string       `json:"partnership_id"`
	Demand Organization `json:"demand_organization"`
	Supply Organization `json:"supply_organization"`
}
