package session

import "github.com/sullhouse/operative-connect-lite/internal/domain"

// Presenter is the rendering surface the controller drives.
type Presenter interface {
	// SwitchView makes v the visible view.
	SwitchView(v View)
	// Notice shows a user-facing message.
	Notice(message string)
	RenderOrganizations(orgs []domain.Organization)
	RenderPartnerships(partnerships []domain.Partnership)
}
