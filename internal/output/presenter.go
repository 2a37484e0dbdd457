package output

import (
	"time"

	"github.com/sullhouse/operative-connect-lite/internal/domain"
	"github.com/sullhouse/operative-connect-lite/internal/session"
)

// TerminalPresenter renders session views, notices, and lists to the terminal.
// In JSON mode lists are written as one JSON object per line and the view and
// notice output is suppressed.
type TerminalPresenter struct {
	printer *Printer
	json    bool
	view    session.View
}

var _ session.Presenter = (*TerminalPresenter)(nil)

// NewTerminalPresenter creates a presenter writing through p.
func NewTerminalPresenter(p *Printer, jsonOutput bool) *TerminalPresenter {
	return &TerminalPresenter{printer: p, json: jsonOutput, view: session.ViewLoggedOut}
}

// View returns the last view switched to.
func (t *TerminalPresenter) View() session.View {
	return t.view
}

func (t *TerminalPresenter) SwitchView(v session.View) {
	t.view = v
	if t.json {
		return
	}
	switch v {
	case session.ViewLoggedIn:
		t.printer.Print("Session: %s", t.printer.Bold("logged in"))
	default:
		t.printer.Print("Session: %s %s", t.printer.Bold("logged out"), t.printer.Dim("(run 'oclctl login')"))
	}
}

func (t *TerminalPresenter) Notice(message string) {
	if t.json {
		return
	}
	t.printer.Success("%s", message)
}

func (t *TerminalPresenter) RenderOrganizations(orgs []domain.Organization) {
	if t.json {
		t.printer.JSON(struct {
			Organizations []domain.Organization `json:"organizations"`
		}{Organizations: nonNil(orgs)})
		return
	}

	t.printer.Header("Organizations")
	if len(orgs) == 0 {
		t.printer.Info("No organizations found.")
		return
	}
	table := NewTable(t.printer.Out(), []string{"ID", "Name", "Created By", "Created"}, t.printer.IsQuiet())
	for _, o := range orgs {
		table.AddRow(o.ID, o.Name, o.CreatedBy, formatTime(o.CreatedAt))
	}
	table.Render()
}

func (t *TerminalPresenter) RenderPartnerships(partnerships []domain.Partnership) {
	if t.json {
		t.printer.JSON(struct {
			Partnerships []domain.Partnership `json:"partnerships"`
		}{Partnerships: nonNil(partnerships)})
		return
	}

	t.printer.Header("Partnerships")
	if len(partnerships) == 0 {
		t.printer.Info("No partnerships found.")
		return
	}
	table := NewTable(t.printer.Out(), []string{"ID", "Partnership", "Demand ID", "Supply ID"}, t.printer.IsQuiet())
	for _, p := range partnerships {
		table.AddRow(p.ID, p.Demand.Name+" <-> "+p.Supply.Name, p.Demand.ID, p.Supply.ID)
	}
	table.Render()
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
