package output

import (
	"bufio"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sullhouse/operative-connect-lite/internal/domain"
	"github.com/sullhouse/operative-connect-lite/internal/session"
)

var (
	acme   = domain.Organization{ID: "org-1", Name: "Acme", CreatedBy: "alice"}
	globex = domain.Organization{ID: "org-2", Name: "Globex", CreatedBy: "bob"}
)

func TestTerminalPresenter_SwitchView(t *testing.T) {
	p, stdout, _ := newTestPrinter(false)
	presenter := NewTerminalPresenter(p, false)

	presenter.SwitchView(session.ViewLoggedIn)
	presenter.SwitchView(session.ViewLoggedOut)

	assert.Equal(t, session.ViewLoggedOut, presenter.View())
	out := stdout.String()
	assert.Contains(t, out, "Session: logged in\n")
	assert.Contains(t, out, "Session: logged out (run 'oclctl login')\n")
}

func TestTerminalPresenter_Notice(t *testing.T) {
	p, stdout, _ := newTestPrinter(false)
	presenter := NewTerminalPresenter(p, false)

	presenter.Notice("Organization created successfully!")

	assert.Equal(t, "[OK] Organization created successfully!\n", stdout.String())
}

func TestTerminalPresenter_RenderOrganizations(t *testing.T) {
	p, stdout, _ := newTestPrinter(false)
	presenter := NewTerminalPresenter(p, false)

	presenter.RenderOrganizations([]domain.Organization{acme, globex})

	out := stdout.String()
	assert.Contains(t, out, "Organizations")
	assert.Contains(t, out, "CREATED BY")
	assert.Contains(t, out, "org-1")
	assert.Contains(t, out, "Globex")
	assert.Contains(t, out, "bob")
}

func TestTerminalPresenter_RenderEmptyLists(t *testing.T) {
	p, stdout, _ := newTestPrinter(false)
	presenter := NewTerminalPresenter(p, false)

	presenter.RenderOrganizations(nil)
	presenter.RenderPartnerships([]domain.Partnership{})

	out := stdout.String()
	assert.Contains(t, out, "No organizations found.")
	assert.Contains(t, out, "No partnerships found.")
}

func TestTerminalPresenter_RenderPartnerships(t *testing.T) {
	p, stdout, _ := newTestPrinter(false)
	presenter := NewTerminalPresenter(p, false)

	presenter.RenderPartnerships([]domain.Partnership{{ID: "p-1", Demand: acme, Supply: globex}})

	out := stdout.String()
	assert.Contains(t, out, "Acme <-> Globex")
	assert.Contains(t, out, "p-1")
	assert.Contains(t, out, "org-2")
}

func TestTerminalPresenter_JSON(t *testing.T) {
	p, stdout, _ := newTestPrinter(false)
	presenter := NewTerminalPresenter(p, true)

	presenter.SwitchView(session.ViewLoggedIn)
	presenter.Notice("ignored in json mode")
	presenter.RenderOrganizations([]domain.Organization{acme})
	presenter.RenderPartnerships(nil)

	scanner := bufio.NewScanner(strings.NewReader(stdout.String()))
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.Len(t, lines, 2)

	var orgs struct {
		Organizations []map[string]any `json:"organizations"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &orgs))
	require.Len(t, orgs.Organizations, 1)
	assert.Equal(t, "org-1", orgs.Organizations[0]["organization_id"])
	assert.Equal(t, "Acme", orgs.Organizations[0]["organization_name"])

	assert.JSONEq(t, `{"partnerships":[]}`, lines[1])
}
