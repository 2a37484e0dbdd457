package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/sullhouse/operative-connect-lite/internal/output"
	"github.com/sullhouse/operative-connect-lite/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect and maintain the current session",
	Long: `Inspect and maintain the current session.

Examples:
  oclctl session check     # Ask the API whether the stored token is still valid
  oclctl session refresh   # Exchange the stored token for a fresh one
  oclctl session show      # Show who the token belongs to and when it expires`,
}

var sessionCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the stored token with the API",
	Long: `Validate the stored token with the API and report whether you are logged in.

Exits with status 6 when there is no usable session.`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		view, err := a.controller.CheckSession(cmd.Context())
		if err != nil {
			return err
		}
		if view != session.ViewLoggedIn {
			return &output.CLIError{
				Summary:    "not logged in",
				Suggestion: "Run 'oclctl login' to start a session",
				ExitCode:   output.ExitNotLoggedIn,
			}
		}
		a.hints("session check")
		return nil
	},
}

var sessionRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Exchange the stored token for a fresh one",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		if err := a.controller.RefreshToken(cmd.Context()); err != nil {
			return err
		}
		a.hints("session refresh")
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored token's user and expiry",
	Long: `Decode the stored token and show its user and expiry without contacting the API.

The claims are not verified; use 'oclctl session check' to ask the API.`,
	Args: noArgs,
	RunE: runSessionShow,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionCheckCmd, sessionRefreshCmd, sessionShowCmd)
	addJSONFlag(sessionShowCmd)
}

type sessionInfo struct {
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issued_at,omitzero"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
	Status    string    `json:"status"`
	TokenFile string    `json:"token_file"`
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	a := newApp(cmd)
	claims, err := a.controller.Inspect()
	if err != nil {
		return err
	}

	now := time.Now()
	status := "active"
	switch {
	case claims.Expired(now):
		status = "expired"
	case claims.ExpiresWithin(now, cfg.Session.ExpiryWarning):
		status = "expiring"
	}

	info := sessionInfo{
		Username:  claims.Username,
		IssuedAt:  claims.IssuedAt,
		ExpiresAt: claims.ExpiresAt,
		Status:    status,
		TokenFile: a.store.Path(),
	}
	if a.json {
		return a.printer.JSON(info)
	}

	a.printer.Header("Session")
	table := output.NewTable(a.printer.Out(), []string{"Key", "Value"}, a.printer.IsQuiet())
	table.AddRow("username", info.Username)
	table.AddRow("issued", formatClaimTime(info.IssuedAt))
	table.AddRow("expires", formatClaimTime(info.ExpiresAt))
	table.AddRow("status", info.Status)
	table.AddRow("token file", info.TokenFile)
	return table.Render()
}

func formatClaimTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.RFC3339)
}
