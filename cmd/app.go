package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sullhouse/operative-connect-lite/internal/gateway"
	"github.com/sullhouse/operative-connect-lite/internal/infrastructure/token"
	"github.com/sullhouse/operative-connect-lite/internal/infrastructure/tokenstore"
	"github.com/sullhouse/operative-connect-lite/internal/output"
	"github.com/sullhouse/operative-connect-lite/internal/session"
)

// app bundles what a command needs to run one session action.
type app struct {
	printer    *output.Printer
	presenter  *output.TerminalPresenter
	store      *tokenstore.FileStore
	controller *session.Controller
	json       bool
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	mode, _ := output.ParseColorMode(colorFlag)
	return output.NewPrinter(output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: cfg.Output.Colors && isTerminal(cmd.OutOrStdout()),
		Quiet:        quiet,
		Out:          cmd.OutOrStdout(),
		Err:          cmd.ErrOrStderr(),
	})
}

// newApp wires the API client, token store, and terminal presenter into a controller.
func newApp(cmd *cobra.Command) *app {
	jsonOutput := false
	if f := cmd.Flags().Lookup("json"); f != nil {
		jsonOutput = f.Value.String() == "true"
	}

	printer := newPrinter(cmd)
	presenter := output.NewTerminalPresenter(printer, jsonOutput)
	store := tokenstore.NewFileStore(cfg.Session.Dir)
	client := gateway.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)

	controller := session.NewController(client, store, token.NewInspector(), presenter, logger,
		session.WithExpiryWarning(cfg.Session.ExpiryWarning),
	)

	return &app{
		printer:    printer,
		presenter:  presenter,
		store:      store,
		controller: controller,
		json:       jsonOutput,
	}
}

// hints prints "See also" hints unless the command is producing JSON.
func (a *app) hints(command string) {
	if !a.json {
		a.printer.PrintHints(command)
	}
}

func addJSONFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "output as JSON")
}
