// Package cmd contains all CLI commands for oclctl
package cmd

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sullhouse/operative-connect-lite/internal/config"
	"github.com/sullhouse/operative-connect-lite/internal/output"
)

var (
	cfgFile   string
	apiURL    string
	verbose   bool
	quiet     bool
	colorFlag string
	cfg       *config.Config
	logger    *slog.Logger
	version   = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "oclctl",
	Short: "Operative Connect Lite command-line client",
	Long: `oclctl manages your Operative Connect Lite session, organizations, and
partnerships from the terminal.

Credentials are checked locally before anything is sent to the API. The session
token is kept in a private file under the session directory and sent with every
authenticated request.

Example usage:
  oclctl register -u alice        # Create an account (prompts for a password)
  oclctl login -u alice           # Start a session
  oclctl home                     # Show your organizations and partnerships
  oclctl org create "Acme Corp"   # Create an organization
  oclctl session refresh          # Extend the session`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute runs the root command with a background context.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command and prints any error as a structured CLI error.
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	if isUnknownCommand(err) {
		err = usageError(rootCmd, err)
	}
	errorPrinter().FormatError(output.FromError(err))
	return err
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return output.ExitSuccess
	}
	return output.FromError(err).ExitCode
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .oclctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides api.base_url)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(cmd, err)
	})
}

// initConfig loads configuration and sets up the logger.
func initConfig(cmd *cobra.Command) error {
	if _, err := output.ParseColorMode(colorFlag); err != nil {
		return usageError(cmd, err)
	}

	var err error
	cfg, err = config.Load(cfgFile, apiURL)
	if err != nil {
		return &output.CLIError{
			Summary:    "invalid configuration",
			Detail:     err.Error(),
			Suggestion: "Check .oclctl.yaml syntax, OCLCTL_* environment variables, or use --config",
			ExitCode:   output.ExitConfigError,
		}
	}

	logger = newLogger(cmd, cfg.Logging)
	logger.Debug("configuration loaded",
		"source", cfg.Source,
		"api_base_url", cfg.API.BaseURL,
		"session_dir", cfg.Session.Dir,
	)
	return nil
}

func newLogger(cmd *cobra.Command, lc config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), opts))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
}

// errorPrinter builds a printer for reporting errors, which may happen before config is loaded.
func errorPrinter() *output.Printer {
	mode, _ := output.ParseColorMode(colorFlag)
	configColors := true
	if cfg != nil {
		configColors = cfg.Output.Colors
	}
	return output.NewPrinter(output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: configColors && isTerminal(rootCmd.ErrOrStderr()),
		Out:          rootCmd.OutOrStdout(),
		Err:          rootCmd.ErrOrStderr(),
	})
}

func usageError(cmd *cobra.Command, err error) error {
	return &output.CLIError{
		Summary:    err.Error(),
		Suggestion: "Run '" + cmd.CommandPath() + " --help' for usage",
		ExitCode:   output.ExitUsageError,
	}
}

// exactArgs is cobra.ExactArgs with a usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(cmd, err)
		}
		return nil
	}
}

// noArgs is cobra.NoArgs with a usage exit code.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError(cmd, err)
	}
	return nil
}

// isUnknownCommand reports whether err is cobra's unknown-command error.
func isUnknownCommand(err error) bool {
	var cliErr *output.CLIError
	return !errors.As(err, &cliErr) && strings.HasPrefix(err.Error(), "unknown command")
}
