package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/sullhouse/operative-connect-lite/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: `Display the effective oclctl configuration after defaults, .oclctl.yaml,
.env, OCLCTL_* environment variables, and flags are applied.

Examples:
  oclctl config                # Show all config
  oclctl config --path         # Show config file path
  oclctl config --json         # Output as JSON`,
	Args: noArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().Bool("path", false, "show config file path")
	addJSONFlag(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	showPath, _ := cmd.Flags().GetBool("path")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if showPath {
		if cfg.Source == "" {
			printer.Info("No config file found (using defaults)")
		} else {
			printer.Info("Config file: %s", cfg.Source)
		}
		return nil
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	printer.Header("Current Configuration")

	table := output.NewTable(printer.Out(), []string{"KEY", "VALUE"}, printer.IsQuiet())
	table.AddRow("api.base_url", cfg.API.BaseURL)
	table.AddRow("api.timeout", cfg.API.Timeout.String())
	table.AddRow("session.dir", cfg.Session.Dir)
	table.AddRow("session.expiry_warning", cfg.Session.ExpiryWarning.String())
	table.AddRow("logging.level", cfg.Logging.Level)
	table.AddRow("logging.format", cfg.Logging.Format)
	table.AddRow("output.colors", boolString(cfg.Output.Colors))
	return table.Render()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
