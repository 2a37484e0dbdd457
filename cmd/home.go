package cmd

import (
	"github.com/spf13/cobra"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show your organizations and partnerships",
	Long: `Fetch your organizations and partnerships and show both.

Examples:
  oclctl home
  oclctl home --json | jq .`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		if err := a.controller.ShowHome(cmd.Context()); err != nil {
			return err
		}
		a.hints("home")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(homeCmd)
	addJSONFlag(homeCmd)
}
