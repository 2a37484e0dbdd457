package cmd

import (
	"github.com/spf13/cobra"
)

var protectedCmd = &cobra.Command{
	Use:   "protected",
	Short: "Call the API's protected endpoint with the stored token",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).controller.CallProtectedResource(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(protectedCmd)
}
