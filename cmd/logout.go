package cmd

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	Long:  `Delete the locally stored session token. The API is not contacted.`,
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		if err := a.controller.Logout(); err != nil {
			return err
		}
		a.hints("logout")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
