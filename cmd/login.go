package cmd

import (
	"github.com/spf13/cobra"
)

var loginFlags credentialFlags

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store a session token",
	Long: `Log in to the API and store the returned session token.

The username and password are checked locally first; nothing is sent when they
do not meet the account rules. When the password is not given and stdin is a
terminal, it is prompted for without echo.

Examples:
  oclctl login -u alice                       # Prompt for the password
  echo "$PASSWORD" | oclctl login -u alice --password-stdin`,
	Args: noArgs,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginFlags.register(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	username, password, err := loginFlags.resolve(cmd)
	if err != nil {
		return err
	}

	a := newApp(cmd)
	if err := a.controller.Login(cmd.Context(), username, password); err != nil {
		return err
	}

	a.hints("login")
	return nil
}
