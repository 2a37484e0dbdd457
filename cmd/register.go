package cmd

import (
	"github.com/spf13/cobra"
)

var registerFlags credentialFlags

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long: `Create an account with the API.

Usernames are 3 to 50 characters of letters, digits, '.', '@', '-', and '_'.
Passwords need at least 8 characters including an uppercase letter, a lowercase
letter, a digit, and one of !@#$%^&*(),.?":{}|<>

Registering does not log you in; run 'oclctl login' afterwards.

Examples:
  oclctl register -u alice`,
	Args: noArgs,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerFlags.register(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	username, password, err := registerFlags.resolve(cmd)
	if err != nil {
		return err
	}

	a := newApp(cmd)
	if err := a.controller.Register(cmd.Context(), username, password); err != nil {
		return err
	}

	a.hints("register")
	return nil
}
