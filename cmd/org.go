package cmd

import (
	"github.com/spf13/cobra"
)

var orgCmd = &cobra.Command{
	Use:     "org",
	Aliases: []string{"organization", "organizations"},
	Short:   "List and create organizations",
	Long: `List and create organizations.

Examples:
  oclctl org list
  oclctl org create "Acme Corp"`,
}

var orgListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the organizations you belong to",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		if _, err := a.controller.ListOrganizations(cmd.Context()); err != nil {
			return err
		}
		a.hints("org list")
		return nil
	},
}

var orgCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create an organization",
	Long: `Create an organization and list your organizations again.

Names are 3 to 100 characters of letters, digits, spaces, hyphens, and underscores.`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		id, err := a.controller.CreateOrganization(cmd.Context(), args[0])
		if id != "" {
			logger.Info("organization created", "organization_id", id)
		}
		if err != nil {
			return err
		}
		a.hints("org create")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(orgCmd)
	orgCmd.AddCommand(orgListCmd, orgCreateCmd)
	addJSONFlag(orgListCmd)
	addJSONFlag(orgCreateCmd)
}
