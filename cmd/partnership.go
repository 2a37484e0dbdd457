package cmd

import (
	"github.com/spf13/cobra"
)

var partnershipCmd = &cobra.Command{
	Use:     "partnership",
	Aliases: []string{"partnerships"},
	Short:   "List and create partnerships",
	Long: `List and create partnerships between a demand and a supply organization.

Examples:
  oclctl partnership list
  oclctl partnership create DEMAND_ORG_ID SUPPLY_ORG_ID`,
}

var partnershipListCmd = &cobra.Command{
	Use:   "list",
	Short: "List partnerships involving your organizations",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		if _, err := a.controller.ListPartnerships(cmd.Context()); err != nil {
			return err
		}
		a.hints("partnership list")
		return nil
	},
}

var partnershipCreateCmd = &cobra.Command{
	Use:   "create DEMAND_ORG_ID SUPPLY_ORG_ID",
	Short: "Create a partnership",
	Long: `Create a partnership and list your partnerships again.

You must belong to the demand organization. Both ids are organization UUIDs as
shown by 'oclctl org list'.`,
	Args: exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		id, err := a.controller.CreatePartnership(cmd.Context(), args[0], args[1])
		if id != "" {
			logger.Info("partnership created", "partnership_id", id)
		}
		if err != nil {
			return err
		}
		a.hints("partnership create")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(partnershipCmd)
	partnershipCmd.AddCommand(partnershipListCmd, partnershipCreateCmd)
	addJSONFlag(partnershipListCmd)
	addJSONFlag(partnershipCreateCmd)
}
