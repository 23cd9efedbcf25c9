package cli

import (
	"github.com/spf13/cobra"

	"github.com/zkcost/proof-cost-planner/internal/config"
)

// NewCmdRoot assembles the zkcost command tree. Flag defaults come from cfg.
func NewCmdRoot(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zkcost [command] [flags]",
		Short: "zkcost estimates zero-knowledge proving and on-chain verification costs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
	}
	cmd.AddCommand(NewCmdEstimate(cfg))
	cmd.AddCommand(NewCmdSystems(cfg))
	cmd.AddCommand(NewCmdVerifyCost(cfg))
	cmd.AddCommand(NewCmdCompare(cfg))
	cmd.AddCommand(NewCmdPlan(cfg))
	cmd.AddCommand(NewCmdCalibrate(cfg))
	cmd.AddCommand(NewCmdVersion())

	return cmd
}
