package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zkcost/proof-cost-planner/internal/config"
	"github.com/zkcost/proof-cost-planner/internal/report"
	"github.com/zkcost/proof-cost-planner/internal/service"
)

type PlanOptions struct {
	GlobalOptions
	OutputOptions
	WorkloadOptions
	GasPriceOptions

	GasPerProof uint64
}

func DefaultPlanOptions(cfg *config.Config) *PlanOptions {
	return &PlanOptions{
		GlobalOptions:   DefaultGlobalOptions(cfg),
		OutputOptions:   DefaultOutputOptions(),
		WorkloadOptions: DefaultWorkloadOptions(cfg),
		GasPriceOptions: DefaultGasPriceOptions(cfg),
	}
}

func NewCmdPlan(cfg *config.Config) *cobra.Command {
	o := DefaultPlanOptions(cfg)
	cmd := &cobra.Command{
		Use:     "plan TX_COUNT [FLAGS]",
		Short:   "Estimate proving and on-chain verification together",
		Example: "plan 5000 --system aztec --gas-per-proof 300000 --gas-price-gwei 30 --eth-price-usd 3200",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Finish(o.Run(cmd.Context(), args))
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *PlanOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.OutputOptions.Bind(fs)
	o.WorkloadOptions.Bind(fs)
	o.GasPriceOptions.Bind(fs)

	fs.Uint64Var(&o.GasPerProof, "gas-per-proof", 0, "Gas used by one on-chain verification")
}

func (o *PlanOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if err := o.OutputOptions.Validate(args); err != nil {
		return err
	}
	return o.WorkloadOptions.Validate(args)
}

func (o *PlanOptions) Run(ctx context.Context, args []string) error {
	svc, err := o.Service()
	if err != nil {
		return err
	}

	plan, err := svc.Plan(ctx, service.PlanRequest{
		System:       o.System,
		Params:       o.params(),
		GasPerProof:  o.GasPerProof,
		GasPriceGwei: o.GasPriceGwei,
		EthPriceUSD:  o.EthPriceUSD,
	})
	if err != nil {
		return err
	}
	for _, msg := range plan.Errors {
		o.warnf("%s", msg)
	}

	return o.write(&o.GlobalOptions, report.ForPlan(plan))
}
