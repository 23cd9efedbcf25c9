package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zkcost/proof-cost-planner/internal/config"
	"github.com/zkcost/proof-cost-planner/internal/gascost"
	"github.com/zkcost/proof-cost-planner/internal/report"
)

// GasPriceOptions are the market inputs of every on-chain cost.
type GasPriceOptions struct {
	GasPriceGwei float64
	EthPriceUSD  float64
}

func DefaultGasPriceOptions(cfg *config.Config) GasPriceOptions {
	return GasPriceOptions{
		GasPriceGwei: cfg.Gas.GasPriceGwei,
		EthPriceUSD:  cfg.Gas.EthPriceUSD,
	}
}

func (o *GasPriceOptions) Bind(fs *pflag.FlagSet) {
	fs.Float64Var(&o.GasPriceGwei, "gas-price-gwei", o.GasPriceGwei, "Gas price in gwei")
	fs.Float64Var(&o.EthPriceUSD, "eth-price-usd", o.EthPriceUSD, "ETH price in USD")
}

type VerifyCostOptions struct {
	GlobalOptions
	OutputOptions
	GasPriceOptions

	NumProofs   uint64
	GasPerProof uint64
}

func DefaultVerifyCostOptions(cfg *config.Config) *VerifyCostOptions {
	return &VerifyCostOptions{
		GlobalOptions:   DefaultGlobalOptions(cfg),
		OutputOptions:   DefaultOutputOptions(),
		GasPriceOptions: DefaultGasPriceOptions(cfg),
	}
}

func NewCmdVerifyCost(cfg *config.Config) *cobra.Command {
	o := DefaultVerifyCostOptions(cfg)
	cmd := &cobra.Command{
		Use:     "verify-cost [FLAGS]",
		Short:   "Estimate the on-chain cost of verifying a number of proofs",
		Example: "verify-cost --num-proofs 1000 --gas-per-proof 300000 --gas-price-gwei 30 --eth-price-usd 3200",
		Args:    cobra.NoArgs,
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
	for _, name := range []string{"num-proofs", "gas-per-proof", "gas-price-gwei", "eth-price-usd"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (o *VerifyCostOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.OutputOptions.Bind(fs)
	o.GasPriceOptions.Bind(fs)

	fs.Uint64Var(&o.NumProofs, "num-proofs", 0, "Number of proofs to verify")
	fs.Uint64Var(&o.GasPerProof, "gas-per-proof", 0, "Gas used by one verification")
}

func (o *VerifyCostOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return o.OutputOptions.Validate(args)
}

func (o *VerifyCostOptions) Run(ctx context.Context, args []string) error {
	svc := o.GasService()

	cost, err := svc.VerificationCost(ctx, gascost.Request{
		NumProofs:    o.NumProofs,
		GasPerProof:  o.GasPerProof,
		GasPriceGwei: o.GasPriceGwei,
		EthPriceUSD:  o.EthPriceUSD,
	})
	if err != nil {
		return err
	}
	if cost.IsLargeWorkload() {
		o.warnf("num_proofs is very large; check that this is intentional.")
	}

	return o.write(&o.GlobalOptions, report.ForVerification(cost))
}
