package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zkcost/proof-cost-planner/internal/config"
	"github.com/zkcost/proof-cost-planner/internal/gascost"
	"github.com/zkcost/proof-cost-planner/internal/report"
)

type CompareOptions struct {
	GlobalOptions
	OutputOptions
	GasPriceOptions

	NumProofs    uint64
	NameA        string
	NameB        string
	GasPerProofA uint64
	GasPerProofB uint64
}

func DefaultCompareOptions(cfg *config.Config) *CompareOptions {
	return &CompareOptions{
		GlobalOptions:   DefaultGlobalOptions(cfg),
		OutputOptions:   DefaultOutputOptions(),
		GasPriceOptions: DefaultGasPriceOptions(cfg),
	}
}

func NewCmdCompare(cfg *config.Config) *cobra.Command {
	o := DefaultCompareOptions(cfg)
	cmd := &cobra.Command{
		Use:     "compare [FLAGS]",
		Short:   "Compare the on-chain verification cost of two schemes",
		Example: "compare --num-proofs 1000 --gas-per-proof-a 230000 --gas-per-proof-b 300000 --gas-price-gwei 30 --eth-price-usd 3200",
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
	for _, name := range []string{"num-proofs", "gas-per-proof-a", "gas-per-proof-b", "gas-price-gwei", "eth-price-usd"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (o *CompareOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.OutputOptions.Bind(fs)
	o.GasPriceOptions.Bind(fs)

	fs.Uint64Var(&o.NumProofs, "num-proofs", 0, "Number of proofs to verify")
	fs.Uint64Var(&o.GasPerProofA, "gas-per-proof-a", 0, "Gas per proof of scheme A")
	fs.Uint64Var(&o.GasPerProofB, "gas-per-proof-b", 0, "Gas per proof of scheme B")
	fs.StringVar(&o.NameA, "name-a", "", "Label of scheme A")
	fs.StringVar(&o.NameB, "name-b", "", "Label of scheme B")
}

func (o *CompareOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return o.OutputOptions.Validate(args)
}

func (o *CompareOptions) Run(ctx context.Context, args []string) error {
	svc := o.GasService()

	cmp, err := svc.CompareSchemes(ctx, gascost.CompareRequest{
		NumProofs:    o.NumProofs,
		SchemeA:      gascost.Scheme{Name: o.NameA, GasPerProof: o.GasPerProofA},
		SchemeB:      gascost.Scheme{Name: o.NameB, GasPerProof: o.GasPerProofB},
		GasPriceGwei: o.GasPriceGwei,
		EthPriceUSD:  o.EthPriceUSD,
	})
	if err != nil {
		return err
	}

	return o.write(&o.GlobalOptions, report.ForComparison(cmp))
}
