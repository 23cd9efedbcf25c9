package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zkcost/proof-cost-planner/internal/config"
	"github.com/zkcost/proof-cost-planner/internal/costmodel"
	"github.com/zkcost/proof-cost-planner/internal/report"
	"github.com/zkcost/proof-cost-planner/internal/service"
)

// WorkloadOptions are the cost model inputs shared by estimate and plan.
type WorkloadOptions struct {
	System        string
	BatchSize     int
	SecurityBits  int
	HardwareScale float64

	txCount int
}

func DefaultWorkloadOptions(cfg *config.Config) WorkloadOptions {
	return WorkloadOptions{
		System:        cfg.Estimator.DefaultSystem,
		BatchSize:     cfg.Estimator.BatchSize,
		SecurityBits:  cfg.Estimator.SecurityBits,
		HardwareScale: cfg.Estimator.HardwareScale,
	}
}

func (o *WorkloadOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.System, "system", "s", o.System, "Proving system profile key (see 'zkcost systems')")
	fs.IntVar(&o.BatchSize, "batch-size", o.BatchSize, "Transactions covered by one proof")
	fs.IntVar(&o.SecurityBits, "security-bits", o.SecurityBits, "Security level in bits (128, 192 or 256)")
	fs.Float64Var(&o.HardwareScale, "hardware-scale", o.HardwareScale, "Relative speed of the proving hardware (1.0 = baseline)")
}

// Validate parses TX_COUNT. Range checks are left to the cost model.
func (o *WorkloadOptions) Validate(args []string) error {
	txCount, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid TX_COUNT %q: must be an integer", args[0])
	}
	o.txCount = txCount
	return nil
}

func (o *WorkloadOptions) params() costmodel.Params {
	return costmodel.Params{
		TxCount:       o.txCount,
		BatchSize:     o.BatchSize,
		SecurityBits:  o.SecurityBits,
		HardwareScale: o.HardwareScale,
	}
}

type EstimateOptions struct {
	GlobalOptions
	OutputOptions
	WorkloadOptions

	JSON bool
}

func DefaultEstimateOptions(cfg *config.Config) *EstimateOptions {
	return &EstimateOptions{
		GlobalOptions:   DefaultGlobalOptions(cfg),
		OutputOptions:   DefaultOutputOptions(),
		WorkloadOptions: DefaultWorkloadOptions(cfg),
	}
}

func NewCmdEstimate(cfg *config.Config) *cobra.Command {
	o := DefaultEstimateOptions(cfg)
	cmd := &cobra.Command{
		Use:     "estimate TX_COUNT [FLAGS]",
		Short:   "Estimate proof generation time and cost for a workload",
		Example: "estimate 5000 --system zama --batch-size 256 --security-bits 192 -o json",
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

func (o *EstimateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.OutputOptions.Bind(fs)
	o.WorkloadOptions.Bind(fs)

	fs.BoolVar(&o.JSON, "json", false, "Shortcut for --output json")
}

func (o *EstimateOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	if o.JSON {
		o.Output = jsonFormat
	}
	return nil
}

func (o *EstimateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if err := o.OutputOptions.Validate(args); err != nil {
		return err
	}
	return o.WorkloadOptions.Validate(args)
}

func (o *EstimateOptions) Run(ctx context.Context, args []string) error {
	svc, err := o.Service()
	if err != nil {
		return err
	}

	est, err := svc.Estimate(ctx, service.EstimateRequest{
		System: o.System,
		Params: o.params(),
	})
	if err != nil {
		return err
	}

	return o.write(&o.GlobalOptions, report.ForEstimate(est))
}
