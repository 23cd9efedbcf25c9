package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zkcost/proof-cost-planner/internal/calibration"
	"github.com/zkcost/proof-cost-planner/internal/config"
	"github.com/zkcost/proof-cost-planner/internal/report"
)

type CalibrateOptions struct {
	GlobalOptions
	OutputOptions

	Rounds    int
	Runs      int
	Reference float64
}

func DefaultCalibrateOptions(cfg *config.Config) *CalibrateOptions {
	return &CalibrateOptions{
		GlobalOptions: DefaultGlobalOptions(cfg),
		OutputOptions: DefaultOutputOptions(),
		Rounds:        cfg.Calibration.Rounds,
		Runs:          cfg.Calibration.Runs,
		Reference:     calibration.DefaultReferenceMsPerConstraint,
	}
}

func NewCmdCalibrate(cfg *config.Config) *cobra.Command {
	o := DefaultCalibrateOptions(cfg)
	cmd := &cobra.Command{
		Use:     "calibrate [FLAGS]",
		Short:   "Measure local groth16 proving speed and derive a hardware scale",
		Example: "calibrate --rounds 8192 --runs 5",
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
	return cmd
}

func (o *CalibrateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.OutputOptions.Bind(fs)

	fs.IntVar(&o.Rounds, "rounds", o.Rounds, "Multiplication rounds in the calibration circuit")
	fs.IntVar(&o.Runs, "runs", o.Runs, "Number of timed proofs")
	fs.Float64Var(&o.Reference, "reference-ms-per-constraint", o.Reference, "Proving speed that maps to a hardware scale of 1.0")
}

func (o *CalibrateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return o.OutputOptions.Validate(args)
}

func (o *CalibrateOptions) Run(ctx context.Context, args []string) error {
	result, err := calibration.NewCalibrator(
		calibration.WithRounds(o.Rounds),
		calibration.WithRuns(o.Runs),
		calibration.WithReferenceMsPerConstraint(o.Reference),
	).Run(ctx)
	if err != nil {
		return err
	}

	return o.write(&o.GlobalOptions, report.ForCalibration(result))
}
