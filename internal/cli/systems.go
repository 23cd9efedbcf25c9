package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zkcost/proof-cost-planner/internal/config"
	"github.com/zkcost/proof-cost-planner/internal/report"
)

type SystemsOptions struct {
	GlobalOptions
	OutputOptions
}

func DefaultSystemsOptions(cfg *config.Config) *SystemsOptions {
	return &SystemsOptions{
		GlobalOptions: DefaultGlobalOptions(cfg),
		OutputOptions: DefaultOutputOptions(),
	}
}

func NewCmdSystems(cfg *config.Config) *cobra.Command {
	o := DefaultSystemsOptions(cfg)
	cmd := &cobra.Command{
		Use:   "systems",
		Short: "List the known proving system profiles",
		Args:  cobra.NoArgs,
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

func (o *SystemsOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.OutputOptions.Bind(fs)
}

func (o *SystemsOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return o.OutputOptions.Validate(args)
}

func (o *SystemsOptions) Run(ctx context.Context, args []string) error {
	svc, err := o.Service()
	if err != nil {
		return err
	}
	return o.write(&o.GlobalOptions, report.ForSystems(svc.Systems()))
}
