package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zkcost/proof-cost-planner/pkg/version"
)

type VersionOptions struct {
	Output string
}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{
		Output: "",
	}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print zkcost version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.Output != "" && o.Output != jsonFormat {
				return fmt.Errorf("output format must be %s", jsonFormat)
			}
			return o.Run(cmd, args)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&o.Output, "output", "o", o.Output, "Output format. Empty or json.")
	return cmd
}

func (o *VersionOptions) Run(cmd *cobra.Command, args []string) error {
	versionInfo := version.Get()
	if o.Output == jsonFormat {
		marshalled, err := json.Marshal(versionInfo)
		if err != nil {
			return fmt.Errorf("marshalling version: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", marshalled)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "zkcost Version: %s\n", versionInfo.String())
	return nil
}
