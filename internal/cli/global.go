package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/zkcost/proof-cost-planner/internal/config"
	"github.com/zkcost/proof-cost-planner/internal/service"
	"github.com/zkcost/proof-cost-planner/pkg/log"
	"github.com/zkcost/proof-cost-planner/pkg/metrics"
	"github.com/zkcost/proof-cost-planner/pkg/runid"
)

type GlobalOptions struct {
	LogLevel        string
	ProfilesFile    string
	MetricsTextfile string

	out    io.Writer
	errOut io.Writer
}

func DefaultGlobalOptions(cfg *config.Config) GlobalOptions {
	return GlobalOptions{
		LogLevel:        cfg.Service.LogLevel,
		ProfilesFile:    cfg.Estimator.ProfilesFile,
		MetricsTextfile: cfg.Service.MetricsTextfile,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&o.ProfilesFile, "profiles-file", o.ProfilesFile, "YAML file with additional proving system profiles")
	fs.StringVar(&o.MetricsTextfile, "metrics-textfile", o.MetricsTextfile, "Write prometheus metrics to this file when the command ends")
}

// Complete installs the global logger and tags the command context with a run id.
func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	logger := log.InitLog(log.ParseLevel(o.LogLevel))
	zap.ReplaceGlobals(logger)

	cmd.SetContext(runid.ToContext(cmd.Context(), runid.Generate()))

	o.out = cmd.OutOrStdout()
	o.errOut = cmd.ErrOrStderr()
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

// Service builds an EstimationService over the built-in profiles and the profiles file, if any.
func (o *GlobalOptions) Service() (*service.EstimationService, error) {
	catalog, err := config.LoadCatalog(o.ProfilesFile)
	if err != nil {
		return nil, err
	}
	return service.NewEstimationService(catalog), nil
}

// GasService builds an EstimationService for commands that only price gas.
// The profiles file is not read.
func (o *GlobalOptions) GasService() *service.EstimationService {
	return service.NewEstimationService(nil)
}

// Finish writes the metrics textfile, if requested, and returns runErr unless
// the write itself failed after a successful run.
func (o *GlobalOptions) Finish(runErr error) error {
	if o.MetricsTextfile == "" {
		return runErr
	}
	if err := metrics.WriteTextfile(o.MetricsTextfile); err != nil {
		zap.S().Named("cli").Errorw("failed to write metrics textfile", "path", o.MetricsTextfile, "error", err)
		if runErr == nil {
			return fmt.Errorf("writing metrics textfile: %w", err)
		}
	}
	return runErr
}

func (o *GlobalOptions) warnf(format string, args ...any) {
	fmt.Fprintf(o.errOut, "WARNING: "+format+"\n", args...)
}
