package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"

	"github.com/zkcost/proof-cost-planner/internal/report"
)

const jsonFormat = string(report.ReportFormatJSON)

var (
	legalOutputTypes = []string{
		string(report.ReportFormatText),
		string(report.ReportFormatJSON),
		string(report.ReportFormatYAML),
		string(report.ReportFormatCSV),
		string(report.ReportFormatXLSX),
	}
)

type OutputOptions struct {
	Output     string
	OutputFile string
}

func DefaultOutputOptions() OutputOptions {
	return OutputOptions{
		Output: string(report.ReportFormatText),
	}
}

func (o *OutputOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.StringVar(&o.OutputFile, "output-file", o.OutputFile, "Write the report to this file instead of stdout")
}

func (o *OutputOptions) Validate(args []string) error {
	if !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	if report.ReportFormat(o.Output).IsBinary() && o.OutputFile == "" {
		return fmt.Errorf("output format %s requires --output-file", o.Output)
	}
	return nil
}

// write renders doc in the selected format to the output file or to g.out.
func (o *OutputOptions) write(g *GlobalOptions, doc *report.Document) error {
	content, err := report.NewReportService().Render(doc, report.ReportFormat(o.Output))
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if o.OutputFile == "" {
		_, err := g.out.Write(content)
		return err
	}

	if err := os.WriteFile(o.OutputFile, content, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(g.errOut, "Report written to %s\n", o.OutputFile)
	return nil
}
