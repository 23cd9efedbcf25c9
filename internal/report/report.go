package report

import (
	"fmt"
	"sort"

	"github.com/zkcost/proof-cost-planner/internal/report/csv"
	"github.com/zkcost/proof-cost-planner/internal/report/structured"
	"github.com/zkcost/proof-cost-planner/internal/report/text"
	"github.com/zkcost/proof-cost-planner/internal/report/types"
	"github.com/zkcost/proof-cost-planner/internal/report/xlsx"
)

type ReportFormat = types.ReportFormat
type Document = types.Document

const (
	ReportFormatText = types.ReportFormatText
	ReportFormatJSON = types.ReportFormatJSON
	ReportFormatYAML = types.ReportFormatYAML
	ReportFormatCSV  = types.ReportFormatCSV
	ReportFormatXLSX = types.ReportFormatXLSX
)

type ReportService struct {
	renderers map[types.ReportFormat]types.ReportRenderer
}

func NewReportService() *ReportService {
	service := &ReportService{
		renderers: make(map[types.ReportFormat]types.ReportRenderer),
	}

	for _, r := range []types.ReportRenderer{
		text.NewRenderer(),
		structured.NewJSONRenderer(),
		structured.NewYAMLRenderer(),
		csv.NewRenderer(),
		xlsx.NewRenderer(),
	} {
		service.renderers[r.SupportedFormat()] = r
	}

	return service
}

// Formats returns the supported format names, sorted.
func (r *ReportService) Formats() []string {
	formats := make([]string, 0, len(r.renderers))
	for f := range r.renderers {
		formats = append(formats, string(f))
	}
	sort.Strings(formats)
	return formats
}

func (r *ReportService) Render(doc *types.Document, format types.ReportFormat) ([]byte, error) {
	renderer, exists := r.renderers[format]
	if !exists {
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
	return renderer.Render(doc)
}
