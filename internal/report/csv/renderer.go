package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/zkcost/proof-cost-planner/internal/report/types"
)

var header = []string{"Section", "Metric", "Value"}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

// Render flattens the document into one Section,Metric,Value record per row.
// Untitled sections inherit the document title.
func (r *Renderer) Render(doc *types.Document) ([]byte, error) {
	csvRows := [][]string{header}
	for _, section := range doc.Sections {
		name := section.Title
		if name == "" {
			name = doc.Title
		}
		for _, row := range section.Rows {
			csvRows = append(csvRows, []string{name, row.Label, row.Value})
		}
	}
	return r.convertRowsToCSV(csvRows)
}

func (r *Renderer) convertRowsToCSV(csvRows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range csvRows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return buf.Bytes(), nil
}
