package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/zkcost/proof-cost-planner/internal/report/types"
)

const SheetName = "Report"

var header = []string{"Section", "Metric", "Value"}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatXLSX
}

// Render writes the document rows to a single-sheet workbook.
func (r *Renderer) Render(doc *types.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	rowNum := 1
	if err := writeRow(f, rowNum, header); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "C1", bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for _, section := range doc.Sections {
		name := section.Title
		if name == "" {
			name = doc.Title
		}
		for _, row := range section.Rows {
			rowNum++
			if err := writeRow(f, rowNum, []string{name, row.Label, row.Value}); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "C", 28); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	for col, value := range values {
		cellRef, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cellRef, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cellRef, err)
		}
	}
	return nil
}
