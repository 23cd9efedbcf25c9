package text

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/zkcost/proof-cost-planner/internal/report/types"
)

const rowIndent = "  "

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatText
}

// Render prints the document as "label : value" lines. Titled sections get a
// heading and indented rows. Every label of the document, indent included, is
// padded to the same column.
func (r *Renderer) Render(doc *types.Document) ([]byte, error) {
	var buf bytes.Buffer
	width := labelWidth(doc)

	if doc.Title != "" {
		fmt.Fprintln(&buf, doc.Title)
	}

	for i, section := range doc.Sections {
		if i > 0 || doc.Title != "" {
			buf.WriteByte('\n')
		}
		indent := ""
		if section.Title != "" {
			fmt.Fprintf(&buf, "%s:\n", section.Title)
			indent = rowIndent
		}
		for _, row := range section.Rows {
			label := indent + row.Label
			pad := width - utf8.RuneCountInString(label)
			fmt.Fprintf(&buf, "%s%s : %s\n", label, strings.Repeat(" ", pad), row.Value)
		}
	}

	return buf.Bytes(), nil
}

func labelWidth(doc *types.Document) int {
	width := 0
	for _, section := range doc.Sections {
		indent := 0
		if section.Title != "" {
			indent = len(rowIndent)
		}
		for _, row := range section.Rows {
			width = max(width, indent+utf8.RuneCountInString(row.Label))
		}
	}
	return width
}
