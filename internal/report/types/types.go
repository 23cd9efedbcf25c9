package types

type ReportRenderer interface {
	Render(doc *Document) ([]byte, error)
	SupportedFormat() ReportFormat
}

type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatJSON ReportFormat = "json"
	ReportFormatYAML ReportFormat = "yaml"
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// IsBinary reports whether the format cannot be written to a terminal.
func (f ReportFormat) IsBinary() bool {
	return f == ReportFormatXLSX
}

// Document is a renderer-neutral report. Sections feed the tabular formats,
// Payload feeds the structured ones.
type Document struct {
	Title    string
	Sections []Section
	Payload  any
}

type Section struct {
	Title string
	Rows  []Row
}

type Row struct {
	Label string
	Value string
}

// AddSection appends a section and returns it for row chaining.
func (d *Document) AddSection(title string) *Section {
	d.Sections = append(d.Sections, Section{Title: title})
	return &d.Sections[len(d.Sections)-1]
}

// Add appends a row and returns the section.
func (s *Section) Add(label, value string) *Section {
	s.Rows = append(s.Rows, Row{Label: label, Value: value})
	return s
}
