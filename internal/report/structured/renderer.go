package structured

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/zkcost/proof-cost-planner/internal/report/types"
)

var errNoPayload = errors.New("document has no structured payload")

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatJSON
}

// Render emits the payload as two-space indented JSON with object keys sorted.
func (r *JSONRenderer) Render(doc *types.Document) ([]byte, error) {
	v, err := normalize(doc)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return append(out, '\n'), nil
}

type YAMLRenderer struct{}

func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

func (r *YAMLRenderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatYAML
}

func (r *YAMLRenderer) Render(doc *types.Document) ([]byte, error) {
	v, err := normalize(doc)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return out, nil
}

// normalize round-trips the payload through a generic JSON tree so that every
// object, including struct fields, is emitted with sorted keys. Numbers keep
// their exact textual form.
func normalize(doc *types.Document) (any, error) {
	if doc.Payload == nil {
		return nil, errNoPayload
	}
	raw, err := json.Marshal(doc.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	return v, nil
}
