package csv

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkcost/proof-cost-planner/internal/report/types"
)

func TestRender(t *testing.T) {
	doc := &types.Document{Title: "Verification cost"}
	doc.AddSection("").Add("Total gas", "3,000,000 gas")
	doc.AddSection("Totals").Add("Cost", "$288.00")

	out, err := NewRenderer().Render(doc)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Section", "Metric", "Value"},
		{"Verification cost", "Total gas", "3,000,000 gas"},
		{"Totals", "Cost", "$288.00"},
	}, records)
}
