package report

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zkcost/proof-cost-planner/internal/calibration"
	"github.com/zkcost/proof-cost-planner/internal/costmodel"
	"github.com/zkcost/proof-cost-planner/internal/gascost"
	"github.com/zkcost/proof-cost-planner/internal/report/types"
	"github.com/zkcost/proof-cost-planner/internal/service"
)

const EstimateTitle = "zk proof cost estimator"

var printer = message.NewPrinter(language.English)

// ForEstimate lays out a single estimate the way the estimator prints it.
func ForEstimate(est *costmodel.CostEstimate) *types.Document {
	summary := NewSummary(est)
	doc := &types.Document{Title: EstimateTitle, Payload: summary}
	addEstimateSections(doc, summary)
	return doc
}

func addEstimateSections(doc *types.Document, s Summary) {
	doc.AddSection("").
		Add("System", fmt.Sprintf("%s (%s)", s.SystemName, s.System)).
		Add("Family", s.Family).
		Add("Description", s.Description)
	doc.AddSection("").
		Add("Transactions", strconv.Itoa(s.TxCount)).
		Add("Batch size", strconv.Itoa(s.BatchSize)).
		Add("Batches", strconv.Itoa(s.Batches)).
		Add("Security bits", strconv.Itoa(s.SecurityBits)).
		Add("Hardware x", formatFloat(s.HardwareScale)).
		Add("Volume factor", formatFloat(s.VolumeFactor))
	doc.AddSection("Per-proof estimate").
		Add("Time", fmt.Sprintf("%.3f ms", s.PerProofMs)).
		Add("Cost", fmt.Sprintf("$%.6f", s.PerProofUSD))
	doc.AddSection("Per-transaction estimate").
		Add("Time", fmt.Sprintf("%.5f ms/tx", s.PerTxMs)).
		Add("Cost", fmt.Sprintf("$%.8f per tx", s.PerTxUSD))
	doc.AddSection("Total estimate").
		Add("Time", fmt.Sprintf("%.3f ms", s.TotalMs)).
		Add("Cost", fmt.Sprintf("$%.6f", s.TotalUSD))
}

type planStep struct {
	DurationMs float64 `json:"durationMs"`
	CostUSD    float64 `json:"costUsd"`
	Reason     string  `json:"reason"`
	Failed     bool    `json:"failed,omitempty"`
}

type planPayload struct {
	Estimate  Summary             `json:"estimate"`
	Breakdown map[string]planStep `json:"breakdown"`
	TotalMs   float64             `json:"totalMs"`
	TotalUSD  float64             `json:"totalUsd"`
	Errors    []string            `json:"errors,omitempty"`
}

// ForPlan lays out the estimate followed by the per-calculator breakdown.
func ForPlan(plan *service.PlanResult) *types.Document {
	summary := NewSummary(plan.Estimate)
	payload := planPayload{
		Estimate:  summary,
		Breakdown: make(map[string]planStep, len(plan.Breakdown)),
		TotalMs:   round(plan.TotalMs, 3),
		TotalUSD:  round(plan.TotalUSD, 6),
		Errors:    plan.Errors,
	}

	doc := &types.Document{Title: "zk proof cost plan", Payload: &payload}
	addEstimateSections(doc, summary)

	names := make([]string, 0, len(plan.Breakdown))
	for name := range plan.Breakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		est := plan.Breakdown[name]
		payload.Breakdown[name] = planStep{
			DurationMs: round(est.DurationMs, 3),
			CostUSD:    round(est.CostUSD, 6),
			Reason:     est.Reason,
			Failed:     est.Failed,
		}
		section := doc.AddSection(name)
		if est.Failed {
			section.Add("Status", "failed").Add("Reason", est.Reason)
			continue
		}
		section.
			Add("Time", fmt.Sprintf("%.3f ms", est.DurationMs)).
			Add("Cost", printer.Sprintf("$%.6f", est.CostUSD)).
			Add("Details", est.Reason)
	}

	doc.AddSection("Plan total").
		Add("Time", fmt.Sprintf("%.3f ms", plan.TotalMs)).
		Add("Cost", printer.Sprintf("$%.6f", plan.TotalUSD))
	return doc
}

// ForVerification lays out a flat on-chain verification cost.
func ForVerification(cost *gascost.Cost) *types.Document {
	doc := &types.Document{Title: "On-chain verification cost", Payload: cost}
	doc.AddSection("").
		Add("Number of proofs", printer.Sprintf("%d", cost.NumProofs)).
		Add("Gas per proof", printer.Sprintf("%d gas", cost.GasPerProof)).
		Add("Total gas", formatGas(cost.TotalGas)).
		Add("Gas price", printer.Sprintf("%.3f gwei", cost.GasPriceGwei)).
		Add("ETH price", printer.Sprintf("$%.2f / ETH", cost.EthPriceUSD))
	doc.AddSection("Totals").
		Add("Total cost (ETH)", fmt.Sprintf("%.6f ETH", cost.TotalETH)).
		Add("Total cost (USD)", printer.Sprintf("$%.2f", cost.TotalUSD)).
		Add("Per proof (USD)", printer.Sprintf("$%.6f", cost.PerProofUSD))
	return doc
}

// ForComparison lays out both schemes and the B minus A difference.
func ForComparison(c *gascost.Comparison) *types.Document {
	doc := &types.Document{Title: "Verification scheme comparison", Payload: c}
	addScheme(doc, "Scheme A", c.SchemeA, c.CostA)
	addScheme(doc, "Scheme B", c.SchemeB, c.CostB)
	doc.AddSection("Comparison (B minus A)").
		Add("Extra cost", printer.Sprintf("%.6f ETH ≈ $%.2f", c.DiffETH, c.DiffUSD)).
		Add("Verdict", verdictText(c.Verdict))
	return doc
}

func addScheme(doc *types.Document, title string, scheme gascost.Scheme, cost *gascost.Cost) {
	if scheme.Name != "" {
		title = fmt.Sprintf("%s (%s)", title, scheme.Name)
	}
	doc.AddSection(title).
		Add("Gas per proof", printer.Sprintf("%d gas", scheme.GasPerProof)).
		Add("Total gas", formatGas(cost.TotalGas)).
		Add("Total cost", printer.Sprintf("%.6f ETH ≈ $%.2f", cost.TotalETH, cost.TotalUSD))
}

func verdictText(v gascost.Verdict) string {
	switch v {
	case gascost.VerdictMoreExpensive:
		return "Scheme B is more expensive."
	case gascost.VerdictCheaper:
		return "Scheme B is cheaper."
	default:
		return "Costs are equal."
	}
}

// ForSystems lists the catalog profiles.
func ForSystems(profiles []costmodel.Profile) *types.Document {
	doc := &types.Document{Title: "Proving systems", Payload: profiles}
	for _, p := range profiles {
		doc.AddSection(fmt.Sprintf("%s (%s)", p.Name, p.Key)).
			Add("Family", p.Family).
			Add("Base time", fmt.Sprintf("%s ms/proof", formatFloat(p.BaseMsPerProof))).
			Add("Base cost", fmt.Sprintf("$%s/proof", formatFloat(p.BaseUSDPerProof))).
			Add("Scaling factor", formatFloat(p.ScalingFactor)).
			Add("Description", p.Description)
	}
	return doc
}

// ForCalibration lays out the measurements of a calibration run.
func ForCalibration(res *calibration.Result) *types.Document {
	doc := &types.Document{Title: "Hardware calibration (groth16, BN254)", Payload: res}
	doc.AddSection("").
		Add("Rounds", printer.Sprintf("%d", res.Rounds)).
		Add("Constraints", printer.Sprintf("%d", res.Constraints)).
		Add("Compile time", res.CompileTime.String()).
		Add("Setup time", res.SetupTime.String())
	runs := doc.AddSection("Prove runs")
	for i, d := range res.ProveTimes {
		runs.Add(fmt.Sprintf("Run %d", i+1), d.String())
	}
	doc.AddSection("Result").
		Add("Median prove", res.MedianProve.String()).
		Add("Per constraint", fmt.Sprintf("%.6f ms", res.MsPerConstraint)).
		Add("Hardware x", fmt.Sprintf("%.4f", res.HardwareScale))
	return doc
}

func formatGas(gas *big.Int) string {
	if gas.IsUint64() {
		return printer.Sprintf("%d gas", gas.Uint64())
	}
	return gas.String() + " gas"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
