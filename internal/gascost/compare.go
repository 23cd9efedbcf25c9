package gascost

import (
	"fmt"
)

// Verdict describes scheme B relative to scheme A.
type Verdict string

const (
	VerdictMoreExpensive Verdict = "more-expensive"
	VerdictCheaper       Verdict = "cheaper"
	VerdictEqual         Verdict = "equal"
)

// Scheme is a verifier choice with a fixed gas cost per proof.
type Scheme struct {
	Name        string `json:"name"`
	GasPerProof uint64 `json:"gasPerProof"`
}

// CompareRequest holds the inputs of a two-scheme comparison.
type CompareRequest struct {
	NumProofs    uint64
	SchemeA      Scheme
	SchemeB      Scheme
	GasPriceGwei float64
	EthPriceUSD  float64
}

// Comparison is the cost of two schemes on the same workload.
type Comparison struct {
	SchemeA Scheme  `json:"schemeA"`
	SchemeB Scheme  `json:"schemeB"`
	CostA   *Cost   `json:"costA"`
	CostB   *Cost   `json:"costB"`
	DiffETH float64 `json:"diffEth"`
	DiffUSD float64 `json:"diffUsd"`
	Verdict Verdict `json:"verdict"`
}

// Compare estimates both schemes and reports B minus A.
// The verdict is taken from the exact wei totals, not from DiffUSD. With an
// EthPriceUSD of 0 the USD difference is 0 while the verdict still reports
// which scheme spends more wei.
func Compare(req CompareRequest) (*Comparison, error) {
	costA, err := Estimate(req.request(req.SchemeA))
	if err != nil {
		return nil, fmt.Errorf("scheme %s: %w", req.SchemeA.label("A"), err)
	}
	costB, err := Estimate(req.request(req.SchemeB))
	if err != nil {
		return nil, fmt.Errorf("scheme %s: %w", req.SchemeB.label("B"), err)
	}

	verdict := VerdictEqual
	switch costB.TotalWei.Cmp(costA.TotalWei) {
	case 1:
		verdict = VerdictMoreExpensive
	case -1:
		verdict = VerdictCheaper
	}

	return &Comparison{
		SchemeA: req.SchemeA,
		SchemeB: req.SchemeB,
		CostA:   costA,
		CostB:   costB,
		DiffETH: costB.TotalETH - costA.TotalETH,
		DiffUSD: costB.TotalUSD - costA.TotalUSD,
		Verdict: verdict,
	}, nil
}

func (r CompareRequest) request(s Scheme) Request {
	return Request{
		NumProofs:    r.NumProofs,
		GasPerProof:  s.GasPerProof,
		GasPriceGwei: r.GasPriceGwei,
		EthPriceUSD:  r.EthPriceUSD,
	}
}

func (s Scheme) label(fallback string) string {
	if s.Name != "" {
		return s.Name
	}
	return fallback
}
