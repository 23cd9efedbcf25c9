package report

import (
	"math"

	"github.com/zkcost/proof-cost-planner/internal/costmodel"
)

// Summary is the serialized form of a CostEstimate. Fields are declared in
// key order and rounded to the precision each figure is reported at.
type Summary struct {
	BatchSize     int     `json:"batchSize"`
	Batches       int     `json:"batches"`
	Description   string  `json:"description"`
	Family        string  `json:"family"`
	HardwareScale float64 `json:"hardwareScale"`
	PerProofMs    float64 `json:"perProofMs"`
	PerProofUSD   float64 `json:"perProofUsd"`
	PerTxMs       float64 `json:"perTxMs"`
	PerTxUSD      float64 `json:"perTxUsd"`
	SecurityBits  int     `json:"securityBits"`
	System        string  `json:"system"`
	SystemName    string  `json:"systemName"`
	TotalMs       float64 `json:"totalMs"`
	TotalUSD      float64 `json:"totalUsd"`
	TxCount       int     `json:"txCount"`
	VolumeFactor  float64 `json:"volumeFactor"`
}

func NewSummary(est *costmodel.CostEstimate) Summary {
	return Summary{
		BatchSize:     est.Params.BatchSize,
		Batches:       est.Batches,
		Description:   est.Profile.Description,
		Family:        est.Profile.Family,
		HardwareScale: est.Params.HardwareScale,
		PerProofMs:    round(est.PerProofMs, 3),
		PerProofUSD:   round(est.PerProofUSD, 6),
		PerTxMs:       round(est.PerTxMs, 5),
		PerTxUSD:      round(est.PerTxUSD, 8),
		SecurityBits:  est.Params.SecurityBits,
		System:        est.Profile.Key,
		SystemName:    est.Profile.Name,
		TotalMs:       round(est.TotalMs, 3),
		TotalUSD:      round(est.TotalUSD, 6),
		TxCount:       est.Params.TxCount,
		VolumeFactor:  round(est.VolumeFactor, 4),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
