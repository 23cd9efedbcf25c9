package calculators

import (
	"math"
	"testing"

	"github.com/zkcost/proof-cost-planner/internal/estimation"
)

func gasParams() map[string]estimation.Param {
	return map[string]estimation.Param{
		ParamGasPerProof:  {Key: ParamGasPerProof, Value: 300_000},
		ParamGasPriceGwei: {Key: ParamGasPriceGwei, Value: 30.0},
		ParamEthPriceUSD:  {Key: ParamEthPriceUSD, Value: 3200.0},
	}
}

func TestOnChainVerification_Calculate_WithProofCount(t *testing.T) {
	t.Parallel()
	calc := NewOnChainVerification()

	params := gasParams()
	params[ParamProofCount] = estimation.Param{Key: ParamProofCount, Value: uint64(10)}

	result, err := calc.Calculate(params)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// 10 * 300k gas * 30 gwei = 0.09 ETH * 3200
	if math.Abs(result.CostUSD-288.0) > 1e-9 {
		t.Errorf("expected 288 USD, got %v", result.CostUSD)
	}
	if result.DurationMs != 0 {
		t.Errorf("expected no duration, got %v", result.DurationMs)
	}
	if result.Reason == "" {
		t.Error("expected non-empty reason")
	}
}

func TestOnChainVerification_Calculate_DerivesProofCount(t *testing.T) {
	t.Parallel()
	calc := NewOnChainVerification()

	params := gasParams()
	params[ParamTxCount] = estimation.Param{Key: ParamTxCount, Value: 5000}

	result, err := calc.Calculate(params)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// ceil(5000/512) = 10 proofs
	if math.Abs(result.CostUSD-288.0) > 1e-9 {
		t.Errorf("expected 288 USD, got %v", result.CostUSD)
	}
}

func TestOnChainVerification_Calculate_BatchSizeParamAndOption(t *testing.T) {
	t.Parallel()

	params := gasParams()
	params[ParamTxCount] = estimation.Param{Key: ParamTxCount, Value: 5000}

	// option: 5000/1000 = 5 proofs
	result, err := NewOnChainVerification(WithVerificationBatchSize(1000)).Calculate(params)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if math.Abs(result.CostUSD-144.0) > 1e-9 {
		t.Errorf("expected 144 USD, got %v", result.CostUSD)
	}

	// param wins over option: 5000/2500 = 2 proofs
	params[ParamBatchSize] = estimation.Param{Key: ParamBatchSize, Value: 2500}
	result, err = NewOnChainVerification(WithVerificationBatchSize(1000)).Calculate(params)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if math.Abs(result.CostUSD-57.6) > 1e-9 {
		t.Errorf("expected 57.6 USD, got %v", result.CostUSD)
	}
}

func TestOnChainVerification_Calculate_ErrorCases(t *testing.T) {
	t.Parallel()
	withProofs := func(mutate func(map[string]estimation.Param)) map[string]estimation.Param {
		p := gasParams()
		p[ParamProofCount] = estimation.Param{Key: ParamProofCount, Value: 10}
		mutate(p)
		return p
	}

	cases := []struct {
		name   string
		params map[string]estimation.Param
	}{
		{
			name:   "missing proof and tx count",
			params: gasParams(),
		},
		{
			name:   "missing gas per proof",
			params: withProofs(func(p map[string]estimation.Param) { delete(p, ParamGasPerProof) }),
		},
		{
			name:   "missing gas price",
			params: withProofs(func(p map[string]estimation.Param) { delete(p, ParamGasPriceGwei) }),
		},
		{
			name:   "missing eth price",
			params: withProofs(func(p map[string]estimation.Param) { delete(p, ParamEthPriceUSD) }),
		},
		{
			name: "negative proof count",
			params: withProofs(func(p map[string]estimation.Param) {
				p[ParamProofCount] = estimation.Param{Key: ParamProofCount, Value: -1}
			}),
		},
		{
			name: "zero proof count",
			params: withProofs(func(p map[string]estimation.Param) {
				p[ParamProofCount] = estimation.Param{Key: ParamProofCount, Value: 0}
			}),
		},
		{
			name: "invalid gas price type",
			params: withProofs(func(p map[string]estimation.Param) {
				p[ParamGasPriceGwei] = estimation.Param{Key: ParamGasPriceGwei, Value: "cheap"}
			}),
		},
		{
			name: "zero tx count",
			params: func() map[string]estimation.Param {
				p := gasParams()
				p[ParamTxCount] = estimation.Param{Key: ParamTxCount, Value: 0}
				return p
			}(),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewOnChainVerification().Calculate(tc.params)
			if err == nil {
				t.Errorf("expected error for case %q, got nil", tc.name)
			}
		})
	}
}
