package gascost

import (
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/params"

	"github.com/zkcost/proof-cost-planner/internal/costmodel"
	"github.com/zkcost/proof-cost-planner/internal/validator"
)

// LargeWorkloadThreshold is the proof count above which a workload is flagged as unusually large.
const LargeWorkloadThreshold = 10_000_000

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validator {
	v := validator.NewValidator()
	v.Register(validator.NewGasValidationRules()...)
	return v
}

// Request holds the inputs of a verification cost estimate.
type Request struct {
	NumProofs    uint64  `json:"numProofs" validate:"gt=0"`
	GasPerProof  uint64  `json:"gasPerProof" validate:"gt=0"`
	GasPriceGwei float64 `json:"gasPriceGwei" validate:"gte=0,finite"`
	EthPriceUSD  float64 `json:"ethPriceUsd" validate:"gte=0,finite"`
}

// Cost is the on-chain verification cost of a workload.
type Cost struct {
	Request

	TotalGas    *big.Int `json:"totalGas"`
	TotalWei    *big.Int `json:"totalWei"`
	TotalETH    float64  `json:"totalEth"`
	TotalUSD    float64  `json:"totalUsd"`
	PerProofUSD float64  `json:"perProofUsd"`
}

// IsLargeWorkload reports whether the proof count exceeds LargeWorkloadThreshold.
func (c *Cost) IsLargeWorkload() bool {
	return c.NumProofs > LargeWorkloadThreshold
}

// Estimate computes the verification cost of req.
// Invalid requests fail with a *costmodel.ErrInvalidParameter.
func Estimate(req Request) (*Cost, error) {
	if err := requestValidator.Struct(req); err != nil {
		return nil, costmodel.NewErrInvalidParameter("%s", err)
	}

	totalGas := new(big.Int).Mul(
		new(big.Int).SetUint64(req.NumProofs),
		new(big.Int).SetUint64(req.GasPerProof),
	)

	// gwei -> wei -> ETH. The price is taken as the decimal the user typed, so
	// 0.3 gwei is exactly 300000000 wei.
	priceGwei, _ := new(big.Rat).SetString(strconv.FormatFloat(req.GasPriceGwei, 'f', -1, 64))
	weiR := new(big.Rat).SetInt(totalGas)
	weiR.Mul(weiR, priceGwei)
	weiR.Mul(weiR, new(big.Rat).SetInt64(params.GWei))

	totalWei := roundRat(weiR)
	totalETH, _ := new(big.Rat).SetFrac(totalWei, big.NewInt(params.Ether)).Float64()
	totalUSD := totalETH * req.EthPriceUSD

	return &Cost{
		Request:     req,
		TotalGas:    totalGas,
		TotalWei:    totalWei,
		TotalETH:    totalETH,
		TotalUSD:    totalUSD,
		PerProofUSD: totalUSD / float64(req.NumProofs),
	}, nil
}

// roundRat rounds a non-negative rational half up to an integer.
func roundRat(r *big.Rat) *big.Int {
	num := new(big.Int).Lsh(r.Num(), 1)
	num.Add(num, r.Denom())
	den := new(big.Int).Lsh(r.Denom(), 1)
	return num.Quo(num, den)
}
