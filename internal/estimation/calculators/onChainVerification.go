package calculators

import (
	"fmt"

	"github.com/zkcost/proof-cost-planner/internal/costmodel"
	"github.com/zkcost/proof-cost-planner/internal/estimation"
	"github.com/zkcost/proof-cost-planner/internal/gascost"
)

const (
	// ParamProofCount number of proofs verified on chain.
	ParamProofCount = "proof_count"
	// ParamGasPerProof gas consumed by one verification.
	ParamGasPerProof = "gas_per_proof"
	// ParamGasPriceGwei gas price in gwei.
	ParamGasPriceGwei = "gas_price_gwei"
	// ParamEthPriceUSD ETH price in USD.
	ParamEthPriceUSD = "eth_price_usd"
)

// Compile-time assertion that OnChainVerification implements the Calculator interface.
var _ estimation.Calculator = (*OnChainVerification)(nil)

// OnChainVerification estimates the gas cost of verifying every proof of a workload on chain.
type OnChainVerification struct {
	batchSize int
}

// OnChainVerificationOption is a functional option for configuring an OnChainVerification calculator.
type OnChainVerificationOption func(*OnChainVerification)

// WithVerificationBatchSize sets the batch size used to derive the proof count
// from ParamTxCount when neither ParamProofCount nor ParamBatchSize is given.
// Non-positive values are ignored and the default is kept.
func WithVerificationBatchSize(size int) OnChainVerificationOption {
	return func(v *OnChainVerification) {
		if size > 0 {
			v.batchSize = size
		}
	}
}

// NewOnChainVerification creates an OnChainVerification calculator with default settings.
func NewOnChainVerification(opts ...OnChainVerificationOption) *OnChainVerification {
	res := OnChainVerification{
		batchSize: DefaultBatchSize,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Name returns the human-readable name of this calculator.
func (c *OnChainVerification) Name() string {
	return "On-chain Verification"
}

// Keys returns the list of parameter keys required by this calculator.
func (c *OnChainVerification) Keys() []string {
	return []string{ParamGasPerProof, ParamGasPriceGwei, ParamEthPriceUSD}
}

// Calculate prices the on-chain verification of the workload.
// The proof count is read from ParamProofCount, or derived from ParamTxCount and the batch size.
func (c *OnChainVerification) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	proofs, err := c.proofCount(params)
	if err != nil {
		return estimation.Estimation{}, err
	}

	req := gascost.Request{NumProofs: proofs}

	gasParam, err := required(params, ParamGasPerProof)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if req.GasPerProof, err = getUint64(gasParam); err != nil {
		return estimation.Estimation{}, err
	}

	priceParam, err := required(params, ParamGasPriceGwei)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if req.GasPriceGwei, err = getFloat(priceParam); err != nil {
		return estimation.Estimation{}, err
	}

	ethParam, err := required(params, ParamEthPriceUSD)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if req.EthPriceUSD, err = getFloat(ethParam); err != nil {
		return estimation.Estimation{}, err
	}

	cost, err := gascost.Estimate(req)
	if err != nil {
		return estimation.Estimation{}, err
	}

	return estimation.Estimation{
		CostUSD: cost.TotalUSD,
		Reason: fmt.Sprintf("%d proofs @ %d gas, %.3f gwei, $%.2f/ETH = %.6f ETH",
			proofs, req.GasPerProof, req.GasPriceGwei, req.EthPriceUSD, cost.TotalETH),
	}, nil
}

func (c *OnChainVerification) proofCount(params map[string]estimation.Param) (uint64, error) {
	if p, ok := params[ParamProofCount]; ok {
		return getUint64(p)
	}

	txParam, ok := params[ParamTxCount]
	if !ok {
		return 0, fmt.Errorf("missing %s or %s", ParamProofCount, ParamTxCount)
	}
	txCount, err := getInt(txParam)
	if err != nil {
		return 0, err
	}

	batchSize := c.batchSize
	if p, ok := params[ParamBatchSize]; ok {
		if batchSize, err = getInt(p); err != nil {
			return 0, err
		}
	}

	if txCount <= 0 || batchSize <= 0 {
		return 0, fmt.Errorf("%s and %s must be positive", ParamTxCount, ParamBatchSize)
	}
	return uint64(costmodel.Batches(txCount, batchSize)), nil
}
