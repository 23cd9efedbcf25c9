package calculators

import (
	"fmt"

	"github.com/zkcost/proof-cost-planner/internal/costmodel"
	"github.com/zkcost/proof-cost-planner/internal/estimation"
)

// Param prefix = parameter keys in the params map given to the calculator
// Default prefix = default values for missing params
const (
	// ParamTxCount number of transactions to prove.
	ParamTxCount = "tx_count"
	// ParamBatchSize transactions covered by one proof.
	ParamBatchSize = "batch_size"
	// ParamSecurityBits security level in bits.
	ParamSecurityBits = "security_bits"
	// ParamHardwareScale relative speed of the proving hardware.
	ParamHardwareScale = "hardware_scale"

	DefaultBatchSize     = 512
	DefaultHardwareScale = 1.0
)

// Compile-time assertion that ProofGeneration implements the Calculator interface.
var _ estimation.Calculator = (*ProofGeneration)(nil)

// ProofGeneration estimates the time and cost of generating the proofs for a workload.
type ProofGeneration struct {
	profile       costmodel.Profile
	estimator     *costmodel.Estimator
	batchSize     int
	securityBits  int
	hardwareScale float64
}

// ProofGenerationOption configuration option for the calculator
type ProofGenerationOption func(*ProofGeneration)

// WithEstimator replaces the default cost model estimator.
func WithEstimator(e *costmodel.Estimator) ProofGenerationOption {
	return func(p *ProofGeneration) {
		if e != nil {
			p.estimator = e
		}
	}
}

// WithBatchSize sets the batch size used when ParamBatchSize is absent.
func WithBatchSize(size int) ProofGenerationOption {
	return func(p *ProofGeneration) {
		p.batchSize = size
	}
}

// WithSecurityBits sets the security level used when ParamSecurityBits is absent.
func WithSecurityBits(bits int) ProofGenerationOption {
	return func(p *ProofGeneration) {
		p.securityBits = bits
	}
}

// WithHardwareScale sets the hardware scale used when ParamHardwareScale is absent.
func WithHardwareScale(scale float64) ProofGenerationOption {
	return func(p *ProofGeneration) {
		p.hardwareScale = scale
	}
}

// NewProofGeneration creates a ProofGeneration calculator for profile with default settings that
//
//	can be overridden by Options
func NewProofGeneration(profile costmodel.Profile, opts ...ProofGenerationOption) *ProofGeneration {
	res := ProofGeneration{
		profile:       profile,
		estimator:     costmodel.NewEstimator(),
		batchSize:     DefaultBatchSize,
		securityBits:  costmodel.DefaultSecurityBits,
		hardwareScale: DefaultHardwareScale,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Name returns the human-readable name of this calculator.
func (c *ProofGeneration) Name() string { return "Proof Generation" }

// Keys returns the list of parameter keys required by this calculator.
func (c *ProofGeneration) Keys() []string {
	return []string{ParamTxCount}
}

// Calculate estimates proof generation for the transaction count in params.
// ParamBatchSize, ParamSecurityBits and ParamHardwareScale are optional and fall back to the struct defaults.
func (c *ProofGeneration) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	txParam, err := required(params, ParamTxCount)
	if err != nil {
		return estimation.Estimation{}, err
	}
	txCount, err := getInt(txParam)
	if err != nil {
		return estimation.Estimation{}, err
	}

	in := costmodel.Params{
		TxCount:       txCount,
		BatchSize:     c.batchSize,
		SecurityBits:  c.securityBits,
		HardwareScale: c.hardwareScale,
	}
	if p, ok := params[ParamBatchSize]; ok {
		if in.BatchSize, err = getInt(p); err != nil {
			return estimation.Estimation{}, err
		}
	}
	if p, ok := params[ParamSecurityBits]; ok {
		if in.SecurityBits, err = getInt(p); err != nil {
			return estimation.Estimation{}, err
		}
	}
	if p, ok := params[ParamHardwareScale]; ok {
		if in.HardwareScale, err = getFloat(p); err != nil {
			return estimation.Estimation{}, err
		}
	}

	est, err := c.estimator.Estimate(c.profile, in)
	if err != nil {
		return estimation.Estimation{}, err
	}

	return estimation.Estimation{
		DurationMs: est.TotalMs,
		CostUSD:    est.TotalUSD,
		Reason: fmt.Sprintf("%d proofs of up to %d tx with %s @ %.3f ms and $%.6f each",
			est.Batches, in.BatchSize, c.profile.Key, est.PerProofMs, est.PerProofUSD),
	}, nil
}
