package costmodel

import "math"

// Params are the workload inputs of an estimation.
type Params struct {
	TxCount       int
	BatchSize     int
	SecurityBits  int
	HardwareScale float64
}

// CostEstimate is the result of one estimation. Figures are kept at full precision.
type CostEstimate struct {
	Profile Profile
	Params  Params

	Batches      int
	VolumeFactor float64

	PerProofMs  float64
	PerProofUSD float64
	TotalMs     float64
	TotalUSD    float64
	PerTxMs     float64
	PerTxUSD    float64
}

// Estimator computes CostEstimates with a configurable VolumePolicy.
type Estimator struct {
	policy VolumePolicy
}

// EstimatorOption configures an Estimator.
type EstimatorOption func(*Estimator)

// WithVolumePolicy replaces the default volume policy. A nil policy is ignored.
func WithVolumePolicy(policy VolumePolicy) EstimatorOption {
	return func(e *Estimator) {
		if policy != nil {
			e.policy = policy
		}
	}
}

// NewEstimator creates an Estimator using DefaultVolumePolicy unless overridden.
func NewEstimator(opts ...EstimatorOption) *Estimator {
	res := Estimator{
		policy: DefaultVolumePolicy(),
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// Estimate runs the default Estimator.
func Estimate(profile Profile, params Params) (*CostEstimate, error) {
	return NewEstimator().Estimate(profile, params)
}

// Estimate validates params and computes the cost of proving params.TxCount
// transactions in batches of params.BatchSize with the given profile.
func (e *Estimator) Estimate(profile Profile, params Params) (*CostEstimate, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	secFactor, err := SecurityMultiplier(params.SecurityBits)
	if err != nil {
		return nil, err
	}

	batches := Batches(params.TxCount, params.BatchSize)
	volumeFactor := e.policy.Factor(profile, params.TxCount)

	perProofMs := profile.BaseMsPerProof * secFactor / params.HardwareScale * volumeFactor
	perProofUSD := profile.BaseUSDPerProof * secFactor / params.HardwareScale * volumeFactor

	totalMs := perProofMs * float64(batches)
	totalUSD := perProofUSD * float64(batches)

	for _, v := range []float64{perProofMs, perProofUSD, totalMs, totalUSD} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, NewErrInvalidParameter("hardware_scale %g is too small: estimate is not finite", params.HardwareScale)
		}
	}

	return &CostEstimate{
		Profile:      profile,
		Params:       params,
		Batches:      batches,
		VolumeFactor: volumeFactor,
		PerProofMs:   perProofMs,
		PerProofUSD:  perProofUSD,
		TotalMs:      totalMs,
		TotalUSD:     totalUSD,
		PerTxMs:      totalMs / float64(params.TxCount),
		PerTxUSD:     totalUSD / float64(params.TxCount),
	}, nil
}

// Validate checks the input constraints of an estimation.
func (p Params) Validate() error {
	if p.TxCount <= 0 {
		return NewErrInvalidParameter("tx_count must be positive")
	}
	if p.BatchSize <= 0 {
		return NewErrInvalidParameter("batch_size must be positive")
	}
	if !IsSupportedSecurityLevel(p.SecurityBits) {
		return NewErrInvalidParameter("security_bits must be one of %v", SecurityLevels())
	}
	if math.IsNaN(p.HardwareScale) || math.IsInf(p.HardwareScale, 0) || p.HardwareScale <= 0 {
		return NewErrInvalidParameter("hardware_scale must be > 0")
	}
	return nil
}

// Batches returns the number of proofs needed to cover txCount transactions,
// i.e. ceil(txCount / batchSize). Both arguments must be positive.
func Batches(txCount, batchSize int) int {
	batches := txCount / batchSize
	if txCount%batchSize != 0 {
		batches++
	}
	return batches
}
