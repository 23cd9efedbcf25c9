package costmodel

import "math"

const (
	// DefaultVolumeCoefficient is the volume factor shift per DefaultVolumeUnit transactions.
	DefaultVolumeCoefficient = 0.02
	// DefaultVolumeUnit is the transaction count the coefficient applies to.
	DefaultVolumeUnit = 10_000.0
	// MinVolumeFactor and MaxVolumeFactor bound every volume factor.
	MinVolumeFactor = 0.5
	MaxVolumeFactor = 1.25
)

// VolumePolicy maps a profile and a workload size to the efficiency factor
// applied to per-proof figures.
type VolumePolicy interface {
	Factor(profile Profile, txCount int) float64
}

// LinearVolumePolicy shifts the profile scaling factor linearly with the
// transaction count and clamps the result to [Min, Max].
type LinearVolumePolicy struct {
	Coefficient float64
	Unit        float64
	Min         float64
	Max         float64
}

// DefaultVolumePolicy returns the policy used by Estimate.
func DefaultVolumePolicy() LinearVolumePolicy {
	return LinearVolumePolicy{
		Coefficient: DefaultVolumeCoefficient,
		Unit:        DefaultVolumeUnit,
		Min:         MinVolumeFactor,
		Max:         MaxVolumeFactor,
	}
}

func (p LinearVolumePolicy) Factor(profile Profile, txCount int) float64 {
	return clamp(profile.ScalingFactor+(float64(txCount)/p.Unit)*p.Coefficient, p.Min, p.Max)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
