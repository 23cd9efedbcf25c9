// Package calculators provides concrete Calculator implementations for the estimation engine.
//
// ProofGeneration prices the off-chain proving of a workload with a proving-system
// profile; OnChainVerification prices verifying the resulting proofs on chain.
// Calculators are composed via the estimation.Engine and accept input through
// estimation.Param slices.
package calculators
