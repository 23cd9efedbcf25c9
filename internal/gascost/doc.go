// Package gascost estimates the on-chain cost of verifying proofs.
//
// Costs are flat: every proof costs a fixed amount of gas, priced in gwei and
// converted to USD with a fixed ETH price. Compare puts two verifier schemes
// side by side for the same workload.
package gascost
