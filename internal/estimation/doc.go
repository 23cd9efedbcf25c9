// Package estimation aggregates independent cost calculators.
//
// Each Calculator estimates one phase of a proving workload (e.g. proof generation,
// on-chain verification). The Engine runs every registered Calculator over the same
// parameters and collects the results by calculator name.
package estimation
