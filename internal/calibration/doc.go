// Package calibration derives a hardware scale for the cost model by timing
// groth16 proofs of a synthetic BN254 circuit on the local machine.
package calibration
