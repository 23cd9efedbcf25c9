// Package costmodel holds the proving-system cost model.
//
// A Profile describes the baseline latency and price of one proving system at the
// 128-bit reference point. Estimate scales that baseline by the security level,
// the hardware scale and a bounded volume factor to produce a CostEstimate.
package costmodel
