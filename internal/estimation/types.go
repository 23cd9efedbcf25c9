package estimation

// Calculator encapsulates one phase of the estimation (e.g. "proof generation", "on-chain verification").
type Calculator interface {
	// Name returns the human-readable name of this calculator, used as the key in Engine results.
	Name() string
	// Keys returns the list of Param keys this calculator depends on.
	Keys() []string
	// Calculate runs the estimation using the provided params and returns an Estimation or an error.
	Calculate(params map[string]Param) (Estimation, error)
}

// Param represents an input for a Calculator (either user supplied or derived)
type Param struct {
	Key   string      // Unique identifier (e.g., "tx_count")
	Value interface{} // The actual value (e.g., 5000, 1.5)
}

// Estimation the result of a Calculator calculation.
// DurationMs is kept in float milliseconds: large proving workloads exceed the
// range of time.Duration.
type Estimation struct {
	DurationMs float64 `json:"durationMs"`
	CostUSD    float64 `json:"costUsd"`
	Reason     string  `json:"reason"`
	// Failed is set when the calculator returned an error; Reason then holds the error.
	Failed bool `json:"failed,omitempty"`
}

// Results maps calculator names to their Estimation.
type Results map[string]Estimation

// Total sums duration in milliseconds and cost over the successful estimations.
func (r Results) Total() (float64, float64) {
	var (
		durationMs float64
		cost       float64
	)
	for _, est := range r {
		if est.Failed {
			continue
		}
		durationMs += est.DurationMs
		cost += est.CostUSD
	}
	return durationMs, cost
}

// Failures returns the names of calculators that failed, in no particular order.
func (r Results) Failures() []string {
	var names []string
	for name, est := range r {
		if est.Failed {
			names = append(names, name)
		}
	}
	return names
}
