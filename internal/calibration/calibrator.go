package calibration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	gnarklogger "github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"

	"github.com/zkcost/proof-cost-planner/internal/costmodel"
	"github.com/zkcost/proof-cost-planner/pkg/log"
	"github.com/zkcost/proof-cost-planner/pkg/metrics"
)

const (
	DefaultRounds = 4096
	DefaultRuns   = 3

	// DefaultReferenceMsPerConstraint is the groth16/BN254 proving speed the
	// built-in profiles assume, about 15ms per thousand constraints.
	DefaultReferenceMsPerConstraint = 0.015

	witnessSeed = 3
)

// Result holds the measurements of one calibration.
type Result struct {
	Rounds          int             `json:"rounds"`
	Constraints     int             `json:"constraints"`
	CompileTime     time.Duration   `json:"compileTime"`
	SetupTime       time.Duration   `json:"setupTime"`
	ProveTimes      []time.Duration `json:"proveTimes"`
	MedianProve     time.Duration   `json:"medianProve"`
	MsPerConstraint float64         `json:"msPerConstraint"`
	HardwareScale   float64         `json:"hardwareScale"`
}

// Calibrator measures groth16 proving speed on the local machine and
// expresses it as a hardware scale relative to a reference speed.
type Calibrator struct {
	rounds    int
	runs      int
	reference float64
	logger    *log.StructuredLogger
}

type CalibratorOption func(*Calibrator)

func WithRounds(rounds int) CalibratorOption {
	return func(c *Calibrator) {
		c.rounds = rounds
	}
}

func WithRuns(runs int) CalibratorOption {
	return func(c *Calibrator) {
		c.runs = runs
	}
}

func WithReferenceMsPerConstraint(ms float64) CalibratorOption {
	return func(c *Calibrator) {
		c.reference = ms
	}
}

func NewCalibrator(opts ...CalibratorOption) *Calibrator {
	res := Calibrator{
		rounds:    DefaultRounds,
		runs:      DefaultRuns,
		reference: DefaultReferenceMsPerConstraint,
		logger:    log.NewDebugLogger("calibration"),
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

func (c *Calibrator) validate() error {
	switch {
	case c.rounds <= 0:
		return costmodel.NewErrInvalidParameter("rounds must be positive")
	case c.runs <= 0:
		return costmodel.NewErrInvalidParameter("runs must be positive")
	case !(c.reference > 0):
		return costmodel.NewErrInvalidParameter("reference ms per constraint must be > 0")
	}
	return nil
}

// Run compiles the calibration circuit, runs the groth16 setup once, then
// proves and verifies it once per run. The context is checked before
// compiling and between runs.
func (c *Calibrator) Run(ctx context.Context) (*Result, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	tracer := c.logger.WithContext(ctx).Operation("calibrate").
		WithInt("rounds", c.rounds).
		WithInt("runs", c.runs).
		WithFloat("reference_ms_per_constraint", c.reference).
		Build()

	oldGnarkLogger := gnarklogger.Logger()
	gnarklogger.Set(zerolog.New(io.Discard).Level(zerolog.Disabled))
	defer gnarklogger.Set(oldGnarkLogger)

	if err := ctx.Err(); err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	result := &Result{Rounds: c.rounds}
	circuit := NewChainCircuit(c.rounds)

	start := time.Now()
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		tracer.Error(err).Log()
		return nil, fmt.Errorf("calibration circuit compilation failed: %w", err)
	}
	result.CompileTime = time.Since(start)
	result.Constraints = ccs.GetNbConstraints()
	tracer.Step("compiled").WithInt("constraints", result.Constraints).Log()

	start = time.Now()
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		tracer.Error(err).Log()
		return nil, fmt.Errorf("groth16 setup failed: %w", err)
	}
	result.SetupTime = time.Since(start)
	tracer.Step("setup").WithString("duration", result.SetupTime.String()).Log()

	fullWitness, err := frontend.NewWitness(circuit.Assignment(witnessSeed), ecc.BN254.ScalarField())
	if err != nil {
		tracer.Error(err).Log()
		return nil, fmt.Errorf("witness creation failed: %w", err)
	}
	publicWitness, err := fullWitness.Public()
	if err != nil {
		tracer.Error(err).Log()
		return nil, fmt.Errorf("public witness extraction failed: %w", err)
	}

	for i := 0; i < c.runs; i++ {
		if err := ctx.Err(); err != nil {
			tracer.Error(err).WithInt("completed_runs", i).Log()
			return nil, err
		}

		start = time.Now()
		proof, err := groth16.Prove(ccs, pk, fullWitness)
		if err != nil {
			tracer.Error(err).Log()
			return nil, fmt.Errorf("groth16 prove failed: %w", err)
		}
		elapsed := time.Since(start)

		if err := groth16.Verify(proof, vk, publicWitness); err != nil {
			tracer.Error(err).Log()
			return nil, fmt.Errorf("groth16 verify failed: %w", err)
		}

		result.ProveTimes = append(result.ProveTimes, elapsed)
		tracer.Step("proved").WithInt("run", i+1).WithString("duration", elapsed.String()).Log()
	}

	result.MedianProve = median(result.ProveTimes)
	result.MsPerConstraint = float64(result.MedianProve) / float64(time.Millisecond) / float64(result.Constraints)
	result.HardwareScale = c.reference / result.MsPerConstraint

	metrics.ObserveCalibration(c.runs, result.HardwareScale)

	tracer.Success().
		WithInt("constraints", result.Constraints).
		WithString("median_prove", result.MedianProve.String()).
		WithFloat("hardware_scale", result.HardwareScale).
		Log()

	return result, nil
}

// median of a non-empty sample; never zero so the scale stays finite.
func median(samples []time.Duration) time.Duration {
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	m := sorted[n/2]
	if n%2 == 0 {
		m = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	if m <= 0 {
		m = time.Nanosecond
	}
	return m
}
