package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/zkcost/proof-cost-planner/internal/costmodel"
	"github.com/zkcost/proof-cost-planner/internal/estimation"
	"github.com/zkcost/proof-cost-planner/internal/estimation/calculators"
	"github.com/zkcost/proof-cost-planner/internal/gascost"
	"github.com/zkcost/proof-cost-planner/pkg/log"
	"github.com/zkcost/proof-cost-planner/pkg/metrics"
)

const unknownSystemLabel = "unknown"

// EstimateRequest selects a profile by key and the workload to estimate.
type EstimateRequest struct {
	System string
	Params costmodel.Params
}

// PlanRequest is an EstimateRequest extended with the on-chain verification inputs.
type PlanRequest struct {
	System       string
	Params       costmodel.Params
	GasPerProof  uint64
	GasPriceGwei float64
	EthPriceUSD  float64
}

// PlanResult represents the result of running every calculator over a workload
type PlanResult struct {
	Estimate  *costmodel.CostEstimate
	Breakdown estimation.Results
	TotalMs   float64
	TotalUSD  float64
	Errors    []string
}

// EstimationService resolves proving-system profiles from its catalog and runs
// the cost model and the calculator engine over user workloads.
type EstimationService struct {
	catalog   *costmodel.Catalog
	estimator *costmodel.Estimator
	logger    *log.StructuredLogger
}

// NewEstimationService creates an EstimationService over catalog, or over the
// built-in profiles when catalog is nil.
func NewEstimationService(catalog *costmodel.Catalog) *EstimationService {
	if catalog == nil {
		catalog = costmodel.DefaultCatalog()
	}
	return &EstimationService{
		catalog:   catalog,
		estimator: costmodel.NewEstimator(),
		logger:    log.NewDebugLogger("estimation_service"),
	}
}

// Systems lists the catalog profiles sorted by key.
func (es *EstimationService) Systems() []costmodel.Profile {
	return es.catalog.Profiles()
}

// Estimate computes the proving cost of a workload for the requested system.
func (es *EstimationService) Estimate(ctx context.Context, req EstimateRequest) (*costmodel.CostEstimate, error) {
	tracer := es.logger.WithContext(ctx).Operation("estimate").
		WithString("system", req.System).
		WithInt("tx_count", req.Params.TxCount).
		WithInt("batch_size", req.Params.BatchSize).
		WithInt("security_bits", req.Params.SecurityBits).
		WithFloat("hardware_scale", req.Params.HardwareScale).
		Build()

	profile, err := es.profile(req.System)
	if err != nil {
		metrics.IncreaseEstimatesTotalMetric(unknownSystemLabel, metrics.StatusFailure)
		tracer.Error(err).Log()
		return nil, err
	}

	est, err := es.estimator.Estimate(profile, req.Params)
	if err != nil {
		metrics.IncreaseEstimatesTotalMetric(profile.Key, metrics.StatusFailure)
		tracer.Error(err).Log()
		return nil, err
	}

	metrics.IncreaseEstimatesTotalMetric(profile.Key, metrics.StatusSuccess)
	metrics.AddEstimatedUSD(metrics.KindProving, est.TotalUSD)

	tracer.Success().
		WithInt("batches", est.Batches).
		WithFloat("volume_factor", est.VolumeFactor).
		WithFloat("total_ms", est.TotalMs).
		WithFloat("total_usd", est.TotalUSD).
		Log()

	return est, nil
}

// Plan estimates the workload and runs the proof generation and on-chain
// verification calculators over it. A failing calculator is reported in
// PlanResult.Errors and left out of the totals.
func (es *EstimationService) Plan(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	est, err := es.Estimate(ctx, EstimateRequest{System: req.System, Params: req.Params})
	if err != nil {
		return nil, err
	}

	tracer := es.logger.WithContext(ctx).Operation("plan").
		WithString("system", est.Profile.Key).
		WithInt("batches", est.Batches).
		Build()

	verification := calculators.NewOnChainVerification(
		calculators.WithVerificationBatchSize(est.Params.BatchSize),
	)
	engine := estimation.NewEngine()
	engine.Register(calculators.NewProofGeneration(est.Profile,
		calculators.WithEstimator(es.estimator),
		calculators.WithBatchSize(est.Params.BatchSize),
		calculators.WithSecurityBits(est.Params.SecurityBits),
		calculators.WithHardwareScale(est.Params.HardwareScale),
	))
	engine.Register(verification)

	params := []estimation.Param{
		{Key: calculators.ParamTxCount, Value: req.Params.TxCount},
		{Key: calculators.ParamBatchSize, Value: req.Params.BatchSize},
		{Key: calculators.ParamProofCount, Value: uint64(est.Batches)},
		{Key: calculators.ParamGasPerProof, Value: req.GasPerProof},
		{Key: calculators.ParamGasPriceGwei, Value: req.GasPriceGwei},
		{Key: calculators.ParamEthPriceUSD, Value: req.EthPriceUSD},
	}

	tracer.Step("mapped_params").WithInt("param_count", len(params)).Log()

	results := engine.Run(params)
	totalMs, totalUSD := results.Total()

	failures := results.Failures()
	sort.Strings(failures)
	errs := make([]string, 0, len(failures))
	for _, name := range failures {
		errs = append(errs, fmt.Sprintf("%s: %s", name, results[name].Reason))
		tracer.Step("calculator_failed").WithString("calculator", name).WithString("reason", results[name].Reason).Log()
	}

	if v, ok := results[verification.Name()]; ok && !v.Failed {
		metrics.AddEstimatedUSD(metrics.KindVerification, v.CostUSD)
	}

	tracer.Success().
		WithFloat("total_ms", totalMs).
		WithFloat("total_usd", totalUSD).
		WithInt("calculator_count", len(results)).
		Log()

	return &PlanResult{
		Estimate:  est,
		Breakdown: results,
		TotalMs:   totalMs,
		TotalUSD:  totalUSD,
		Errors:    errs,
	}, nil
}

// VerificationCost prices the on-chain verification of a flat proof count.
func (es *EstimationService) VerificationCost(ctx context.Context, req gascost.Request) (*gascost.Cost, error) {
	tracer := es.logger.WithContext(ctx).Operation("verification_cost").
		WithUint64("num_proofs", req.NumProofs).
		WithUint64("gas_per_proof", req.GasPerProof).
		WithFloat("gas_price_gwei", req.GasPriceGwei).
		WithFloat("eth_price_usd", req.EthPriceUSD).
		Build()

	cost, err := gascost.Estimate(req)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}
	if cost.IsLargeWorkload() {
		tracer.Step("large_workload").WithInt("threshold", gascost.LargeWorkloadThreshold).Log()
	}

	metrics.AddEstimatedUSD(metrics.KindVerification, cost.TotalUSD)
	tracer.Success().
		WithString("total_gas", cost.TotalGas.String()).
		WithFloat("total_usd", cost.TotalUSD).
		Log()

	return cost, nil
}

// CompareSchemes prices two verifier schemes over the same workload.
func (es *EstimationService) CompareSchemes(ctx context.Context, req gascost.CompareRequest) (*gascost.Comparison, error) {
	tracer := es.logger.WithContext(ctx).Operation("compare_schemes").
		WithUint64("num_proofs", req.NumProofs).
		WithUint64("gas_per_proof_a", req.SchemeA.GasPerProof).
		WithUint64("gas_per_proof_b", req.SchemeB.GasPerProof).
		Build()

	cmp, err := gascost.Compare(req)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	tracer.Success().
		WithString("verdict", string(cmp.Verdict)).
		WithFloat("diff_usd", cmp.DiffUSD).
		Log()

	return cmp, nil
}

func (es *EstimationService) profile(system string) (costmodel.Profile, error) {
	profile, ok := es.catalog.Get(system)
	if !ok {
		return costmodel.Profile{}, NewErrUnknownSystem(system, es.catalog.Keys())
	}
	return profile, nil
}
