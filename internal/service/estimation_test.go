package service_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zkcost/proof-cost-planner/internal/costmodel"
	"github.com/zkcost/proof-cost-planner/internal/estimation/calculators"
	"github.com/zkcost/proof-cost-planner/internal/gascost"
	"github.com/zkcost/proof-cost-planner/internal/service"
)

func defaultParams(txCount int) costmodel.Params {
	return costmodel.Params{
		TxCount:       txCount,
		BatchSize:     512,
		SecurityBits:  128,
		HardwareScale: 1.0,
	}
}

var _ = Describe("EstimationService", func() {
	var (
		estimationSrv *service.EstimationService
		ctx           context.Context
	)

	BeforeEach(func() {
		estimationSrv = service.NewEstimationService(nil)
		ctx = context.Background()
	})

	Describe("Systems", func() {
		It("lists the built-in profiles sorted by key", func() {
			systems := estimationSrv.Systems()
			keys := make([]string, 0, len(systems))
			for _, p := range systems {
				keys = append(keys, p.Key)
			}
			Expect(keys).To(Equal([]string{"aztec", "soundness", "zama"}))
		})

		It("includes profiles from a custom catalog", func() {
			custom := costmodel.DefaultCatalog().With(costmodel.Profile{
				Key: "plonky2", Name: "Plonky2", BaseMsPerProof: 100, BaseUSDPerProof: 0.01, ScalingFactor: 0.8,
			})
			Expect(service.NewEstimationService(custom).Systems()).To(HaveLen(4))
		})
	})

	Describe("Estimate", func() {
		It("estimates the reference workload", func() {
			est, err := estimationSrv.Estimate(ctx, service.EstimateRequest{
				System: "aztec",
				Params: defaultParams(5000),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(est.Profile.Key).To(Equal("aztec"))
			Expect(est.Batches).To(Equal(10))
			Expect(est.VolumeFactor).To(BeNumerically("~", 0.86, 1e-9))
			Expect(est.PerProofMs).To(BeNumerically("~", 361.2, 1e-9))
			Expect(est.TotalMs).To(BeNumerically("~", 3612.0, 1e-9))
		})

		It("returns ErrUnknownSystem for a missing profile", func() {
			_, err := estimationSrv.Estimate(ctx, service.EstimateRequest{
				System: "starky",
				Params: defaultParams(5000),
			})
			Expect(err).To(HaveOccurred())
			Expect(service.IsUnknownSystem(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("aztec, soundness, zama"))
		})

		It("returns ErrInvalidParameter for invalid params", func() {
			params := defaultParams(5000)
			params.SecurityBits = 100

			_, err := estimationSrv.Estimate(ctx, service.EstimateRequest{System: "zama", Params: params})
			Expect(err).To(HaveOccurred())
			Expect(costmodel.IsInvalidParameter(err)).To(BeTrue())
		})
	})

	Describe("Plan", func() {
		It("combines proving and verification", func() {
			result, err := estimationSrv.Plan(ctx, service.PlanRequest{
				System:       "aztec",
				Params:       defaultParams(5000),
				GasPerProof:  300_000,
				GasPriceGwei: 30,
				EthPriceUSD:  3200,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Errors).To(BeEmpty())
			Expect(result.Breakdown).To(HaveLen(2))

			proving := result.Breakdown[calculators.NewProofGeneration(result.Estimate.Profile).Name()]
			Expect(proving.Failed).To(BeFalse())
			Expect(proving.CostUSD).To(BeNumerically("~", result.Estimate.TotalUSD, 1e-9))

			verification := result.Breakdown[calculators.NewOnChainVerification().Name()]
			Expect(verification.Failed).To(BeFalse())
			// 10 proofs * 300000 gas * 30 gwei = 0.09 ETH
			Expect(verification.CostUSD).To(BeNumerically("~", 288.0, 1e-6))

			Expect(result.TotalUSD).To(BeNumerically("~", result.Estimate.TotalUSD+288.0, 1e-6))
			Expect(result.TotalMs).To(BeNumerically("~", 3612, 1e-6))
		})

		It("keeps proving time exact for workloads beyond the time.Duration range", func() {
			params := defaultParams(10_000_000)
			params.BatchSize = 1
			params.HardwareScale = 0.0001

			result, err := estimationSrv.Plan(ctx, service.PlanRequest{
				System:       "aztec",
				Params:       params,
				GasPerProof:  300_000,
				GasPriceGwei: 30,
				EthPriceUSD:  3200,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Estimate.TotalMs).To(BeNumerically(">", float64(math.MaxInt64)/1e6))

			proving := result.Breakdown[calculators.NewProofGeneration(result.Estimate.Profile).Name()]
			Expect(proving.DurationMs).To(Equal(result.Estimate.TotalMs))
			Expect(result.TotalMs).To(Equal(result.Estimate.TotalMs))
		})

		It("reports a failing calculator without failing the plan", func() {
			result, err := estimationSrv.Plan(ctx, service.PlanRequest{
				System: "soundness",
				Params: defaultParams(1000),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Errors).To(HaveLen(1))
			Expect(result.Errors[0]).To(HavePrefix("On-chain Verification: "))
			Expect(result.TotalUSD).To(BeNumerically("~", result.Estimate.TotalUSD, 1e-9))
		})

		It("fails when the system is unknown", func() {
			_, err := estimationSrv.Plan(ctx, service.PlanRequest{System: "nope", Params: defaultParams(10)})
			Expect(service.IsUnknownSystem(err)).To(BeTrue())
		})
	})

	Describe("VerificationCost", func() {
		It("prices a flat workload", func() {
			cost, err := estimationSrv.VerificationCost(ctx, gascost.Request{
				NumProofs:    10,
				GasPerProof:  300_000,
				GasPriceGwei: 30,
				EthPriceUSD:  3200,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(cost.TotalGas.Uint64()).To(Equal(uint64(3_000_000)))
			Expect(cost.TotalETH).To(BeNumerically("~", 0.09, 1e-12))
			Expect(cost.TotalUSD).To(BeNumerically("~", 288.0, 1e-9))
		})

		It("leaves large workload warnings to the caller", func() {
			core, logs := observer.New(zap.WarnLevel)
			DeferCleanup(zap.ReplaceGlobals(zap.New(core)))
			srv := service.NewEstimationService(nil)

			cost, err := srv.VerificationCost(ctx, gascost.Request{
				NumProofs:    20_000_000,
				GasPerProof:  300_000,
				GasPriceGwei: 30,
				EthPriceUSD:  3200,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(cost.IsLargeWorkload()).To(BeTrue())
			Expect(logs.All()).To(BeEmpty())
		})

		It("rejects zero proofs", func() {
			_, err := estimationSrv.VerificationCost(ctx, gascost.Request{GasPerProof: 1})
			Expect(costmodel.IsInvalidParameter(err)).To(BeTrue())
		})
	})

	Describe("CompareSchemes", func() {
		It("reports B minus A", func() {
			cmp, err := estimationSrv.CompareSchemes(ctx, gascost.CompareRequest{
				NumProofs:    10,
				SchemeA:      gascost.Scheme{Name: "groth16", GasPerProof: 230_000},
				SchemeB:      gascost.Scheme{Name: "plonk", GasPerProof: 300_000},
				GasPriceGwei: 30,
				EthPriceUSD:  3200,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(cmp.Verdict).To(Equal(gascost.VerdictMoreExpensive))
			Expect(cmp.DiffETH).To(BeNumerically("~", 0.021, 1e-12))
		})
	})
})
