package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zkcost/proof-cost-planner/internal/cli"
	"github.com/zkcost/proof-cost-planner/internal/config"
	"github.com/zkcost/proof-cost-planner/internal/costmodel"
	"github.com/zkcost/proof-cost-planner/internal/service"
)

func execute(args ...string) (string, string, error) {
	cfg, err := config.Load()
	Expect(err).ToNot(HaveOccurred())

	var stdout, stderr bytes.Buffer
	cmd := cli.NewCmdRoot(cfg)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return stdout.String(), stderr.String(), err
}

var _ = Describe("zkcost commands", func() {
	var tmpDir string

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
	})

	Describe("estimate", func() {
		It("prints the human report by default", func() {
			out, _, err := execute("estimate", "5000")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("Aztec-style zk SNARK System (aztec)"))
			Expect(out).To(ContainSubstring("Total estimate:\n  Time        : 3612.000 ms\n"))
		})

		It("emits the summary as json", func() {
			for _, flags := range [][]string{{"-o", "json"}, {"--json"}} {
				out, _, err := execute(append([]string{"estimate", "5000", "--system", "zama"}, flags...)...)
				Expect(err).ToNot(HaveOccurred())

				var summary map[string]any
				Expect(json.Unmarshal([]byte(out), &summary)).To(Succeed())
				Expect(summary).To(HaveLen(16))
				Expect(summary["system"]).To(Equal("zama"))
				Expect(summary["txCount"]).To(BeNumerically("==", 5000))
				Expect(summary["batches"]).To(BeNumerically("==", 10))
			}
		})

		It("applies the security multiplier", func() {
			out, _, err := execute("estimate", "5000", "--security-bits", "256", "-o", "json")
			Expect(err).ToNot(HaveOccurred())

			var summary map[string]any
			Expect(json.Unmarshal([]byte(out), &summary)).To(Succeed())
			Expect(summary["perProofMs"]).To(BeNumerically("~", 420*1.70*0.86, 1e-3))
		})

		It("rejects a non-numeric transaction count", func() {
			_, _, err := execute("estimate", "lots")
			Expect(err).To(MatchError(ContainSubstring("invalid TX_COUNT")))
		})

		It("rejects invalid parameters", func() {
			_, _, err := execute("estimate", "5000", "--security-bits", "100")
			Expect(costmodel.IsInvalidParameter(err)).To(BeTrue())

			_, _, err = execute("estimate", "0")
			Expect(costmodel.IsInvalidParameter(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("tx_count must be positive"))
		})

		It("rejects an unknown system", func() {
			_, _, err := execute("estimate", "5000", "--system", "halo2")
			Expect(service.IsUnknownSystem(err)).To(BeTrue())
		})

		It("validates the output format", func() {
			_, _, err := execute("estimate", "5000", "-o", "xml")
			Expect(err).To(MatchError(ContainSubstring("output format must be one of")))

			_, _, err = execute("estimate", "5000", "-o", "xlsx")
			Expect(err).To(MatchError(ContainSubstring("requires --output-file")))
		})

		It("writes binary reports to a file", func() {
			path := filepath.Join(tmpDir, "estimate.xlsx")
			out, errOut, err := execute("estimate", "5000", "-o", "xlsx", "--output-file", path)
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(BeEmpty())
			Expect(errOut).To(ContainSubstring("Report written to " + path))

			info, err := os.Stat(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(info.Size()).To(BeNumerically(">", 0))
		})

		It("uses profiles from a profiles file", func() {
			path := filepath.Join(tmpDir, "profiles.yaml")
			Expect(os.WriteFile(path, []byte(`profiles:
  - key: plonky2
    name: Plonky2
    baseMsPerProof: 100
    baseUsdPerProof: 0.01
    scalingFactor: 0.8
`), 0600)).To(Succeed())

			out, _, err := execute("estimate", "5000", "--profiles-file", path, "--system", "plonky2", "-o", "json")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring(`"system": "plonky2"`))
		})

		It("writes the metrics textfile", func() {
			path := filepath.Join(tmpDir, "zkcost.prom")
			_, _, err := execute("estimate", "5000", "--metrics-textfile", path)
			Expect(err).ToNot(HaveOccurred())

			content, err := os.ReadFile(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(content)).To(ContainSubstring(`zkcost_estimates_total{status="success",system="aztec"}`))
		})
	})

	Describe("systems", func() {
		It("lists the built-in profiles", func() {
			out, _, err := execute("systems", "-o", "json")
			Expect(err).ToNot(HaveOccurred())

			var profiles []costmodel.Profile
			Expect(json.Unmarshal([]byte(out), &profiles)).To(Succeed())
			Expect(profiles).To(HaveLen(3))
			Expect(profiles[0].Key).To(Equal("aztec"))
		})
	})

	Describe("verify-cost", func() {
		It("prices the verification", func() {
			out, errOut, err := execute("verify-cost", "--num-proofs", "10", "--gas-per-proof", "300000",
				"--gas-price-gwei", "30", "--eth-price-usd", "3200")
			Expect(err).ToNot(HaveOccurred())
			Expect(errOut).To(BeEmpty())
			Expect(out).To(ContainSubstring("3,000,000 gas"))
			Expect(out).To(ContainSubstring("0.090000 ETH"))
			Expect(out).To(ContainSubstring("$288.00"))
		})

		It("warns about very large workloads", func() {
			_, errOut, err := execute("verify-cost", "--num-proofs", "20000000", "--gas-per-proof", "300000",
				"--gas-price-gwei", "30", "--eth-price-usd", "3200")
			Expect(err).ToNot(HaveOccurred())
			Expect(errOut).To(ContainSubstring("WARNING: num_proofs is very large"))
		})

		It("does not read the profiles file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "broken.yaml")
			Expect(os.WriteFile(path, []byte("profiles: [nope"), 0600)).To(Succeed())

			out, _, err := execute("verify-cost", "--num-proofs", "10", "--gas-per-proof", "300000",
				"--gas-price-gwei", "30", "--eth-price-usd", "3200", "--profiles-file", path)
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("$288.00"))

			_, _, err = execute("estimate", "5000", "--profiles-file", path)
			Expect(err).To(MatchError(ContainSubstring("decoding profiles")))
		})

		It("requires every input", func() {
			_, _, err := execute("verify-cost", "--num-proofs", "10")
			Expect(err).To(MatchError(ContainSubstring("required flag(s)")))
		})
	})

	Describe("compare", func() {
		It("reports the cheaper scheme", func() {
			out, _, err := execute("compare", "--num-proofs", "10",
				"--gas-per-proof-a", "300000", "--gas-per-proof-b", "230000",
				"--gas-price-gwei", "30", "--eth-price-usd", "3200")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("Comparison (B minus A):"))
			Expect(out).To(ContainSubstring("Scheme B is cheaper."))
		})

		It("does not read the profiles file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "broken.yaml")
			Expect(os.WriteFile(path, []byte("profiles: [nope"), 0600)).To(Succeed())

			out, _, err := execute("compare", "--num-proofs", "10",
				"--gas-per-proof-a", "300000", "--gas-per-proof-b", "230000",
				"--gas-price-gwei", "30", "--eth-price-usd", "3200", "--profiles-file", path)
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("Scheme B is cheaper."))
		})
	})

	Describe("plan", func() {
		It("combines proving and verification", func() {
			out, errOut, err := execute("plan", "5000", "--gas-per-proof", "300000",
				"--gas-price-gwei", "30", "--eth-price-usd", "3200", "-o", "json")
			Expect(err).ToNot(HaveOccurred())
			Expect(errOut).To(BeEmpty())

			var plan struct {
				Breakdown map[string]any `json:"breakdown"`
				TotalUSD  float64        `json:"totalUsd"`
			}
			Expect(json.Unmarshal([]byte(out), &plan)).To(Succeed())
			Expect(plan.Breakdown).To(HaveLen(2))
			Expect(plan.TotalUSD).To(BeNumerically("~", 288+1.548, 1e-6))
		})

		It("warns when verification cannot be priced", func() {
			_, errOut, err := execute("plan", "5000")
			Expect(err).ToNot(HaveOccurred())
			Expect(errOut).To(ContainSubstring("WARNING: On-chain Verification"))
		})
	})

	Describe("calibrate", func() {
		It("derives a hardware scale", func() {
			out, _, err := execute("calibrate", "--rounds", "16", "--runs", "1", "-o", "json")
			Expect(err).ToNot(HaveOccurred())

			var result struct {
				Constraints   int     `json:"constraints"`
				HardwareScale float64 `json:"hardwareScale"`
			}
			Expect(json.Unmarshal([]byte(out), &result)).To(Succeed())
			Expect(result.Constraints).To(BeNumerically(">", 0))
			Expect(result.HardwareScale).To(BeNumerically(">", 0))
		})

		It("rejects invalid options", func() {
			_, _, err := execute("calibrate", "--runs", "0")
			Expect(costmodel.IsInvalidParameter(err)).To(BeTrue())
		})
	})

	Describe("version", func() {
		It("prints the version", func() {
			out, _, err := execute("version")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(HavePrefix("zkcost Version: "))
		})
	})
})
