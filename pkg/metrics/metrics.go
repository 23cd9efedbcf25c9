package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	zkcost = "zkcost"

	// Estimation metrics
	estimatesTotal    = "estimates_total"
	estimatedUSDTotal = "estimated_usd_total"
	calibrationRuns   = "calibration_runs_total"
	calibrationScale  = "calibration_hardware_scale"

	// Labels
	systemLabel = "system"
	statusLabel = "status"
	kindLabel   = "kind"

	StatusSuccess = "success"
	StatusFailure = "failure"

	KindProving      = "proving"
	KindVerification = "verification"
)

// Registry holds every zkcost metric. It is separate from the default registry
// so that textfile output only carries zkcost series.
var Registry = prometheus.NewRegistry()

/**
* Metrics definition
**/
var estimatesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: zkcost,
		Name:      estimatesTotal,
		Help:      "number of estimates computed, by proving system and outcome",
	},
	[]string{systemLabel, statusLabel},
)

var estimatedUSDTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: zkcost,
		Name:      estimatedUSDTotal,
		Help:      "sum of estimated costs in USD, by cost kind",
	},
	[]string{kindLabel},
)

var calibrationRunsMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: zkcost,
		Name:      calibrationRuns,
		Help:      "number of calibration proofs generated",
	},
)

var calibrationScaleMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: zkcost,
		Name:      calibrationScale,
		Help:      "hardware scale measured by the last calibration",
	},
)

func IncreaseEstimatesTotalMetric(system, status string) {
	labels := prometheus.Labels{
		systemLabel: system,
		statusLabel: status,
	}
	estimatesTotalMetric.With(labels).Inc()
}

// AddEstimatedUSD records an estimated cost. Negative or zero amounts are ignored.
func AddEstimatedUSD(kind string, usd float64) {
	if usd <= 0 {
		return
	}
	estimatedUSDTotalMetric.With(prometheus.Labels{kindLabel: kind}).Add(usd)
}

func ObserveCalibration(runs int, hardwareScale float64) {
	calibrationRunsMetric.Add(float64(runs))
	calibrationScaleMetric.Set(hardwareScale)
}

// WriteTextfile writes every zkcost metric to path in the node exporter textfile format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	Registry.MustRegister(estimatesTotalMetric)
	Registry.MustRegister(estimatedUSDTotalMetric)
	Registry.MustRegister(calibrationRunsMetric)
	Registry.MustRegister(calibrationScaleMetric)
}
