package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Estimator   *estimatorConfig
	Gas         *gasConfig
	Calibration *calibrationConfig
	Service     *svcConfig
}

type estimatorConfig struct {
	DefaultSystem string  `envconfig:"ZKCOST_DEFAULT_SYSTEM" default:"aztec"`
	BatchSize     int     `envconfig:"ZKCOST_BATCH_SIZE" default:"512"`
	SecurityBits  int     `envconfig:"ZKCOST_SECURITY_BITS" default:"128"`
	HardwareScale float64 `envconfig:"ZKCOST_HARDWARE_SCALE" default:"1.0"`
	ProfilesFile  string  `envconfig:"ZKCOST_PROFILES_FILE" default:""`
}

type gasConfig struct {
	GasPriceGwei float64 `envconfig:"ZKCOST_GAS_PRICE_GWEI" default:"0"`
	EthPriceUSD  float64 `envconfig:"ZKCOST_ETH_PRICE_USD" default:"0"`
}

type calibrationConfig struct {
	Rounds int `envconfig:"ZKCOST_CALIBRATION_ROUNDS" default:"4096"`
	Runs   int `envconfig:"ZKCOST_CALIBRATION_RUNS" default:"3"`
}

type svcConfig struct {
	LogLevel        string `envconfig:"ZKCOST_LOG_LEVEL" default:"warn"`
	MetricsTextfile string `envconfig:"ZKCOST_METRICS_TEXTFILE" default:""`
}

// New returns the process-wide configuration, reading the environment on first use.
func New() (*Config, error) {
	if singleConfig == nil {
		cfg, err := Load()
		if err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}

// Load reads a fresh configuration from the environment.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
