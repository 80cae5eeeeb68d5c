package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the control tower.
// Configuration can come from a YAML file (config.yaml) or environment
// variables. Environment variables always override YAML values.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8090"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Logging configuration
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"console"`

	// Data holds the source CSV locations
	Data DataConfig `yaml:"data"`

	// Normalizer holds the supplier name canonicalization settings
	Normalizer NormalizerConfig `yaml:"normalizer"`

	// Analysis holds the risk and alert thresholds
	Analysis AnalysisConfig `yaml:"analysis"`
}

// DataConfig names the directory and file for each source table
type DataConfig struct {
	Dir        string `yaml:"dir" env:"DATA_DIR" env-default:"data"`
	Orders     string `yaml:"orders" env:"DATA_ORDERS" env-default:"supplier_orders.csv"`
	Quality    string `yaml:"quality" env:"DATA_QUALITY" env-default:"quality_inspections.csv"`
	RFQ        string `yaml:"rfq" env:"DATA_RFQ" env-default:"rfq_responses.csv"`
	Geometry   string `yaml:"geometry" env:"DATA_GEOMETRY" env-default:"geometry_metadata.csv"`
	Similarity string `yaml:"similarity" env:"DATA_SIMILARITY" env-default:"geometry_similarity.csv"`
}

// NormalizerConfig holds supplier name canonicalization settings.
type NormalizerConfig struct {
	// SuffixTokensStr is a comma-separated list of legal-form suffix tokens
	// stripped from supplier names.
	SuffixTokensStr string `yaml:"suffix_tokens" env:"SUPPLIER_SUFFIX_TOKENS" env-default:"INC,LLC,CO,COMPANY,CORP,CORPORATION"`

	// SuffixTokens is the parsed list from SuffixTokensStr (not from config file).
	SuffixTokens []string `yaml:"-"`
}

// AnalysisConfig holds the risk flag and alert thresholds
type AnalysisConfig struct {
	HighRiskDaysLate             float64 `yaml:"high_risk_days_late" env:"HIGH_RISK_DAYS_LATE" env-default:"10"`
	HighRiskRejectionRate        float64 `yaml:"high_risk_rejection_rate" env:"HIGH_RISK_REJECTION_RATE" env-default:"0.05"`
	WatchDaysLate                float64 `yaml:"watch_days_late" env:"WATCH_DAYS_LATE" env-default:"5"`
	WatchRejectionRate           float64 `yaml:"watch_rejection_rate" env:"WATCH_REJECTION_RATE" env-default:"0.02"`
	QuoteVarianceAlertPercent    float64 `yaml:"quote_variance_alert_percent" env:"QUOTE_VARIANCE_ALERT_PERCENT" env-default:"10"`
	ConsolidationSimilarityFloor float64 `yaml:"consolidation_similarity_floor" env:"CONSOLIDATION_SIMILARITY_FLOOR" env-default:"0.95"`
	TopRejectionReasons          int     `yaml:"top_rejection_reasons" env:"TOP_REJECTION_REASONS" env-default:"3"`
}

// Load reads configuration from the given YAML file with environment variable
// overrides. A missing file is not an error; configuration then comes from
// environment variables and defaults alone.
func Load(path, version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.parseComplexFields(); err != nil {
		return nil, fmt.Errorf("failed to parse config fields: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// parseComplexFields handles fields that need post-processing after loading.
func (c *Config) parseComplexFields() error {
	c.Normalizer.SuffixTokens = parseSuffixTokens(c.Normalizer.SuffixTokensStr)
	return nil
}

// validate rejects threshold combinations that cannot classify consistently.
func (c *Config) validate() error {
	if c.Analysis.WatchDaysLate > c.Analysis.HighRiskDaysLate {
		return fmt.Errorf("watch_days_late (%v) must not exceed high_risk_days_late (%v)",
			c.Analysis.WatchDaysLate, c.Analysis.HighRiskDaysLate)
	}
	if c.Analysis.WatchRejectionRate > c.Analysis.HighRiskRejectionRate {
		return fmt.Errorf("watch_rejection_rate (%v) must not exceed high_risk_rejection_rate (%v)",
			c.Analysis.WatchRejectionRate, c.Analysis.HighRiskRejectionRate)
	}
	if c.Analysis.ConsolidationSimilarityFloor < 0 || c.Analysis.ConsolidationSimilarityFloor > 1 {
		return fmt.Errorf("consolidation_similarity_floor must be within [0, 1], got %v",
			c.Analysis.ConsolidationSimilarityFloor)
	}
	if c.Analysis.TopRejectionReasons < 1 {
		return fmt.Errorf("top_rejection_reasons must be at least 1, got %d",
			c.Analysis.TopRejectionReasons)
	}
	return nil
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return c.BindAddr + ":" + c.Port
}

// DataFile resolves a source file name against the data directory.
func (c *DataConfig) DataFile(name string) string {
	return filepath.Join(c.Dir, name)
}

// parseSuffixTokens parses the comma-separated token list, trimming
// whitespace and dropping empty entries.
func parseSuffixTokens(value string) []string {
	var tokens []string
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
