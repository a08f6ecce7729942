package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Port            string   `envconfig:"PORT" default:"8080"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	AnalysisFile    string   `envconfig:"ANALYSIS_CONFIG" default:""`
}

// AnalysisConfig holds the tunables of the scoring pipeline. The keyword set,
// weights and threshold are read-only for the duration of a run and safe to
// share across concurrent batch invocations.
type AnalysisConfig struct {
	Keywords               []string `yaml:"keywords"`
	WeightNormalized       float64  `yaml:"weight_normalized"`
	WeightDiversity        float64  `yaml:"weight_diversity"`
	HighIntensityThreshold float64  `yaml:"high_intensity_threshold"`
	WholeWordMatch         bool     `yaml:"whole_word_match"`
}

// DefaultAnalysisConfig returns the documented default tunables
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		Keywords: []string{
			"growth", "risk", "innovation", "market", "confidence",
			"investment", "strategic", "opportunity", "challenges", "expansion",
		},
		WeightNormalized:       50,
		WeightDiversity:        0.5,
		HighIntensityThreshold: 30.00,
		WholeWordMatch:         false,
	}
}

// Load loads configuration from environment variables and the optional
// analysis YAML file named by ANALYSIS_CONFIG
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Analysis: DefaultAnalysisConfig(),
	}
	if err := envconfig.Process("briefing", &config.Server); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if config.Server.AnalysisFile != "" {
		analysis, err := LoadAnalysisFile(config.Server.AnalysisFile)
		if err != nil {
			return nil, err
		}
		config.Analysis = analysis
	}

	if err := config.Analysis.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadAnalysisFile reads analysis tunables from a YAML file. Fields left
// empty in the file keep their documented defaults.
func LoadAnalysisFile(path string) (AnalysisConfig, error) {
	cfg := DefaultAnalysisConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read analysis config %s: %w", path, err)
	}

	var file struct {
		Keywords               []string `yaml:"keywords"`
		WeightNormalized       *float64 `yaml:"weight_normalized"`
		WeightDiversity        *float64 `yaml:"weight_diversity"`
		HighIntensityThreshold *float64 `yaml:"high_intensity_threshold"`
		WholeWordMatch         *bool    `yaml:"whole_word_match"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse analysis config %s: %w", path, err)
	}

	if len(file.Keywords) > 0 {
		cfg.Keywords = file.Keywords
	}
	if file.WeightNormalized != nil {
		cfg.WeightNormalized = *file.WeightNormalized
	}
	if file.WeightDiversity != nil {
		cfg.WeightDiversity = *file.WeightDiversity
	}
	if file.HighIntensityThreshold != nil {
		cfg.HighIntensityThreshold = *file.HighIntensityThreshold
	}
	if file.WholeWordMatch != nil {
		cfg.WholeWordMatch = *file.WholeWordMatch
	}

	return cfg, nil
}

// Validate validates the analysis configuration
func (c AnalysisConfig) Validate() error {
	if len(c.Keywords) == 0 {
		return fmt.Errorf("analysis config requires at least one keyword")
	}
	for _, kw := range c.Keywords {
		if kw == "" {
			return fmt.Errorf("analysis config contains an empty keyword")
		}
	}
	return nil
}

// Addr returns the server listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
