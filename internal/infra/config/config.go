package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	LogLevel    string
	Environment string
	PolicyFile  string // optional YAML with regulatory policy overrides
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.PolicyFile = os.Getenv("POLICY_FILE")

	return cfg, nil
}

// Policy carries the regulatory values that shift between promotion
// cycles: the small-unit reporting threshold and the higher-tenure
// exception window. Defaults match the values currently in force.
type Policy struct {
	SmallUnitThreshold int    `yaml:"small_unit_threshold" default:"10"`
	HYTExceptionStart  string `yaml:"hyt_exception_start" default:"2023-12-08"`
	HYTExceptionEnd    string `yaml:"hyt_exception_end" default:"2026-09-30"`

	hytStart time.Time
	hytEnd   time.Time
}

// Validate checks ranges and resolves the window dates.
func (p *Policy) Validate() error {
	if p.SmallUnitThreshold < 0 {
		return fmt.Errorf("small_unit_threshold must not be negative, got %d", p.SmallUnitThreshold)
	}
	var err error
	if p.hytStart, err = time.Parse("2006-01-02", p.HYTExceptionStart); err != nil {
		return fmt.Errorf("invalid hyt_exception_start: %w", err)
	}
	if p.hytEnd, err = time.Parse("2006-01-02", p.HYTExceptionEnd); err != nil {
		return fmt.Errorf("invalid hyt_exception_end: %w", err)
	}
	if p.hytEnd.Before(p.hytStart) {
		return fmt.Errorf("hyt exception window ends (%s) before it starts (%s)", p.HYTExceptionEnd, p.HYTExceptionStart)
	}
	return nil
}

// HYTWindow returns the resolved exception window. Valid only after
// Validate has run.
func (p *Policy) HYTWindow() (start, end time.Time) {
	return p.hytStart, p.hytEnd
}

// LoadPolicy loads the policy file, or the built-in defaults when path is
// empty.
func LoadPolicy(path string) (*Policy, error) {
	policy := &Policy{}
	if err := defaults.Set(policy); err != nil {
		return nil, fmt.Errorf("failed to set policy defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read policy file: %w", err)
		}
		if err := yaml.Unmarshal(data, policy); err != nil {
			return nil, fmt.Errorf("failed to parse policy file: %w", err)
		}
	}

	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return policy, nil
}
