// Package config loads and validates the seqclust run configuration.
//
// Values come from Default(), are overridden by a YAML file (Load), and
// finally by CLI flags applied by the caller before Validate.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

var validate = validator.New()

// Config is the complete run configuration.
type Config struct {
	Vertices string `yaml:"vertices"`
	Hits     string `yaml:"hits"`
	Output   string `yaml:"output"`

	// InitialEdgeThreshold is the first band cutoff of the annealing sweep.
	InitialEdgeThreshold float64 `yaml:"initial_edge_threshold" validate:"gte=0,lte=1,gtfield=FinalEdgeThreshold"`
	// FinalEdgeThreshold is the exclusive lower bound of the sweep.
	FinalEdgeThreshold float64 `yaml:"final_edge_threshold" validate:"gte=0,lte=1"`
	// ClusterThreshold gates cluster seeding, growth and merging.
	ClusterThreshold float64 `yaml:"cluster_threshold" validate:"gte=0,lte=1"`
	// Thresholds: min rejects edges on load, max admits edges to the candidate pool.
	Thresholds []float64 `yaml:"thresholds" validate:"required,min=1,dive,gte=0,lte=1"`

	Workers         int  `yaml:"workers" validate:"gte=1,lte=256"`
	CheckInvariants bool `yaml:"check_invariants"`

	// Store is a Badger directory; empty disables persistence.
	Store string `yaml:"store"`
	// MetricsFile receives a Prometheus text dump; empty disables it.
	MetricsFile string `yaml:"metrics_file"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the zap preset and level.
type LogConfig struct {
	Mode  string `yaml:"mode" validate:"oneof=dev development prod production"`
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InitialEdgeThreshold: 0.95,
		FinalEdgeThreshold:   0.5,
		ClusterThreshold:     0.5,
		Thresholds:           []float64{0.5},
		Workers:              1,
		Log: LogConfig{
			Mode:  "dev",
			Level: "info",
		},
	}
}

// Load reads path over Default(). The result is not validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// MinThreshold returns min(Thresholds), 0 when empty.
func (c *Config) MinThreshold() float64 {
	if len(c.Thresholds) == 0 {
		return 0
	}
	m := c.Thresholds[0]
	for _, t := range c.Thresholds[1:] {
		m = min(m, t)
	}

	return m
}

// Validate checks field ranges, the initial > final ordering and that
// the final threshold does not sweep below the load cutoff.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if c.FinalEdgeThreshold < c.MinThreshold() {
		return fmt.Errorf("%w: final_edge_threshold %.3f is below min(thresholds) %.3f",
			ErrInvalidConfig, c.FinalEdgeThreshold, c.MinThreshold())
	}

	return nil
}

func formatValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, formatFieldError(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, e.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
