// Package logging builds the zap logger shared by the CLI and the
// clustering packages.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// New returns a logger for mode ("dev"/"development" or "prod"/"production")
// at the given level ("debug", "info", "warn", "error"; empty means info).
func New(mode, level string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	case "", "dev", "development":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("logging: unknown mode %q", mode)
	}

	if level == "" {
		level = "info"
	}
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	cfg.Level = lvl

	return cfg.Build()
}
