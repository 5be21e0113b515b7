// Package logging builds the process-wide zap logger. The tutoring core
// itself only ever logs; learner-facing output never comes from here.
package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a logger for the given mode ("prod"/"production" for JSON
// output, anything else for the development console encoder) at the given
// level ("debug", "info", "warn", "error"; empty means info).
func New(mode, level string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zap.ParseAtomicLevel(levelOrDefault(level))
	if err != nil {
		return nil, err
	}
	cfg.Level = lvl

	return cfg.Build()
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return strings.ToLower(level)
}
