// Package config loads application settings from a YAML file with
// environment overrides. Model provider settings live in the llm package;
// this covers everything around it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	// LogMode is "production" or "development".
	LogMode string `yaml:"logMode"`

	// LogLevel is a zap level string: debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`

	// DBPath overrides the default SQLite location when set.
	DBPath string `yaml:"dbPath"`

	// Topic is the default topic offered when starting a session.
	Topic string `yaml:"topic"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogMode:  "production",
		LogLevel: "info",
	}
}

// DefaultPath resolves the config file location:
// 1. PRECEPTOR_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/preceptor/config.yaml
// 3. ~/.config/preceptor/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("PRECEPTOR_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "preceptor", "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. Environment variables override file values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No file is fine; defaults plus env apply.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, cfg.validate()
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PRECEPTOR_LOG_MODE"); v != "" {
		cfg.LogMode = v
	}
	if v := os.Getenv("PRECEPTOR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PRECEPTOR_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PRECEPTOR_TOPIC"); v != "" {
		cfg.Topic = v
	}
}

func (c Config) validate() error {
	switch c.LogMode {
	case "production", "development":
	default:
		return fmt.Errorf("invalid logMode %q (want production or development)", c.LogMode)
	}
	return nil
}
