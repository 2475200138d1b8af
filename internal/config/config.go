// Package config defines the server configuration and how it is loaded.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
	"github.com/Maria-Villafuerte/MCP/internal/profiles"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogMode selects the zap preset: prod (JSON) or dev (console).
	LogMode string `koanf:"log_mode"`

	// LogRedact hashes user IDs in log lines.
	LogRedact bool `koanf:"log_redact"`

	// LogHashSalt is mixed into redacted user IDs.
	LogHashSalt string `koanf:"log_hash_salt"`

	// StoreBackend is one of memory, file, sqlite.
	StoreBackend string `koanf:"store_backend"`

	// DataDir holds the file or sqlite backend's data.
	DataDir string `koanf:"data_dir"`

	// MetricsAddr enables a Prometheus listener, e.g. "127.0.0.1:9464".
	MetricsAddr string `koanf:"metrics_addr"`

	// LowConfidenceThreshold flags undertone verdicts below it.
	LowConfidenceThreshold float64 `koanf:"low_confidence_threshold"`
}

// New returns a Config populated with defaults.
func New() *Config {
	store := profiles.DefaultConfig()
	return &Config{
		LogLevel:               "info",
		LogMode:                "prod",
		LogRedact:              true,
		StoreBackend:           store.Backend,
		DataDir:                store.DataDir,
		LowConfidenceThreshold: colorimetry.LowConfidenceThreshold,
	}
}

// Validate reports the first invalid setting wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if !slices.Contains(profiles.BackendValues(), c.StoreBackend) {
		return fmt.Errorf("%w: store_backend %q (want one of %s)",
			ErrInvalidConfig, c.StoreBackend, strings.Join(profiles.BackendValues(), ", "))
	}
	if c.StoreBackend != profiles.BackendMemory && strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("%w: data_dir must not be empty for the %s backend", ErrInvalidConfig, c.StoreBackend)
	}
	if c.LowConfidenceThreshold <= 0 || c.LowConfidenceThreshold > 1 {
		return fmt.Errorf("%w: low_confidence_threshold %v must be in (0, 1]", ErrInvalidConfig, c.LowConfidenceThreshold)
	}
	switch c.LogMode {
	case "prod", "dev":
	default:
		return fmt.Errorf("%w: log_mode %q (want prod or dev)", ErrInvalidConfig, c.LogMode)
	}
	return nil
}

// Store returns the profile store settings. A leading "~/" in DataDir is
// expanded to the home directory.
func (c *Config) Store() profiles.Config {
	dir := c.DataDir
	if rest, ok := strings.CutPrefix(dir, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, rest)
		}
	}
	return profiles.Config{Backend: c.StoreBackend, DataDir: dir}
}
