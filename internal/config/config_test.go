package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Maria-Villafuerte/MCP/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

var envKeys = []string{
	"BEAUTY_CONFIG",
	"BEAUTY_LOG_LEVEL",
	"BEAUTY_LOG_MODE",
	"BEAUTY_LOG_REDACT",
	"BEAUTY_STORE_BACKEND",
	"BEAUTY_DATA_DIR",
	"BEAUTY_METRICS_ADDR",
	"BEAUTY_LOW_CONFIDENCE_THRESHOLD",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearEnv(t)

		convey.Convey("When loading with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then the defaults are used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.LogMode, convey.ShouldEqual, "prod")
				convey.So(cfg.LogRedact, convey.ShouldBeTrue)
				convey.So(cfg.StoreBackend, convey.ShouldEqual, "sqlite")
				convey.So(cfg.DataDir, convey.ShouldEndWith, ".beauty-mcp")
				convey.So(cfg.MetricsAddr, convey.ShouldBeEmpty)
				convey.So(cfg.LowConfidenceThreshold, convey.ShouldEqual, 0.55)
			})
		})

		convey.Convey("When environment variables are set", func() {
			t.Setenv("BEAUTY_STORE_BACKEND", "memory")
			t.Setenv("BEAUTY_LOG_LEVEL", "debug")
			t.Setenv("BEAUTY_LOG_REDACT", "false")
			t.Setenv("BEAUTY_METRICS_ADDR", "127.0.0.1:9464")
			t.Setenv("BEAUTY_LOW_CONFIDENCE_THRESHOLD", "0.7")
			defer clearEnv(t)

			cfg, err := config.Load(ctx)

			convey.Convey("Then they override the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.StoreBackend, convey.ShouldEqual, "memory")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.LogRedact, convey.ShouldBeFalse)
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, "127.0.0.1:9464")
				convey.So(cfg.LowConfidenceThreshold, convey.ShouldEqual, 0.7)
			})
		})

		convey.Convey("When a YAML file is given", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "beauty.yaml")
			yamlContent := `
store_backend: file
data_dir: /tmp/beauty-data
log_mode: dev
`
			convey.So(os.WriteFile(path, []byte(yamlContent), 0o600), convey.ShouldBeNil)
			t.Setenv("BEAUTY_CONFIG", path)
			defer clearEnv(t)

			convey.Convey("Then its values are loaded", func() {
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.StoreBackend, convey.ShouldEqual, "file")
				convey.So(cfg.DataDir, convey.ShouldEqual, "/tmp/beauty-data")
				convey.So(cfg.LogMode, convey.ShouldEqual, "dev")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			})

			convey.Convey("Then env still wins over the file", func() {
				t.Setenv("BEAUTY_STORE_BACKEND", "memory")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.StoreBackend, convey.ShouldEqual, "memory")
				convey.So(cfg.DataDir, convey.ShouldEqual, "/tmp/beauty-data")
			})
		})

		convey.Convey("When the file does not exist", func() {
			t.Setenv("BEAUTY_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
			defer clearEnv(t)

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the backend is unknown", func() {
			t.Setenv("BEAUTY_STORE_BACKEND", "redis")
			defer clearEnv(t)

			_, err := config.Load(ctx)

			convey.Convey("Then validation rejects it", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func TestConfigValidate(t *testing.T) {
	convey.Convey("Given the default config", t, func() {
		cfg := config.New()
		convey.So(cfg.Validate(), convey.ShouldBeNil)

		convey.Convey("An out-of-range threshold is rejected", func() {
			for _, v := range []float64{0, -0.1, 1.5} {
				cfg.LowConfidenceThreshold = v
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			}
		})

		convey.Convey("An empty data dir is rejected for disk backends", func() {
			cfg.DataDir = " "
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			cfg.StoreBackend = "memory"
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("An unknown log mode is rejected", func() {
			cfg.LogMode = "verbose"
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("Store expands a home-relative data dir", func() {
			home, err := os.UserHomeDir()
			convey.So(err, convey.ShouldBeNil)
			cfg.DataDir = "~/colors"
			convey.So(cfg.Store().DataDir, convey.ShouldEqual, filepath.Join(home, "colors"))
			convey.So(cfg.Store().Backend, convey.ShouldEqual, "sqlite")
		})
	})
}
