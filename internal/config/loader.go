// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML representation of the config file. All fields are
// pointers so that "absent" and "zero" can be told apart during merging.
type fileConfig struct {
	Listen  *string `yaml:"listen"`
	DataDir *string `yaml:"dataDir"`
	Log     *struct {
		Level   *string `yaml:"level"`
		Service *string `yaml:"service"`
	} `yaml:"log"`
	Metrics *struct {
		Enabled *bool   `yaml:"enabled"`
		Listen  *string `yaml:"listen"`
	} `yaml:"metrics"`
	RateLimit *struct {
		Enabled  *bool          `yaml:"enabled"`
		Requests *int           `yaml:"requests"`
		Window   *time.Duration `yaml:"window"`
	} `yaml:"rateLimit"`
	Tracing *struct {
		Enabled      *bool    `yaml:"enabled"`
		Exporter     *string  `yaml:"exporter"`
		Endpoint     *string  `yaml:"endpoint"`
		SamplingRate *float64 `yaml:"samplingRate"`
		Environment  *string  `yaml:"environment"`
	} `yaml:"tracing"`
}

// Loader loads configuration with precedence ENV > file > defaults.
type Loader struct {
	configPath string
	version    string
}

// NewLoader creates a loader. configPath may be empty (ENV + defaults only).
func NewLoader(configPath, version string) *Loader {
	return &Loader{configPath: configPath, version: version}
}

// Load resolves the configuration: defaults, then the YAML file (when
// present), then environment overrides, then validation.
func (l *Loader) Load() (AppConfig, error) {
	cfg := defaults()
	cfg.Version = l.version

	if l.configPath != "" {
		if err := l.mergeFile(&cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	l.mergeEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (l *Loader) mergeFile(cfg *AppConfig) error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return err
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: nothing to merge.
			return nil
		}
		return fmt.Errorf("parse %s: %w", l.configPath, err)
	}

	if fc.Listen != nil {
		cfg.ListenAddr = *fc.Listen
	}
	if fc.DataDir != nil {
		cfg.DataDir = *fc.DataDir
	}
	if fc.Log != nil {
		if fc.Log.Level != nil {
			cfg.LogLevel = *fc.Log.Level
		}
		if fc.Log.Service != nil {
			cfg.LogService = *fc.Log.Service
		}
	}
	if fc.Metrics != nil {
		if fc.Metrics.Enabled != nil {
			cfg.MetricsEnabled = *fc.Metrics.Enabled
		}
		if fc.Metrics.Listen != nil {
			cfg.MetricsAddr = *fc.Metrics.Listen
		}
	}
	if fc.RateLimit != nil {
		if fc.RateLimit.Enabled != nil {
			cfg.RateLimitEnabled = *fc.RateLimit.Enabled
		}
		if fc.RateLimit.Requests != nil {
			cfg.RateLimitRequests = *fc.RateLimit.Requests
		}
		if fc.RateLimit.Window != nil {
			cfg.RateLimitWindow = *fc.RateLimit.Window
		}
	}
	if fc.Tracing != nil {
		if fc.Tracing.Enabled != nil {
			cfg.Tracing.Enabled = *fc.Tracing.Enabled
		}
		if fc.Tracing.Exporter != nil {
			cfg.Tracing.ExporterType = *fc.Tracing.Exporter
		}
		if fc.Tracing.Endpoint != nil {
			cfg.Tracing.Endpoint = *fc.Tracing.Endpoint
		}
		if fc.Tracing.SamplingRate != nil {
			cfg.Tracing.SamplingRate = *fc.Tracing.SamplingRate
		}
		if fc.Tracing.Environment != nil {
			cfg.Tracing.Environment = *fc.Tracing.Environment
		}
	}
	return nil
}

// mergeEnv applies environment overrides. ENV is the highest priority, so the
// current (defaults+file) values serve as the fallbacks.
func (l *Loader) mergeEnv(cfg *AppConfig) {
	cfg.ListenAddr = ParseString("STASH_LISTEN", cfg.ListenAddr)
	cfg.DataDir = ParseString("STASH_DATA", cfg.DataDir)
	cfg.LogLevel = ParseString("STASH_LOG_LEVEL", cfg.LogLevel)
	cfg.LogService = ParseString("STASH_LOG_SERVICE", cfg.LogService)
	cfg.MetricsEnabled = ParseBool("STASH_METRICS_ENABLED", cfg.MetricsEnabled)
	cfg.MetricsAddr = ParseString("STASH_METRICS_LISTEN", cfg.MetricsAddr)
	cfg.RateLimitEnabled = ParseBool("STASH_RATELIMIT_ENABLED", cfg.RateLimitEnabled)
	cfg.RateLimitRequests = ParseInt("STASH_RATELIMIT_REQUESTS", cfg.RateLimitRequests)
	cfg.RateLimitWindow = ParseDuration("STASH_RATELIMIT_WINDOW", cfg.RateLimitWindow)
	cfg.Tracing.Enabled = ParseBool("STASH_TRACING_ENABLED", cfg.Tracing.Enabled)
	cfg.Tracing.ExporterType = ParseString("STASH_TRACING_EXPORTER", cfg.Tracing.ExporterType)
	cfg.Tracing.Endpoint = ParseString("STASH_TRACING_ENDPOINT", cfg.Tracing.Endpoint)
	cfg.Tracing.SamplingRate = ParseFloat("STASH_TRACING_SAMPLING", cfg.Tracing.SamplingRate)
	cfg.Tracing.Environment = ParseString("STASH_TRACING_ENVIRONMENT", cfg.Tracing.Environment)
}
