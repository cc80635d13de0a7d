// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net"

	"github.com/rs/zerolog"
)

// Validate checks a resolved configuration for values that would break the
// daemon at runtime. It is called by the loader and again before every hot
// reload swap.
func Validate(cfg AppConfig) error {
	if err := validateListenAddr("listen", cfg.ListenAddr); err != nil {
		return err
	}
	if cfg.MetricsEnabled {
		if err := validateListenAddr("metrics.listen", cfg.MetricsAddr); err != nil {
			return err
		}
		if cfg.MetricsAddr == cfg.ListenAddr {
			return fmt.Errorf("metrics.listen %q collides with api listen address", cfg.MetricsAddr)
		}
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log.level %q: %w", cfg.LogLevel, err)
	}
	if cfg.RateLimitEnabled {
		if cfg.RateLimitRequests <= 0 {
			return fmt.Errorf("rateLimit.requests must be positive, got %d", cfg.RateLimitRequests)
		}
		if cfg.RateLimitWindow <= 0 {
			return fmt.Errorf("rateLimit.window must be positive, got %s", cfg.RateLimitWindow)
		}
	}
	if cfg.Tracing.Enabled {
		switch cfg.Tracing.ExporterType {
		case "grpc", "http":
		default:
			return fmt.Errorf("tracing.exporter %q: supported values are grpc, http", cfg.Tracing.ExporterType)
		}
		if cfg.Tracing.Endpoint == "" {
			return fmt.Errorf("tracing.endpoint is required when tracing is enabled")
		}
		if cfg.Tracing.SamplingRate < 0 || cfg.Tracing.SamplingRate > 1 {
			return fmt.Errorf("tracing.samplingRate must be in [0,1], got %g", cfg.Tracing.SamplingRate)
		}
	}
	return nil
}

func validateListenAddr(field, addr string) error {
	if addr == "" {
		return fmt.Errorf("%s is empty", field)
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("%s %q: %w", field, addr, err)
	}
	return nil
}
