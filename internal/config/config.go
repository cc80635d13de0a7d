// SPDX-License-Identifier: MIT

// Package config provides configuration management for stash.
//
// Precedence is ENV > YAML file > defaults. All environment keys carry the
// STASH_ prefix.
package config

import "time"

// AppConfig is the resolved application configuration.
type AppConfig struct {
	// Version is the build version, injected by the loader.
	Version string

	// ListenAddr is the API listen address (e.g. ":8080").
	ListenAddr string

	// MetricsEnabled toggles the separate Prometheus metrics listener.
	MetricsEnabled bool

	// MetricsAddr is the metrics listen address (e.g. ":9090").
	MetricsAddr string

	// LogLevel is the zerolog level name ("debug", "info", ...).
	LogLevel string

	// LogService is the service name attached to every log entry.
	LogService string

	// DataDir is where the optional config.yaml is auto-loaded from.
	DataDir string

	// RateLimitEnabled toggles the per-IP API rate limiter.
	RateLimitEnabled bool

	// RateLimitRequests is the allowed request count per window per IP.
	RateLimitRequests int

	// RateLimitWindow is the rate limit window size.
	RateLimitWindow time.Duration

	// Tracing holds OpenTelemetry settings.
	Tracing TracingConfig
}

// TracingConfig holds OpenTelemetry tracing settings.
type TracingConfig struct {
	// Enabled toggles tracing. When false a noop provider is installed.
	Enabled bool

	// ExporterType is "grpc" or "http" (OTLP).
	ExporterType string

	// Endpoint is the OTLP collector endpoint.
	Endpoint string

	// SamplingRate is the trace sampling ratio in [0.0, 1.0].
	SamplingRate float64

	// Environment is the deployment environment attached to the resource.
	Environment string
}

// Default values. The listen defaults match the container image's exposed ports.
const (
	DefaultListenAddr  = ":8080"
	DefaultMetricsAddr = ":9090"
	DefaultLogLevel    = "info"
	DefaultLogService  = "stash"
	DefaultDataDir     = "/var/lib/stash"

	defaultRateLimitRequests = 600
	defaultRateLimitWindow   = time.Minute

	defaultTracingExporter = "grpc"
	defaultTracingSampling = 1.0
)

// defaults returns an AppConfig populated with default values.
func defaults() AppConfig {
	return AppConfig{
		ListenAddr:        DefaultListenAddr,
		MetricsEnabled:    true,
		MetricsAddr:       DefaultMetricsAddr,
		LogLevel:          DefaultLogLevel,
		LogService:        DefaultLogService,
		DataDir:           DefaultDataDir,
		RateLimitEnabled:  true,
		RateLimitRequests: defaultRateLimitRequests,
		RateLimitWindow:   defaultRateLimitWindow,
		Tracing: TracingConfig{
			Enabled:      false,
			ExporterType: defaultTracingExporter,
			SamplingRate: defaultTracingSampling,
			Environment:  "development",
		},
	}
}
