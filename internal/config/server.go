// SPDX-License-Identifier: MIT

package config

import "time"

// ServerConfig holds HTTP server runtime configuration.
type ServerConfig struct {
	// ListenAddr is the address to listen on (e.g. ":8080")
	ListenAddr string

	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out response writes
	WriteTimeout time.Duration

	// IdleTimeout is the maximum amount of time to wait for the next request
	IdleTimeout time.Duration

	// MaxHeaderBytes caps the size of parsed request headers
	MaxHeaderBytes int

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown
	ShutdownTimeout time.Duration
}

const (
	defaultReadTimeout     = 30 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultMaxHeaderBytes  = 1 << 20 // 1 MB
	defaultShutdownTimeout = 15 * time.Second
)

// ParseServerConfig resolves server runtime configuration with precedence
// ENV > AppConfig > defaults. The AppConfig contributes the listen address;
// the timeout knobs are ENV-only.
func ParseServerConfig(cfg AppConfig) ServerConfig {
	listen := cfg.ListenAddr
	if listen == "" {
		listen = DefaultListenAddr
	}
	return ServerConfig{
		ListenAddr:      ParseString("STASH_LISTEN", listen),
		ReadTimeout:     ParseDuration("STASH_READ_TIMEOUT", defaultReadTimeout),
		WriteTimeout:    ParseDuration("STASH_WRITE_TIMEOUT", defaultWriteTimeout),
		IdleTimeout:     ParseDuration("STASH_IDLE_TIMEOUT", defaultIdleTimeout),
		MaxHeaderBytes:  ParseInt("STASH_MAX_HEADER_BYTES", defaultMaxHeaderBytes),
		ShutdownTimeout: ParseDuration("STASH_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}
}
