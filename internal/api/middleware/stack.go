// SPDX-License-Identifier: MIT

// Package middleware provides the HTTP middleware stack for the stash API.
package middleware

import (
	"github.com/go-chi/chi/v5"

	"github.com/ManuGH/stash/internal/log"
)

// StackConfig configures the canonical middleware stack.
type StackConfig struct {
	ServiceName    string
	TracingEnabled bool
	RateLimit      RateLimitConfig
}

// NewRouter returns a chi router with the full middleware stack applied.
// Ordering matters: the recoverer is outermost so it catches panics from
// every other layer, and the rate limiter is innermost so rejected requests
// are still logged and counted.
func NewRouter(cfg StackConfig) chi.Router {
	r := chi.NewRouter()
	ApplyStack(r, cfg)
	return r
}

// ApplyStack registers the middleware stack on an existing router.
func ApplyStack(r chi.Router, cfg StackConfig) {
	r.Use(Recoverer)
	r.Use(RequestID)
	r.Use(SecurityHeaders)
	r.Use(Metrics)
	if cfg.TracingEnabled {
		r.Use(Tracing(cfg.ServiceName))
	}
	r.Use(log.Middleware())
	r.Use(RateLimit(cfg.RateLimit))
}
