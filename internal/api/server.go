// SPDX-License-Identifier: MIT

// Package api implements the HTTP surface of stash: the collection
// endpoints, system endpoints and the middleware stack wiring.
package api

import (
	"net/http"
	"time"

	"github.com/ManuGH/stash/internal/api/middleware"
	"github.com/ManuGH/stash/internal/collection"
	"github.com/ManuGH/stash/internal/config"
	"github.com/ManuGH/stash/internal/health"
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	cfg       config.AppConfig
	registry  *collection.Registry
	healthMgr *health.Manager
	startTime time.Time
}

// New creates a Server ready to produce its handler.
func New(cfg config.AppConfig, registry *collection.Registry, healthMgr *health.Manager) *Server {
	return &Server{
		cfg:       cfg,
		registry:  registry,
		healthMgr: healthMgr,
		startTime: time.Now(),
	}
}

// Handler returns the fully wired router with the canonical middleware stack.
func (s *Server) Handler() http.Handler {
	r := middleware.NewRouter(middleware.StackConfig{
		ServiceName:    s.cfg.LogService,
		TracingEnabled: s.cfg.Tracing.Enabled,
		RateLimit: middleware.RateLimitConfig{
			Enabled:  s.cfg.RateLimitEnabled,
			Requests: s.cfg.RateLimitRequests,
			Window:   s.cfg.RateLimitWindow,
		},
	})
	s.registerRoutes(r)
	return r
}
