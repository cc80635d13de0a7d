// SPDX-License-Identifier: MIT

package api

import (
	"net/http"
	"time"

	"github.com/ManuGH/stash/internal/version"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.healthMgr.ServeHealth(w, r)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	s.healthMgr.ServeReady(w, r)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
		"uptime":  time.Since(s.startTime).Round(time.Second).String(),
	})
}
