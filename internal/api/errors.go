// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"github.com/ManuGH/stash/internal/log"
	"github.com/ManuGH/stash/internal/telemetry"
)

// errorBody is the uniform JSON error shape of the API.
type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := log.WithComponentFromContext(r.Context(), "api")
		logger.Error().Err(err).
			Str(log.FieldEvent, "api.encode_failed").
			Str(log.FieldPath, r.URL.Path).
			Msg("failed to encode response body")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	trace.SpanFromContext(r.Context()).SetAttributes(
		telemetry.HTTPAttributes(r.Method, r.URL.Path, status)...)
	writeJSON(w, r, status, errorBody{
		Error:     msg,
		RequestID: log.RequestIDFromContext(r.Context()),
	})
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	writeError(w, r, http.StatusBadRequest, msg)
}

func writeNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	writeError(w, r, http.StatusNotFound, msg)
}

func writeConflict(w http.ResponseWriter, r *http.Request, msg string) {
	writeError(w, r, http.StatusConflict, msg)
}
