// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/ManuGH/stash/internal/collection"
	"github.com/ManuGH/stash/internal/log"
	"github.com/ManuGH/stash/internal/metrics"
	"github.com/ManuGH/stash/internal/telemetry"
)

type createCollectionRequest struct {
	Name string `json:"name"`
}

type addItemRequest struct {
	Item string `json:"item"`
}

type collectionInfo struct {
	Name  string `json:"name"`
	Items int    `json:"items"`
}

func (s *Server) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	var req createCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, "invalid JSON body")
		return
	}

	span := trace.SpanFromContext(r.Context())

	col, err := s.registry.Create(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, collection.ErrDuplicateName):
			metrics.RecordCreateError()
			span.SetAttributes(telemetry.ErrorAttributes("duplicate_name")...)
			writeConflict(w, r, "collection already exists")
		case errors.Is(err, collection.ErrEmptyName):
			metrics.RecordCreateError()
			span.SetAttributes(telemetry.ErrorAttributes("empty_name")...)
			writeBadRequest(w, r, "collection name must not be empty")
		default:
			writeError(w, r, http.StatusInternalServerError, "failed to create collection")
		}
		return
	}

	span.SetAttributes(telemetry.CollectionAttributes(col.Name(), col.Count())...)
	metrics.SetCollections(s.registry.Len())
	logger := log.WithComponentFromContext(r.Context(), "api")
	logger.Info().
		Str(log.FieldEvent, "collection.created").
		Str(log.FieldCollection, col.Name()).
		Msg("collection created")

	writeJSON(w, r, http.StatusCreated, collectionInfo{Name: col.Name(), Items: col.Count()})
}

func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	names := s.registry.Names()
	infos := make([]collectionInfo, 0, len(names))
	for _, name := range names {
		if col, ok := s.registry.Get(name); ok {
			infos = append(infos, collectionInfo{Name: col.Name(), Items: col.Count()})
		}
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"collections": infos})
}

func (s *Server) handleCollectionInfo(w http.ResponseWriter, r *http.Request) {
	col, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, collectionInfo{Name: col.Name(), Items: col.Count()})
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	col, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, "invalid JSON body")
		return
	}

	logger := log.WithComponentFromContext(r.Context(), "api")

	// Rejection is a normal outcome of the add operation, not a server error.
	if !col.Add(req.Item) {
		metrics.RecordAdd(col.Name(), false)
		logger.Debug().
			Str(log.FieldEvent, "item.rejected").
			Str(log.FieldCollection, col.Name()).
			Msg("empty item rejected")
		writeError(w, r, http.StatusUnprocessableEntity, "item must not be empty or whitespace-only")
		return
	}

	metrics.RecordAdd(col.Name(), true)
	metrics.SetCollectionItems(col.Name(), col.Count())
	trace.SpanFromContext(r.Context()).SetAttributes(
		telemetry.CollectionAttributes(col.Name(), col.Count())...)
	logger.Info().
		Str(log.FieldEvent, "item.added").
		Str(log.FieldCollection, col.Name()).
		Int(log.FieldItemCount, col.Count()).
		Msg("item added")

	writeJSON(w, r, http.StatusCreated, map[string]any{
		"item":  strings.TrimSpace(req.Item),
		"count": col.Count(),
	})
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	col, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"name":  col.Name(),
		"items": col.Items(),
		"count": col.Count(),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	col, ok := s.lookup(w, r)
	if !ok {
		return
	}

	if !r.URL.Query().Has("q") {
		writeBadRequest(w, r, "missing query parameter q")
		return
	}
	term := r.URL.Query().Get("q")

	match, found := col.Find(term)
	metrics.RecordFind(col.Name(), found)
	trace.SpanFromContext(r.Context()).SetAttributes(telemetry.SearchAttributes(term, found)...)

	logger := log.WithComponentFromContext(r.Context(), "api")
	logger.Debug().
		Str(log.FieldEvent, "collection.searched").
		Str(log.FieldCollection, col.Name()).
		Str(log.FieldTerm, term).
		Bool("found", found).
		Msg("search executed")

	if !found {
		writeNotFound(w, r, "no item matches the search term")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"term":  term,
		"match": match,
	})
}

// lookup resolves the {name} path parameter; it writes the 404 itself so
// handlers can early-return on !ok.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*collection.Collection, bool) {
	name := chi.URLParam(r, "name")
	col, ok := s.registry.Get(name)
	if !ok {
		writeNotFound(w, r, "collection not found")
		return nil, false
	}
	return col, true
}
