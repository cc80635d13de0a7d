// SPDX-License-Identifier: MIT

package api

import (
	"github.com/go-chi/chi/v5"
)

func (s *Server) registerRoutes(r chi.Router) {
	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", s.handleVersion)

		r.Route("/collections", func(r chi.Router) {
			r.Post("/", s.handleCreateCollection)
			r.Get("/", s.handleListCollections)

			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", s.handleCollectionInfo)
				r.Post("/items", s.handleAddItem)
				r.Get("/items", s.handleListItems)
				r.Get("/search", s.handleSearch)
			})
		})
	})
}
