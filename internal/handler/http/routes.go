// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
		if h.mediaDir != "" {
			r.Method(http.MethodGet, "/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(h.mediaDir))))
		}
	})

	// routes accepting either trigger credential
	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.auth)
		r.Post("/api/inventory/sync", h.syncInventory)
		r.Get("/api/inventory/sync/runs", h.listSyncRuns)
		r.Get("/api/inventory/sync/runs/{id}", h.getSyncRun)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
