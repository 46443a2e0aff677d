// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/service"
)

type Handler struct {
	services *service.Services

	// mediaDir is served under /media/ when photos are mirrored to the
	// local filesystem.
	mediaDir string
	version  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		version:  cfg.App.Version,
		logger:   logger,
	}
	if cfg.Storage.Objects.Backend == config.ObjectsBackendFS {
		h.mediaDir = cfg.Storage.Objects.Dir
	}

	logger.Info().Str("media_dir", h.mediaDir).Msg("http handler created")
	return h
}
