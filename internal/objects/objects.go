// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package objects

import (
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
)

// MediaRoute is where the HTTP server exposes the filesystem backend.
const MediaRoute = "/media"

// NewStorage builds the backend selected by cfg.Backend.
func NewStorage(cfg config.Objects, logger *logger.Logger) (Storage, error) {
	switch cfg.Backend {
	case config.ObjectsBackendS3:
		return NewMinIOStorage(cfg, logger)
	case config.ObjectsBackendFS:
		return NewFSStorage(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// cleanName rejects names that could escape the backend namespace.
func cleanName(name string) (string, error) {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidObjectName, name)
	}

	cleaned := path.Clean(name)
	if cleaned != name || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidObjectName, name)
	}

	return cleaned, nil
}

func joinURL(base, name string) string {
	return strings.TrimRight(base, "/") + "/" + name
}
