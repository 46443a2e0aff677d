// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package objects

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
)

type fsStorage struct {
	root          string
	publicBaseURL string

	logger *logger.Logger
}

// NewFSStorage creates a [Storage] that keeps objects as files below cfg.Dir.
// Public URLs default to the [MediaRoute] of this service.
func NewFSStorage(cfg config.Objects, logger *logger.Logger) (Storage, error) {
	root, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve objects directory: %w", err)
	}

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = MediaRoute
	}

	return &fsStorage{root: root, publicBaseURL: publicBaseURL, logger: logger}, nil
}

func (s *fsStorage) Init(ctx context.Context) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("failed to create objects directory: %w", err)
	}
	return nil
}

func (s *fsStorage) path(name string) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(name)), nil
}

func (s *fsStorage) Exists(ctx context.Context, name string) (bool, error) {
	p, err := s.path(name)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat object %q: %w", name, err)
	}

	return info.Mode().IsRegular(), nil
}

// Upload writes to a temporary file first so readers never see a partial
// photo.
func (s *fsStorage) Upload(ctx context.Context, name string, data []byte, contentType string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp object: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write object %q: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close object %q: %w", name, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to chmod object %q: %w", name, err)
	}

	if err = os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("failed to store object %q: %w", name, err)
	}

	return nil
}

func (s *fsStorage) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".upload-") {
			return nil
		}

		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list objects under %q: %w", prefix, err)
	}

	return names, nil
}

func (s *fsStorage) DeleteMany(ctx context.Context, names []string) (int, error) {
	deleted := 0
	var errs []error
	for _, name := range names {
		p, err := s.path(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		err = os.Remove(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to remove object %q: %w", name, err))
			continue
		}
		deleted++
	}

	if len(errs) > 0 {
		s.logger.Warn().Str("func", "fsStorage.DeleteMany").Int("failed", len(errs)).Msg("some objects were not removed")
	}

	return deleted, errors.Join(errs...)
}

func (s *fsStorage) PublicURL(name string) string {
	return joinURL(s.publicBaseURL, name)
}
