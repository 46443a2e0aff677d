// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package objects stores mirrored vehicle photos. Object names are
// slash-separated keys such as "dealer-1/vehicles/VIN/0.jpg"; every backend
// maps them onto its own namespace and exposes them under a public URL.
package objects

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/objects_storage_mock.go -package=mock

// Storage is a flat key/value photo store.
type Storage interface {
	// Init prepares the backend (creates the bucket or the root directory).
	Init(ctx context.Context) error

	// Exists reports whether an object with exactly this name is stored.
	Exists(ctx context.Context, name string) (bool, error)

	// Upload stores data under name, replacing any previous object.
	Upload(ctx context.Context, name string, data []byte, contentType string) error

	// List returns the names of all objects whose name starts with prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// DeleteMany removes the named objects and returns how many were removed.
	DeleteMany(ctx context.Context, names []string) (int, error)

	// PublicURL returns the URL the storefront uses to load the object.
	PublicURL(name string) string
}
