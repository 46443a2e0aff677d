// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package objects

import (
	"testing"

	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "nested", in: "d1/vehicles/VIN/0.jpg"},
		{name: "empty", in: "", wantErr: true},
		{name: "absolute", in: "/d1/0.jpg", wantErr: true},
		{name: "parent", in: "../0.jpg", wantErr: true},
		{name: "inner parent", in: "d1/../../0.jpg", wantErr: true},
		{name: "double slash", in: "d1//0.jpg", wantErr: true},
		{name: "backslash", in: `d1\0.jpg`, wantErr: true},
		{name: "dot", in: ".", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cleanName(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidObjectName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestNewStorage_SelectsBackend(t *testing.T) {
	fsStore, err := NewStorage(config.Objects{Backend: config.ObjectsBackendFS, Dir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &fsStorage{}, fsStore)

	s3Store, err := NewStorage(config.Objects{
		Backend:  config.ObjectsBackendS3,
		Endpoint: "localhost:9000",
		Bucket:   "inventory",
	}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &minioStorage{}, s3Store)

	_, err = NewStorage(config.Objects{Backend: "ftp"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestMinIOStorage_PublicURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Objects
		want string
	}{
		{
			name: "bucket on endpoint",
			cfg:  config.Objects{Endpoint: "localhost:9000", Bucket: "inventory"},
			want: "http://localhost:9000/inventory/d1/0.jpg",
		},
		{
			name: "tls endpoint",
			cfg:  config.Objects{Endpoint: "s3.example.com", Bucket: "inventory", UseSSL: true},
			want: "https://s3.example.com/inventory/d1/0.jpg",
		},
		{
			name: "cdn base",
			cfg:  config.Objects{Endpoint: "localhost:9000", Bucket: "inventory", PublicBaseURL: "https://cdn.example.com"},
			want: "https://cdn.example.com/d1/0.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIOStorage(tt.cfg, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.PublicURL("d1/0.jpg"))
		})
	}
}
