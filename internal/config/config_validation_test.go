// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.App.TokenSignKey = "sign"
	cfg.App.CredentialKey = "master"
	cfg.Storage.DB.DSN = "postgres://localhost/inventory"
	cfg.Server.HTTPAddress = "localhost:8080"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown objects backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Objects.Backend = "ftp" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "s3 without endpoint",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Objects.Backend = ObjectsBackendS3
				cfg.Storage.Objects.Endpoint = ""
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "s3 complete",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Objects.Backend = ObjectsBackendS3
				cfg.Storage.Objects.Endpoint = "localhost:9000"
			},
		},
		{
			name:    "fs without dir",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Objects.Dir = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing credential key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.CredentialKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero concurrency",
			mutate:  func(cfg *StructuredConfig) { cfg.Sync.Concurrency = 0 },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "disable percent above 100",
			mutate:  func(cfg *StructuredConfig) { cfg.Sync.MaxDisablePercent = 101 },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "negative scheduler interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.SyncInterval = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
