// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Objects.Backend {
	case ObjectsBackendS3:
		if cfg.Storage.Objects.Endpoint == "" || cfg.Storage.Objects.Bucket == "" {
			return fmt.Errorf("%w: s3 backend needs endpoint and bucket", ErrInvalidStorageConfigs)
		}
	case ObjectsBackendFS:
		if cfg.Storage.Objects.Dir == "" {
			return fmt.Errorf("%w: fs backend needs a directory", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown objects backend %q", ErrInvalidStorageConfigs, cfg.Storage.Objects.Backend)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.CredentialKey == "" || cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Sync.Concurrency < 1 || cfg.Sync.ErrorCap < 0 || cfg.Sync.ResponseErrorLimit < 0 {
		return ErrInvalidSyncConfigs
	}
	if cfg.Sync.MaxDisablePercent < 0 || cfg.Sync.MaxDisablePercent > 100 {
		return fmt.Errorf("%w: max disable percent must be within [0, 100]", ErrInvalidSyncConfigs)
	}

	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
