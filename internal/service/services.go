// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-inventory-sync/internal/adapter"
	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/crypto"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/objects"
	"github.com/MKhiriev/go-inventory-sync/internal/store"
	"github.com/MKhiriev/go-inventory-sync/internal/utils"
)

type Services struct {
	SyncService          SyncService
	TriggerAuthenticator TriggerAuthenticator
}

func NewServices(
	repos *store.Repositories,
	storage objects.Storage,
	cipher crypto.CredentialCipher,
	feed adapter.FeedClient,
	downloader adapter.PhotoDownloader,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	selector := NewDealerSelector(repos.DealerConfigRepository, cfg.App.CronDealerID)

	return &Services{
		SyncService: NewSyncService(SyncServiceDeps{
			Repositories: repos,
			Loader:       NewConfigLoader(repos.DealerConfigRepository, cipher, cfg.Feed.PageSize),
			Feed:         feed,
			Photos:       NewPhotoMirror(storage, downloader, cfg.Storage.Objects.Timeout),
			Selector:     selector,
			IDs:          utils.NewUUIDGenerator(),
		}, cfg.Sync, logger),
		TriggerAuthenticator: NewTriggerAuthenticator(cfg.App, selector, repos.DealerUserRepository),
	}
}
