// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-inventory-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VehicleRepository persists the local inventory. Every method is scoped to a
// dealer and a provenance source.
type VehicleRepository interface {
	// ListActiveBySource returns the active rows of dealerID tagged with source.
	ListActiveBySource(ctx context.Context, dealerID, source string) ([]models.Vehicle, error)
	// FindByVIN returns the row for vin regardless of its active flag, or
	// [ErrVehicleNotFound].
	FindByVIN(ctx context.Context, dealerID, source, vin string) (models.Vehicle, error)
	// Insert creates a row and returns it with the generated ID.
	Insert(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
	// Update overwrites the row identified by vehicle.ID.
	Update(ctx context.Context, vehicle models.Vehicle) error
	// DeactivateByIDs marks still-active rows as disabled by the sync engine
	// and returns how many rows changed.
	DeactivateByIDs(ctx context.Context, ids []int64, at time.Time) (int64, error)
	// TouchSynced sets last_synced_at on rows whose content did not change.
	TouchSynced(ctx context.Context, ids []int64, at time.Time) error
}

// SyncRunRepository persists sync run audit records and their errors.
type SyncRunRepository interface {
	Create(ctx context.Context, run models.SyncRun) error
	// Finalize writes the terminal state of run and its errors atomically.
	// A run that is already terminal yields [ErrSyncRunFinalized].
	Finalize(ctx context.Context, run models.SyncRun, errs []models.SyncError) error
	GetByID(ctx context.Context, dealerID, id string) (models.SyncRun, error)
	ListByDealer(ctx context.Context, dealerID string, limit uint64) ([]models.SyncRun, error)
	LatestByDealer(ctx context.Context, dealerID string) (models.SyncRun, error)
	ListErrors(ctx context.Context, runID string) ([]models.SyncError, error)
}

// DealerConfigRepository reads and writes partner feed configuration.
type DealerConfigRepository interface {
	GetByDealerID(ctx context.Context, dealerID string) (models.DealerConfig, error)
	// ListEnabled returns enabled configurations ordered by dealer ID.
	ListEnabled(ctx context.Context) ([]models.DealerConfig, error)
	Save(ctx context.Context, cfg models.DealerConfig) error
}

// DealerUserRepository maps dashboard users to the dealer they administer.
type DealerUserRepository interface {
	FindDealerIDByUserID(ctx context.Context, userID int64) (string, error)
	Link(ctx context.Context, userID int64, dealerID string) error
}
