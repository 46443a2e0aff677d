// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-inventory-sync/internal/logger"

// Repositories groups every repository backed by one [DB].
type Repositories struct {
	VehicleRepository      VehicleRepository
	SyncRunRepository      SyncRunRepository
	DealerConfigRepository DealerConfigRepository
	DealerUserRepository   DealerUserRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		VehicleRepository:      NewVehicleRepository(db, log),
		SyncRunRepository:      NewSyncRunRepository(db, log),
		DealerConfigRepository: NewDealerConfigRepository(db, log),
		DealerUserRepository:   NewDealerUserRepository(db, log),
	}
}
