// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/service"
)

// SyncWorker is the in-process scheduler. Every tick it asks the sync
// service to run the selected dealer when that dealer's interval elapsed.
type SyncWorker struct {
	syncService service.SyncService
	interval    time.Duration
	logger      *logger.Logger
}

func NewSyncWorker(syncService service.SyncService, interval time.Duration, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{
		syncService: syncService,
		interval:    interval,
		logger:      logger,
	}
}

// Run ticks immediately and then every interval until ctx is cancelled.
func (w *SyncWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("sync worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.tick(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("sync worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func (w *SyncWorker) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("scheduled sync panicked")
		}
	}()

	resp, err := w.syncService.RunIfDue(ctx)
	switch {
	case errors.Is(err, service.ErrSyncInProgress):
		w.logger.Debug().Msg("scheduled sync skipped, a run is already in progress")
	case errors.Is(err, context.Canceled):
		return
	case err != nil:
		w.logger.Error().Err(err).Msg("scheduled sync failed")
	case resp == nil:
		w.logger.Debug().Msg("no scheduled sync due")
	default:
		w.logger.Info().
			Str("sync_run_id", resp.SyncRunID).
			Str("status", string(resp.Status)).
			Int("created", resp.RecordsCreated).
			Int("updated", resp.RecordsUpdated).
			Int("disabled", resp.RecordsDisabled).
			Int("errors", resp.ErrorCount).
			Msg("scheduled sync finished")
	}
}
