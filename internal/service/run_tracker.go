// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/store"
	"github.com/MKhiriev/go-inventory-sync/internal/utils"
	"github.com/MKhiriev/go-inventory-sync/models"
)

const (
	// maxErrorMessage bounds the failure message stored on a run.
	maxErrorMessage = 1000

	defaultFinalizeTimeout = 10 * time.Second
)

// runTracker owns the audit row of one live run from Open to Finalize or
// Fail. RecordError is safe for concurrent use by reconciliation workers.
type runTracker struct {
	repo            store.SyncRunRepository
	errorCap        int
	keep            int
	finalizeTimeout time.Duration
	now             func() time.Time

	mu         sync.Mutex
	run        models.SyncRun
	errs       []models.SyncError
	errorCount int
	closed     bool
}

type runTrackerOptions struct {
	errorCap           int
	responseErrorLimit int
	finalizeTimeout    time.Duration
	now                func() time.Time
}

// openRun inserts a pending run row before any remote call is made, so even a
// crashed run leaves a start time behind.
func openRun(ctx context.Context, repo store.SyncRunRepository, runID string, trigger models.Trigger, opts runTrackerOptions) (*runTracker, error) {
	if opts.finalizeTimeout <= 0 {
		opts.finalizeTimeout = defaultFinalizeTimeout
	}
	if opts.now == nil {
		opts.now = time.Now
	}

	t := &runTracker{
		repo:            repo,
		errorCap:        opts.errorCap,
		keep:            max(opts.errorCap, opts.responseErrorLimit),
		finalizeTimeout: opts.finalizeTimeout,
		now:             opts.now,
		run:             models.SyncRun{
			ID:            runID,
			DealerID:      trigger.DealerID,
			Status:        models.SyncStatusPending,
			TriggerSource: trigger.Source,
			TriggeredBy:   trigger.InvokedBy,
			StartedAt:     opts.now().UTC(),
		},
	}

	if err := repo.Create(ctx, t.run); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *runTracker) ID() string {
	return t.run.ID
}

// RecordError counts every error and keeps the first few for persistence and
// for the response.
func (t *runTracker) RecordError(syncErr models.SyncError) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.errorCount++
	if len(t.errs) < t.keep {
		syncErr.SyncRunID = t.run.ID
		if syncErr.CreatedAt == nil {
			now := t.now().UTC()
			syncErr.CreatedAt = &now
		}
		t.errs = append(t.errs, syncErr)
	}
}

// Errors returns up to limit of the recorded errors in recording order.
func (t *runTracker) Errors(limit int) []models.SyncError {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := min(limit, len(t.errs))
	out := make([]models.SyncError, n)
	copy(out, t.errs[:n])
	return out
}

func (t *runTracker) ErrorCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errorCount
}

// Finalize closes the run as success, or partial when any per-record error
// was recorded.
func (t *runTracker) Finalize(ctx context.Context, counts models.SyncCounts) (models.SyncRun, error) {
	t.mu.Lock()
	status := models.SyncStatusSuccess
	if t.errorCount > 0 {
		status = models.SyncStatusPartial
	}
	t.mu.Unlock()

	return t.close(ctx, status, counts, "", "")
}

// Fail closes the run as failure with whatever time elapsed. The write runs on
// a context detached from ctx so it survives a cancelled request.
func (t *runTracker) Fail(ctx context.Context, step Step, cause error, counts models.SyncCounts) models.SyncRun {
	message := utils.TruncateUTF8(cause.Error(), maxErrorMessage)

	run, err := t.close(ctx, models.SyncStatusFailure, counts, step, message)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Str("func", "runTracker.Fail").
			Str("sync_run_id", t.run.ID).
			Msg("failed to finalize failed sync run")
	}
	return run
}

func (t *runTracker) close(ctx context.Context, status models.SyncStatus, counts models.SyncCounts, step Step, message string) (models.SyncRun, error) {
	t.mu.Lock()
	if t.closed {
		run := t.run
		t.mu.Unlock()
		return run, store.ErrSyncRunFinalized
	}
	t.closed = true

	completed := t.now().UTC()
	t.run.Status = status
	t.run.CompletedAt = &completed
	t.run.DurationMS = completed.Sub(t.run.StartedAt).Milliseconds()
	t.run.SyncCounts = counts
	t.run.ErrorCount = t.errorCount
	t.run.FailedStep = string(step)
	t.run.ErrorMessage = message

	run := t.run
	persisted := make([]models.SyncError, min(t.errorCap, len(t.errs)))
	copy(persisted, t.errs)
	t.mu.Unlock()

	finalizeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.finalizeTimeout)
	defer cancel()

	if err := t.repo.Finalize(finalizeCtx, run, persisted); err != nil {
		return run, err
	}

	return run, nil
}
