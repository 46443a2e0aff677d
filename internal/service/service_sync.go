// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/MKhiriev/go-inventory-sync/internal/adapter"
	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/metrics"
	"github.com/MKhiriev/go-inventory-sync/internal/store"
	"github.com/MKhiriev/go-inventory-sync/models"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 100
)

// idGenerator produces sync run identifiers.
type idGenerator interface {
	Generate() string
}

// dealerLocks rejects a second run for a dealer while one is in flight.
type dealerLocks struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func (l *dealerLocks) tryLock(dealerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active == nil {
		l.active = make(map[string]struct{})
	}
	if _, busy := l.active[dealerID]; busy {
		return false
	}
	l.active[dealerID] = struct{}{}
	return true
}

func (l *dealerLocks) unlock(dealerID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.active, dealerID)
}

// syncService is the concrete implementation of SyncService.
type syncService struct {
	runs       store.SyncRunRepository
	loader     ConfigLoader
	feed       adapter.FeedClient
	reconciler *reconciler
	selector   DealerSelector
	ids        idGenerator
	cfg        config.Sync
	locks      dealerLocks
	now        func() time.Time
	logger     *logger.Logger
}

// SyncServiceDeps groups the collaborators of NewSyncService.
type SyncServiceDeps struct {
	Repositories *store.Repositories
	Loader       ConfigLoader
	Feed         adapter.FeedClient
	Photos       PhotoMirror
	Selector     DealerSelector
	IDs          idGenerator
}

func NewSyncService(deps SyncServiceDeps, cfg config.Sync, logger *logger.Logger) SyncService {
	return &syncService{
		runs:       deps.Repositories.SyncRunRepository,
		loader:     deps.Loader,
		feed:       deps.Feed,
		reconciler: newReconciler(deps.Repositories.VehicleRepository, deps.Photos, cfg.Concurrency, cfg.MaxDisablePercent),
		selector:   deps.Selector,
		ids:        deps.IDs,
		cfg:        cfg,
		now:        time.Now,
		logger:     logger,
	}
}

// Run performs one live sync: fetch every feed page, reconcile the local
// inventory, then close the audit row. The run is detached from ctx
// cancellation once started so a dropped client never leaves half a
// reconciliation behind. A panic after the run row is opened closes the row
// as failure at the step that was executing.
func (s *syncService) Run(ctx context.Context, trigger models.Trigger) (resp models.SyncResponse, err error) {
	if !s.locks.tryLock(trigger.DealerID) {
		metrics.SyncFailuresTotal.WithLabelValues(string(StepLock)).Inc()
		return models.SyncResponse{}, stepError(StepLock, "", ErrSyncInProgress)
	}
	defer s.locks.unlock(trigger.DealerID)

	metrics.SyncInProgress.Inc()
	defer metrics.SyncInProgress.Dec()

	ctx = context.WithoutCancel(ctx)
	started := s.now()

	tracker, err := openRun(ctx, s.runs, s.ids.Generate(), trigger, runTrackerOptions{
		errorCap:           s.cfg.ErrorCap,
		responseErrorLimit: s.cfg.ResponseErrorLimit,
		finalizeTimeout:    s.cfg.FinalizeTimeout,
		now:                s.now,
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("func", "syncService.Run").
			Str("dealer_id", trigger.DealerID).
			Msg("failed to open sync run")
		metrics.SyncFailuresTotal.WithLabelValues(string(StepTracking)).Inc()
		return models.SyncResponse{}, stepError(StepTracking, "", err)
	}

	runLogger := s.logger.With().
		Str("sync_run_id", tracker.ID()).
		Str("dealer_id", trigger.DealerID).
		Str("trigger_source", string(trigger.Source)).
		Logger()
	ctx = runLogger.WithContext(ctx)

	fail := func(step Step, cause error, counts models.SyncCounts) (models.SyncResponse, error) {
		run := tracker.Fail(ctx, step, cause, counts)
		runLogger.Error().Err(cause).Str("step", string(step)).Msg("sync run failed")
		metrics.SyncFailuresTotal.WithLabelValues(string(step)).Inc()
		s.observe(run)
		return models.SyncResponse{}, stepError(step, tracker.ID(), cause)
	}

	current := StepConfig
	defer func() {
		if r := recover(); r != nil {
			runLogger.Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Str("step", string(current)).
				Msg("sync run panicked")
			resp, err = fail(current, fmt.Errorf("%w: %v", ErrRunPanicked, r), models.SyncCounts{})
		}
	}()

	settings, err := s.loader.Load(ctx, trigger.DealerID)
	if err != nil {
		return fail(loadFailureStep(err), err, models.SyncCounts{})
	}
	if !settings.IsEnabled {
		return fail(StepConfig, ErrSyncDisabled, models.SyncCounts{})
	}

	current = StepFetch
	feed, err := s.feed.FetchInventory(ctx, adapter.FeedRequest{
		BaseURL:  settings.BaseURL,
		APIKey:   settings.APIKey,
		PageSize: settings.PageSize,
	})
	if err != nil {
		return fail(StepFetch, err, models.SyncCounts{})
	}
	runLogger.Info().
		Int("vehicles", len(feed.Vehicles)).
		Int("pages", feed.Pages).
		Msg("feed fetched")

	current = StepReconcile
	counts, err := s.reconciler.Reconcile(ctx, tracker, trigger.DealerID, feed.Vehicles)
	if err != nil {
		return fail(StepReconcile, err, counts)
	}

	current = StepFinalize
	run, err := tracker.Finalize(ctx, counts)
	if err != nil {
		runLogger.Error().Err(err).Msg("failed to finalize sync run")
		metrics.SyncFailuresTotal.WithLabelValues(string(StepFinalize)).Inc()
		return models.SyncResponse{}, stepError(StepFinalize, tracker.ID(), err)
	}
	s.observe(run)

	runLogger.Info().
		Str("status", string(run.Status)).
		Int("created", counts.RecordsCreated).
		Int("updated", counts.RecordsUpdated).
		Int("unchanged", counts.RecordsUnchanged).
		Int("disabled", counts.RecordsDisabled).
		Int("errors", run.ErrorCount).
		Dur("took", s.now().Sub(started)).
		Msg("sync run finished")

	return models.SyncResponse{
		Success:          true,
		Status:           run.Status,
		VehiclesSynced:   counts.VehiclesProcessed,
		RecordsCreated:   counts.RecordsCreated,
		RecordsUpdated:   counts.RecordsUpdated,
		RecordsUnchanged: counts.RecordsUnchanged,
		RecordsDisabled:  counts.RecordsDisabled,
		PhotosCopied:     counts.PhotosCopied,
		PhotosFailed:     counts.PhotosFailed,
		PhotosCleanedUp:  counts.PhotosCleanedUp,
		Errors:           tracker.Errors(s.cfg.ResponseErrorLimit),
		ErrorCount:       run.ErrorCount,
		DurationMS:       run.DurationMS,
		SyncRunID:        run.ID,
		TriggerSource:    run.TriggerSource,
		DealerID:         run.DealerID,
	}, nil
}

// loadFailureStep maps a config loader error to the step reported for it.
// Store outages are not configuration problems.
func loadFailureStep(err error) Step {
	switch {
	case errors.Is(err, ErrCredentialDecrypt):
		return StepDecrypt
	case errors.Is(err, ErrConfigMissing), errors.Is(err, ErrConfigIncomplete):
		return StepConfig
	default:
		return StepReconcile
	}
}

func (s *syncService) observe(run models.SyncRun) {
	metrics.SyncRunsTotal.WithLabelValues(string(run.TriggerSource), string(run.Status)).Inc()
	metrics.SyncRunDuration.WithLabelValues(string(run.TriggerSource)).Observe(float64(run.DurationMS) / 1000)

	metrics.SyncRecordsTotal.WithLabelValues("created").Add(float64(run.RecordsCreated))
	metrics.SyncRecordsTotal.WithLabelValues("updated").Add(float64(run.RecordsUpdated))
	metrics.SyncRecordsTotal.WithLabelValues("unchanged").Add(float64(run.RecordsUnchanged))
	metrics.SyncRecordsTotal.WithLabelValues("disabled").Add(float64(run.RecordsDisabled))

	metrics.SyncPhotosTotal.WithLabelValues("copied").Add(float64(run.PhotosCopied))
	metrics.SyncPhotosTotal.WithLabelValues("failed").Add(float64(run.PhotosFailed))
	metrics.SyncPhotosTotal.WithLabelValues("cleaned_up").Add(float64(run.PhotosCleanedUp))
}

// Probe fetches one feed record to check connectivity and credentials.
func (s *syncService) Probe(ctx context.Context, trigger models.Trigger) (models.ProbeResponse, error) {
	settings, err := s.loader.Load(ctx, trigger.DealerID)
	if err != nil {
		return models.ProbeResponse{}, stepError(loadFailureStep(err), "", err)
	}

	probe, err := s.feed.ProbeInventory(ctx, adapter.FeedRequest{
		BaseURL:  settings.BaseURL,
		APIKey:   settings.APIKey,
		PageSize: 1,
	})
	if err != nil {
		return models.ProbeResponse{}, stepError(StepFetch, "", err)
	}

	return models.ProbeResponse{
		Success:      true,
		VehicleCount: probe.Pagination.Total,
		Pagination:   probe.Pagination,
	}, nil
}

// RunIfDue is the entry point of the in-process scheduler.
func (s *syncService) RunIfDue(ctx context.Context) (*models.SyncResponse, error) {
	dealerID, err := s.selector.SelectDealer(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.loader.Load(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	if !settings.IsEnabled {
		return nil, nil
	}

	latest, err := s.runs.LatestByDealer(ctx, dealerID)
	switch {
	case errors.Is(err, store.ErrSyncRunNotFound):
	case err != nil:
		return nil, fmt.Errorf("read latest sync run: %w", err)
	default:
		interval := time.Duration(settings.IntervalMinutes) * time.Minute
		if s.now().Sub(latest.StartedAt) < interval {
			return nil, nil
		}
	}

	resp, err := s.Run(ctx, models.Trigger{DealerID: dealerID, Source: models.TriggerCron})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *syncService) ListRuns(ctx context.Context, dealerID string, limit int) ([]models.SyncRun, error) {
	switch {
	case limit <= 0:
		limit = defaultRunsLimit
	case limit > maxRunsLimit:
		limit = maxRunsLimit
	}

	return s.runs.ListByDealer(ctx, dealerID, uint64(limit))
}

func (s *syncService) GetRun(ctx context.Context, dealerID, runID string) (models.SyncRunDetails, error) {
	run, err := s.runs.GetByID(ctx, dealerID, runID)
	if errors.Is(err, store.ErrSyncRunNotFound) {
		return models.SyncRunDetails{}, ErrSyncRunNotFound
	}
	if err != nil {
		return models.SyncRunDetails{}, err
	}

	errs, err := s.runs.ListErrors(ctx, runID)
	if err != nil {
		return models.SyncRunDetails{}, err
	}

	return models.SyncRunDetails{SyncRun: run, Errors: errs}, nil
}
