// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/models"
)

const (
	syncRunsTable   = "sync_runs"
	syncErrorsTable = "sync_errors"
)

// finalizeAttempts bounds retries of a finalize transaction that failed with
// a retryable error.
const finalizeAttempts = 3

var syncRunColumns = []string{
	"id", "dealer_id", "status", "trigger_source", "triggered_by",
	"started_at", "completed_at", "duration_ms", "vehicles_processed",
	"records_created", "records_updated", "records_unchanged",
	"records_disabled", "photos_copied", "photos_failed", "photos_cleaned_up",
	"error_count", "failed_step", "error_message",
}

type syncRunRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncRunRepository(db *DB, logger *logger.Logger) SyncRunRepository {
	logger.Debug().Msg("creating sync run repository")
	return &syncRunRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a pending run.
func (r *syncRunRepository) Create(ctx context.Context, run models.SyncRun) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(syncRunsTable).
		Columns("id", "dealer_id", "status", "trigger_source", "triggered_by", "started_at").
		Values(run.ID, run.DealerID, string(run.Status), string(run.TriggerSource), run.TriggeredBy, run.StartedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "syncRunRepository.Create").
			Str("sync_run_id", run.ID).
			Str("dealer_id", run.DealerID).
			Msg("failed to insert sync run")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Finalize writes the terminal state and the errors of a run in one
// transaction. Retryable database errors are retried a few times.
func (r *syncRunRepository) Finalize(ctx context.Context, run models.SyncRun, errs []models.SyncError) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= finalizeAttempts; attempt++ {
		err = r.finalize(ctx, run, errs)
		if err == nil || r.classify(err) != Retryable {
			return err
		}

		log.Warn().Err(err).
			Str("func", "syncRunRepository.Finalize").
			Str("sync_run_id", run.ID).
			Int("attempt", attempt).
			Msg("retrying sync run finalize")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
		}
	}

	return err
}

func (r *syncRunRepository) finalize(ctx context.Context, run models.SyncRun, errs []models.SyncError) error {
	log := logger.FromContext(ctx)

	updateQuery, updateArgs, err := r.builder.
		Update(syncRunsTable).
		SetMap(map[string]any{
			"status":             string(run.Status),
			"completed_at":       run.CompletedAt,
			"duration_ms":        run.DurationMS,
			"vehicles_processed": run.VehiclesProcessed,
			"records_created":    run.RecordsCreated,
			"records_updated":    run.RecordsUpdated,
			"records_unchanged":  run.RecordsUnchanged,
			"records_disabled":   run.RecordsDisabled,
			"photos_copied":      run.PhotosCopied,
			"photos_failed":      run.PhotosFailed,
			"photos_cleaned_up":  run.PhotosCleanedUp,
			"error_count":        run.ErrorCount,
			"failed_step":        run.FailedStep,
			"error_message":      run.ErrorMessage,
		}).
		Where(sq.Eq{"id": run.ID, "completed_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "syncRunRepository.finalize").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "syncRunRepository.finalize").
			Str("sync_run_id", run.ID).
			Msg("failed to update sync run")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSyncRunFinalized
	}

	if len(errs) > 0 {
		insert := r.builder.
			Insert(syncErrorsTable).
			Columns("sync_run_id", "category", "message", "vin", "created_at")
		for _, syncErr := range errs {
			insert = insert.Values(run.ID, string(syncErr.Category), syncErr.Message, syncErr.VIN, timeOrNow(syncErr.CreatedAt))
		}

		insertQuery, insertArgs, buildErr := insert.ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "syncRunRepository.finalize").
				Str("sync_run_id", run.ID).
				Int("errors", len(errs)).
				Msg("failed to insert sync errors")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "syncRunRepository.finalize").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *syncRunRepository) GetByID(ctx context.Context, dealerID, id string) (models.SyncRun, error) {
	query, args, err := r.builder.
		Select(syncRunColumns...).
		From(syncRunsTable).
		Where(sq.Eq{"id": id, "dealer_id": dealerID}).
		ToSql()
	if err != nil {
		return models.SyncRun{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	run, err := scanSyncRun(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncRun{}, ErrSyncRunNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncRunRepository.GetByID").
			Str("sync_run_id", id).
			Msg("failed to get sync run")
		return models.SyncRun{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return run, nil
}

// ListByDealer returns the most recent runs of a dealer, newest first.
func (r *syncRunRepository) ListByDealer(ctx context.Context, dealerID string, limit uint64) ([]models.SyncRun, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(syncRunColumns...).
		From(syncRunsTable).
		Where(sq.Eq{"dealer_id": dealerID}).
		OrderBy("started_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncRunRepository.ListByDealer").
			Str("dealer_id", dealerID).
			Msg("failed to execute query for sync runs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	runs := make([]models.SyncRun, 0, limit)
	for rows.Next() {
		run, scanErr := scanSyncRun(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncRunRepository.ListByDealer").
				Str("dealer_id", dealerID).
				Msg("failed to scan sync run row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return runs, nil
}

func (r *syncRunRepository) LatestByDealer(ctx context.Context, dealerID string) (models.SyncRun, error) {
	runs, err := r.ListByDealer(ctx, dealerID, 1)
	if err != nil {
		return models.SyncRun{}, err
	}
	if len(runs) == 0 {
		return models.SyncRun{}, ErrSyncRunNotFound
	}
	return runs[0], nil
}

func (r *syncRunRepository) ListErrors(ctx context.Context, runID string) ([]models.SyncError, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("id", "sync_run_id", "category", "message", "vin", "created_at").
		From(syncErrorsTable).
		Where(sq.Eq{"sync_run_id": runID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncRunRepository.ListErrors").
			Str("sync_run_id", runID).
			Msg("failed to execute query for sync errors")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	syncErrors := make([]models.SyncError, 0)
	for rows.Next() {
		var (
			syncErr  models.SyncError
			category string
		)
		if err = rows.Scan(&syncErr.ID, &syncErr.SyncRunID, &category, &syncErr.Message, &syncErr.VIN, &syncErr.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		syncErr.Category = models.ErrorCategory(category)
		syncErrors = append(syncErrors, syncErr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return syncErrors, nil
}

func scanSyncRun(row rowScanner) (models.SyncRun, error) {
	var (
		run           models.SyncRun
		status        string
		triggerSource string
	)
	err := row.Scan(
		&run.ID,
		&run.DealerID,
		&status,
		&triggerSource,
		&run.TriggeredBy,
		&run.StartedAt,
		&run.CompletedAt,
		&run.DurationMS,
		&run.VehiclesProcessed,
		&run.RecordsCreated,
		&run.RecordsUpdated,
		&run.RecordsUnchanged,
		&run.RecordsDisabled,
		&run.PhotosCopied,
		&run.PhotosFailed,
		&run.PhotosCleanedUp,
		&run.ErrorCount,
		&run.FailedStep,
		&run.ErrorMessage,
	)
	run.Status = models.SyncStatus(status)
	run.TriggerSource = models.TriggerSource(triggerSource)
	return run, err
}
