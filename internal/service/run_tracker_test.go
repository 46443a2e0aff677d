package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-inventory-sync/internal/store"
	"github.com/MKhiriev/go-inventory-sync/models"
)

func fixedClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(step)
		return t
	}
}

func TestRunTracker_OpenCreatesPendingRun(t *testing.T) {
	repo := newMemSyncRunRepo()
	start := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	tracker, err := openRun(context.Background(), repo, "run-x", manualTrigger(), runTrackerOptions{
		errorCap: 10,
		now:      fixedClock(start, time.Second),
	})
	require.NoError(t, err)

	run := repo.get("run-x")
	assert.Equal(t, "run-x", tracker.ID())
	assert.Equal(t, models.SyncStatusPending, run.Status)
	assert.Equal(t, testDealer, run.DealerID)
	assert.Equal(t, models.TriggerManual, run.TriggerSource)
	assert.Equal(t, start, run.StartedAt)
	assert.Nil(t, run.CompletedAt)
}

func TestRunTracker_FinalizeStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := newMemSyncRunRepo()
		tracker, err := openRun(context.Background(), repo, "r", manualTrigger(), runTrackerOptions{errorCap: 10})
		require.NoError(t, err)

		run, err := tracker.Finalize(context.Background(), models.SyncCounts{RecordsCreated: 2})
		require.NoError(t, err)
		assert.Equal(t, models.SyncStatusSuccess, run.Status)
		assert.Equal(t, 2, repo.get("r").RecordsCreated)
	})

	t.Run("partial", func(t *testing.T) {
		repo := newMemSyncRunRepo()
		tracker, err := openRun(context.Background(), repo, "r", manualTrigger(), runTrackerOptions{errorCap: 10})
		require.NoError(t, err)

		tracker.RecordError(models.SyncError{Category: models.ErrorCategoryValidation, Message: "no vin"})
		run, err := tracker.Finalize(context.Background(), models.SyncCounts{})
		require.NoError(t, err)
		assert.Equal(t, models.SyncStatusPartial, run.Status)
		assert.Equal(t, 1, run.ErrorCount)
	})
}

func TestRunTracker_DurationFromClock(t *testing.T) {
	repo := newMemSyncRunRepo()
	start := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	tracker, err := openRun(context.Background(), repo, "r", manualTrigger(), runTrackerOptions{
		now: fixedClock(start, 1500*time.Millisecond),
	})
	require.NoError(t, err)

	run, err := tracker.Finalize(context.Background(), models.SyncCounts{})
	require.NoError(t, err)
	assert.Equal(t, int64(1500), run.DurationMS)
}

func TestRunTracker_ErrorCaps(t *testing.T) {
	repo := newMemSyncRunRepo()
	tracker, err := openRun(context.Background(), repo, "r", manualTrigger(), runTrackerOptions{
		errorCap:           2,
		responseErrorLimit: 3,
	})
	require.NoError(t, err)

	for range 5 {
		tracker.RecordError(models.SyncError{Category: models.ErrorCategoryStorage, Message: "boom"})
	}

	assert.Equal(t, 5, tracker.ErrorCount())
	assert.Len(t, tracker.Errors(3), 3)
	assert.Len(t, tracker.Errors(100), 3)

	_, err = tracker.Finalize(context.Background(), models.SyncCounts{})
	require.NoError(t, err)

	persisted := repo.persistedErrors("r")
	require.Len(t, persisted, 2)
	assert.Equal(t, "r", persisted[0].SyncRunID)
	assert.NotNil(t, persisted[0].CreatedAt)
	assert.Equal(t, 5, repo.get("r").ErrorCount)
}

func TestRunTracker_ClosesOnce(t *testing.T) {
	repo := newMemSyncRunRepo()
	tracker, err := openRun(context.Background(), repo, "r", manualTrigger(), runTrackerOptions{})
	require.NoError(t, err)

	_, err = tracker.Finalize(context.Background(), models.SyncCounts{})
	require.NoError(t, err)

	_, err = tracker.Finalize(context.Background(), models.SyncCounts{})
	assert.ErrorIs(t, err, store.ErrSyncRunFinalized)

	run := tracker.Fail(context.Background(), StepFetch, errors.New("late"), models.SyncCounts{})
	assert.Equal(t, models.SyncStatusSuccess, run.Status)
	assert.Equal(t, models.SyncStatusSuccess, repo.get("r").Status)
}

func TestRunTracker_FailTruncatesMessage(t *testing.T) {
	repo := newMemSyncRunRepo()
	tracker, err := openRun(context.Background(), repo, "r", manualTrigger(), runTrackerOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run := tracker.Fail(ctx, StepFetch, errors.New(strings.Repeat("x", 5000)), models.SyncCounts{})

	assert.Equal(t, models.SyncStatusFailure, run.Status)
	assert.Len(t, run.ErrorMessage, maxErrorMessage)
	stored := repo.get("r")
	assert.Equal(t, models.SyncStatusFailure, stored.Status)
	assert.Equal(t, string(StepFetch), stored.FailedStep)
}

func TestRunTracker_FailKeepsMessageValidUTF8(t *testing.T) {
	repo := newMemSyncRunRepo()
	tracker, err := openRun(context.Background(), repo, "r", manualTrigger(), runTrackerOptions{})
	require.NoError(t, err)

	run := tracker.Fail(context.Background(), StepFetch, errors.New("x"+strings.Repeat("é", 800)), models.SyncCounts{})

	assert.True(t, utf8.ValidString(run.ErrorMessage))
	assert.LessOrEqual(t, len(run.ErrorMessage), maxErrorMessage)
	assert.True(t, utf8.ValidString(repo.get("r").ErrorMessage))
}

func TestRunTracker_OpenFailure(t *testing.T) {
	repo := newMemSyncRunRepo()
	repo.failCreate = errors.New("db down")

	_, err := openRun(context.Background(), repo, "r", manualTrigger(), runTrackerOptions{})
	assert.Error(t, err)
}
