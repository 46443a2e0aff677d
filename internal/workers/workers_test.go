// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/mock"
	"github.com/MKhiriev/go-inventory-sync/internal/service"
	"github.com/MKhiriev/go-inventory-sync/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
}

// blockingWorker returns only when ctx is cancelled.
type blockingWorker struct {
	stopped atomic.Bool
}

func (b *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	b.stopped.Store(true)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestWorkers_Run_WaitsForCancellation(t *testing.T) {
	b := &blockingWorker{}
	ws := &Workers{workers: []Worker{b, &mockWorker{}}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Run returned before the context was cancelled")
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	<-done
	assert.True(t, b.stopped.Load())
}

func TestNewWorkers(t *testing.T) {
	services := &service.Services{}

	assert.Empty(t, NewWorkers(services, config.Workers{}, logger.Nop()).workers)
	assert.Len(t, NewWorkers(services, config.Workers{SyncInterval: time.Minute}, logger.Nop()).workers, 1)
}

func TestSyncWorker_TicksUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncService := mock.NewMockSyncService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	syncService.EXPECT().RunIfDue(gomock.Any()).DoAndReturn(func(context.Context) (*models.SyncResponse, error) {
		switch calls.Add(1) {
		case 1:
			return nil, nil
		case 2:
			return nil, service.ErrSyncInProgress
		case 3:
			return nil, errors.New("feed down")
		default:
			cancel()
			return &models.SyncResponse{Success: true, SyncRunID: "run-1", Status: models.SyncStatusSuccess}, nil
		}
	}).MinTimes(4)

	done := make(chan struct{})
	go func() {
		NewSyncWorker(syncService, 5*time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sync worker did not stop")
	}
	require.GreaterOrEqual(t, calls.Load(), int32(4))
}

func TestSyncWorker_FirstTickIsImmediate(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncService := mock.NewMockSyncService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	syncService.EXPECT().RunIfDue(gomock.Any()).DoAndReturn(func(context.Context) (*models.SyncResponse, error) {
		cancel()
		return nil, context.Canceled
	}).Times(1)

	// an hour-long interval would time the test out if the first tick waited
	NewSyncWorker(syncService, time.Hour, logger.Nop()).Run(ctx)
}

func TestSyncWorker_SurvivesPanickingRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncService := mock.NewMockSyncService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	syncService.EXPECT().RunIfDue(gomock.Any()).DoAndReturn(func(context.Context) (*models.SyncResponse, error) {
		if calls.Add(1) == 1 {
			panic("selector exploded")
		}
		cancel()
		return nil, nil
	}).MinTimes(2)

	done := make(chan struct{})
	go func() {
		NewSyncWorker(syncService, 5*time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sync worker did not stop after a panicking tick")
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}
