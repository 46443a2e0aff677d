// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService runs and reports inventory syncs for one dealer at a time.
type SyncService interface {
	// Run performs a live sync for trigger.DealerID. Fatal failures are
	// returned as *StepError.
	Run(ctx context.Context, trigger models.Trigger) (models.SyncResponse, error)

	// Probe fetches a single feed record to verify connectivity. It opens no
	// run and changes no local state.
	Probe(ctx context.Context, trigger models.Trigger) (models.ProbeResponse, error)

	// RunIfDue runs an unattended sync for the selected dealer when its
	// configured interval has elapsed since the latest run. It returns nil
	// when no run was due.
	RunIfDue(ctx context.Context) (*models.SyncResponse, error)

	ListRuns(ctx context.Context, dealerID string, limit int) ([]models.SyncRun, error)
	GetRun(ctx context.Context, dealerID, runID string) (models.SyncRunDetails, error)
}

// TriggerAuthenticator turns raw request credentials into a trigger.
type TriggerAuthenticator interface {
	Authenticate(ctx context.Context, credentials models.TriggerCredentials) (models.Trigger, error)
}

// DealerSelector picks the dealer an unattended trigger runs against.
type DealerSelector interface {
	SelectDealer(ctx context.Context) (string, error)
}

// ConfigLoader resolves the decrypted feed settings of a dealer.
type ConfigLoader interface {
	Load(ctx context.Context, dealerID string) (models.FeedSettings, error)
}

// PhotoMirror copies vehicle photos into dealer-scoped object storage.
// Failures never surface as errors: a photo that cannot be mirrored keeps
// its remote URL.
type PhotoMirror interface {
	Mirror(ctx context.Context, dealerID, vin string, remoteURLs []string) models.MirrorResult
	Cleanup(ctx context.Context, dealerID string, vins []string) int
}

// ErrorRecorder collects per-record errors of a run.
type ErrorRecorder interface {
	RecordError(syncErr models.SyncError)
}
