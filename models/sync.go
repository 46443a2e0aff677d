// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus is the lifecycle state of a [SyncRun].
type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusPartial SyncStatus = "partial"
	SyncStatusFailure SyncStatus = "failure"
)

// TriggerSource tells who started a run.
type TriggerSource string

const (
	TriggerManual TriggerSource = "manual"
	TriggerCron   TriggerSource = "cron"
)

// ErrorCategory classifies per-record sync errors.
type ErrorCategory string

const (
	// ErrorCategoryValidation is used for feed rows that can never be
	// reconciled, e.g. a missing VIN.
	ErrorCategoryValidation ErrorCategory = "validation"
	// ErrorCategoryDuplicate is used for earlier occurrences of a VIN that
	// appears more than once in one feed pull.
	ErrorCategoryDuplicate ErrorCategory = "duplicate"
	// ErrorCategoryStorage is used when persisting a single vehicle failed.
	ErrorCategoryStorage ErrorCategory = "storage"
	// ErrorCategoryConflict is used when the store rejected a write because
	// of a uniqueness violation.
	ErrorCategoryConflict ErrorCategory = "conflict"
	// ErrorCategorySafety is used when the disable pass was refused by the
	// mass-disable guard.
	ErrorCategorySafety ErrorCategory = "safety"
	// ErrorCategoryInternal is used when reconciling one vehicle panicked.
	ErrorCategoryInternal ErrorCategory = "internal"
)

// SyncRun is the audit record of one sync invocation. It is terminal once
// CompletedAt is set.
type SyncRun struct {
	ID            string        `json:"id"`
	DealerID      string        `json:"dealer_id"`
	Status        SyncStatus    `json:"status"`
	TriggerSource TriggerSource `json:"trigger_source"`
	TriggeredBy   *int64        `json:"triggered_by,omitempty"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DurationMS  int64      `json:"duration_ms"`

	SyncCounts

	ErrorCount   int    `json:"error_count"`
	FailedStep   string `json:"failed_step,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// SyncCounts aggregates the per-run counters.
type SyncCounts struct {
	VehiclesProcessed int `json:"vehicles_processed"`
	RecordsCreated    int `json:"records_created"`
	RecordsUpdated    int `json:"records_updated"`
	RecordsUnchanged  int `json:"records_unchanged"`
	RecordsDisabled   int `json:"records_disabled"`
	PhotosCopied      int `json:"photos_copied"`
	PhotosFailed      int `json:"photos_failed"`
	PhotosCleanedUp   int `json:"photos_cleaned_up"`
}

// SyncError is a non-fatal per-record failure linked to a run.
type SyncError struct {
	ID        int64         `json:"id,omitempty"`
	SyncRunID string        `json:"sync_run_id,omitempty"`
	Category  ErrorCategory `json:"category"`
	Message   string        `json:"message"`
	VIN       string        `json:"vin"`
	CreatedAt *time.Time    `json:"created_at,omitempty"`
}

// SyncRunDetails is a run together with its persisted errors.
type SyncRunDetails struct {
	SyncRun
	Errors []SyncError `json:"errors"`
}

// MirrorResult is the outcome of mirroring the photos of one vehicle. URLs
// has one entry per non-blank remote URL, in feed order.
type MirrorResult struct {
	URLs    []string
	Copied  int
	Skipped int
	Failed  int
}
