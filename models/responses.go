// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncResponse is returned by a live sync run.
type SyncResponse struct {
	Success          bool          `json:"success"`
	Status           SyncStatus    `json:"status"`
	VehiclesSynced   int           `json:"vehicles_synced"`
	RecordsCreated   int           `json:"records_created"`
	RecordsUpdated   int           `json:"records_updated"`
	RecordsUnchanged int           `json:"records_unchanged"`
	RecordsDisabled  int           `json:"records_disabled"`
	PhotosCopied     int           `json:"photos_copied"`
	PhotosFailed     int           `json:"photos_failed"`
	PhotosCleanedUp  int           `json:"photos_cleaned_up"`
	Errors           []SyncError   `json:"errors"`
	ErrorCount       int           `json:"error_count"`
	DurationMS       int64         `json:"duration_ms"`
	SyncRunID        string        `json:"sync_run_id"`
	TriggerSource    TriggerSource `json:"trigger_source"`
	DealerID         string        `json:"dealer_id"`
}

// ProbeResponse is returned when the request asked for a test-only run.
type ProbeResponse struct {
	Success      bool       `json:"success"`
	VehicleCount int        `json:"vehicle_count"`
	Pagination   Pagination `json:"pagination"`
}

// ErrorResponse is the body of every failed sync request. Step tells the
// operator which stage failed so config, upstream and key-rotation problems
// are never collapsed into one message.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Step      string `json:"step"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	SyncRunID string `json:"sync_run_id,omitempty"`
}

// SyncRunsResponse lists recent runs of a dealer.
type SyncRunsResponse struct {
	Runs   []SyncRun `json:"runs"`
	Length int       `json:"length"`
}
