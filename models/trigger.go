// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TriggerCredentials are the raw caller credentials taken from an inbound
// request. At most one of them is expected to be set.
type TriggerCredentials struct {
	CronSecret   string
	BearerHeader string
}

// Trigger is the authenticated origin of a run, consumed by everything
// downstream of the trigger authenticator.
type Trigger struct {
	DealerID  string
	Source    TriggerSource
	InvokedBy *int64
}

// SyncRequest is the optional body of POST /api/inventory/sync.
type SyncRequest struct {
	TestOnly bool `json:"test_only"`
}
