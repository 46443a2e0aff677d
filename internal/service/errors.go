// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")

	ErrConfigMissing      = errors.New("dealer feed configuration is missing")
	ErrConfigIncomplete   = errors.New("dealer feed configuration is incomplete")
	ErrSyncDisabled       = errors.New("inventory sync is disabled for this dealer")
	ErrNoDealerConfigured = errors.New("no enabled dealer feed configuration found")

	ErrCredentialDecrypt = errors.New("failed to decrypt feed credentials")

	ErrSyncInProgress  = errors.New("inventory sync is already running for this dealer")
	ErrSyncRunNotFound = errors.New("sync run was not found")
	ErrRunPanicked     = errors.New("sync run panicked")
)

// Step names the stage of a run that failed. It is reported to callers and
// stored on the failed run.
type Step string

const (
	StepAuth      Step = "auth"
	StepLock      Step = "lock"
	StepTracking  Step = "tracking"
	StepConfig    Step = "config"
	StepDecrypt   Step = "decrypt"
	StepFetch     Step = "fetch"
	StepReconcile Step = "reconcile"
	StepFinalize  Step = "finalize"
)

// StepError is a fatal run error annotated with the failing step and, when a
// run row was already opened, its ID.
type StepError struct {
	Step      Step
	SyncRunID string
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepError(step Step, runID string, err error) error {
	return &StepError{Step: step, SyncRunID: runID, Err: err}
}
