// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-inventory-sync/internal/adapter"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/service"
	"github.com/MKhiriev/go-inventory-sync/internal/store"
	"github.com/MKhiriev/go-inventory-sync/internal/utils"
	"github.com/MKhiriev/go-inventory-sync/models"
)

// stepRequest labels failures that happen before any run step, e.g. a
// malformed body.
const stepRequest = "request"

// errorStatuses maps sentinels to HTTP statuses. The first match wins, so
// an error wrapping several sentinels is always reported the same way.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrNoCredentials, http.StatusUnauthorized},
	{ErrNoTrigger, http.StatusUnauthorized},
	{ErrInvalidRequestBody, http.StatusBadRequest},
	{ErrInvalidLimit, http.StatusBadRequest},

	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrSyncInProgress, http.StatusConflict},
	{service.ErrRunPanicked, http.StatusInternalServerError},
	{service.ErrCredentialDecrypt, http.StatusInternalServerError},
	{service.ErrConfigMissing, http.StatusBadRequest},
	{service.ErrConfigIncomplete, http.StatusBadRequest},
	{service.ErrSyncDisabled, http.StatusBadRequest},
	{service.ErrNoDealerConfigured, http.StatusBadRequest},
	{service.ErrSyncRunNotFound, http.StatusNotFound},

	{adapter.ErrUpstreamTimeout, http.StatusBadGateway},
	{adapter.ErrUpstreamHTTP, http.StatusBadGateway},
	{adapter.ErrUpstreamMalformed, http.StatusBadGateway},
	{adapter.ErrUpstreamNetwork, http.StatusBadGateway},

	{store.ErrSyncRunFinalized, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// classifyError returns the HTTP status of err and the sentinel it matched.
// Unknown errors are internal.
func classifyError(err error) (int, error) {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status, entry.err
		}
	}
	return http.StatusInternalServerError, nil
}

func statusFromError(err error) int {
	status, _ := classifyError(err)
	return status
}

// writeError renders err as an ErrorResponse. The step and run id come from a
// *service.StepError when err carries one, otherwise from defaultStep.
func writeError(w http.ResponseWriter, r *http.Request, err error, defaultStep string) {
	status, sentinel := classifyError(err)

	resp := models.ErrorResponse{
		Success: false,
		Step:    defaultStep,
		Error:   http.StatusText(status),
		Message: err.Error(),
	}
	if sentinel != nil {
		resp.Error = sentinel.Error()
	}

	var stepErr *service.StepError
	if errors.As(err, &stepErr) {
		resp.Step = string(stepErr.Step)
		resp.SyncRunID = stepErr.SyncRunID
	}

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("step", resp.Step).
		Str("sync_run_id", resp.SyncRunID).
		Int("status", status).
		Msg("request failed")

	utils.WriteJSON(w, resp, status)
}
