// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/utils"
	"github.com/MKhiriev/go-inventory-sync/models"
)

// syncInventory runs a live sync, or a connectivity probe when the body asks
// for {"test_only": true}. The body is optional.
func (h *Handler) syncInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	trigger, found := utils.GetTriggerFromContext(ctx)
	if !found {
		writeError(w, r, ErrNoTrigger, stepRequest)
		return
	}

	var syncRequest models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&syncRequest); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err), stepRequest)
		return
	}

	if syncRequest.TestOnly {
		probe, err := h.services.SyncService.Probe(ctx, trigger)
		if err != nil {
			writeError(w, r, err, stepRequest)
			return
		}
		log.Info().Int("vehicle_count", probe.VehicleCount).Msg("feed probe succeeded")
		utils.WriteJSON(w, probe, http.StatusOK)
		return
	}

	response, err := h.services.SyncService.Run(ctx, trigger)
	if err != nil {
		writeError(w, r, err, stepRequest)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) listSyncRuns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	trigger, found := utils.GetTriggerFromContext(ctx)
	if !found {
		writeError(w, r, ErrNoTrigger, stepRequest)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, r, fmt.Errorf("%w: %q", ErrInvalidLimit, raw), stepRequest)
			return
		}
		limit = parsed
	}

	runs, err := h.services.SyncService.ListRuns(ctx, trigger.DealerID, limit)
	if err != nil {
		writeError(w, r, err, stepRequest)
		return
	}
	if runs == nil {
		runs = []models.SyncRun{}
	}

	utils.WriteJSON(w, models.SyncRunsResponse{Runs: runs, Length: len(runs)}, http.StatusOK)
}

func (h *Handler) getSyncRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	trigger, found := utils.GetTriggerFromContext(ctx)
	if !found {
		writeError(w, r, ErrNoTrigger, stepRequest)
		return
	}

	details, err := h.services.SyncService.GetRun(ctx, trigger.DealerID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, stepRequest)
		return
	}
	if details.Errors == nil {
		details.Errors = []models.SyncError{}
	}

	utils.WriteJSON(w, details, http.StatusOK)
}
