// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/service"
	"github.com/MKhiriev/go-inventory-sync/internal/utils"
	"github.com/MKhiriev/go-inventory-sync/models"
)

const (
	cronSecretHeader    = "X-Cron-Secret"
	authorizationHeader = "Authorization"
)

// auth is an HTTP middleware that resolves the caller into a
// [models.Trigger].
//
// An unattended scheduler presents the pre-shared "X-Cron-Secret" header; a
// dashboard user presents "Authorization: Bearer <token>". Both are handed to
// [service.TriggerAuthenticator]. On success the trigger is stored in the
// request context via [utils.WithTrigger] and the request logger is enriched
// with the dealer ID and trigger source. Every rejection is rendered as an
// ErrorResponse with step "auth".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		credentials := models.TriggerCredentials{
			CronSecret:   r.Header.Get(cronSecretHeader),
			BearerHeader: r.Header.Get(authorizationHeader),
		}
		if credentials.CronSecret == "" && credentials.BearerHeader == "" {
			writeError(w, r, ErrNoCredentials, string(service.StepAuth))
			return
		}

		ctx := r.Context()
		trigger, err := h.services.TriggerAuthenticator.Authenticate(ctx, credentials)
		if err != nil {
			writeError(w, r, err, string(service.StepAuth))
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("dealer_id", trigger.DealerID).Str("trigger_source", string(trigger.Source))
		})

		ctx = utils.WithTrigger(l.WithContext(ctx), trigger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
