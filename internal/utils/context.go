// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/MKhiriev/go-inventory-sync/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TriggerCtxKey stores the authenticated [models.Trigger] of a request.
var TriggerCtxKey = contextKey("trigger")

// WithTrigger returns a copy of ctx carrying trigger.
func WithTrigger(ctx context.Context, trigger models.Trigger) context.Context {
	return context.WithValue(ctx, TriggerCtxKey, trigger)
}

// GetTriggerFromContext returns the trigger stored by the auth middleware.
func GetTriggerFromContext(ctx context.Context) (models.Trigger, bool) {
	trigger, ok := ctx.Value(TriggerCtxKey).(models.Trigger)
	return trigger, ok
}
