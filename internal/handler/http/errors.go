// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoCredentials is returned by the auth middleware when neither the
	// "X-Cron-Secret" nor the "Authorization" header is present.
	ErrNoCredentials = errors.New("no trigger credentials presented")

	// ErrNoTrigger means a protected handler ran without the auth middleware.
	ErrNoTrigger = errors.New("no authenticated trigger in request context")

	ErrInvalidRequestBody = errors.New("invalid JSON request body")
	ErrInvalidLimit       = errors.New("limit must be a positive integer")
)
