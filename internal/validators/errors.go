// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyVIN            = errors.New("vehicle has no VIN")
	ErrEmptyDealerID       = errors.New("dealer ID is required")
	ErrEmptyFeedBaseURL    = errors.New("feed base URL is required")
	ErrInvalidFeedBaseURL  = errors.New("feed base URL must be an absolute http(s) URL")
	ErrEmptyAPIKey         = errors.New("feed API key is required")
	ErrInvalidPageSize     = errors.New("page size must not be negative")
	ErrInvalidSyncInterval = errors.New("sync interval must not be negative")
)
