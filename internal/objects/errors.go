// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package objects

import "errors"

var (
	ErrInvalidObjectName = errors.New("invalid object name")
	ErrUnknownBackend    = errors.New("unknown object storage backend")
)
