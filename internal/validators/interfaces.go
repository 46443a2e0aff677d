// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the admission rules applied to untrusted input
// before it reaches the reconciliation engine: feed vehicles and resolved
// dealer feed settings.
package validators

import "context"

// Validator checks one value. fields optionally restricts the check to the
// named fields; an empty list validates everything.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
