// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
