// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecrypt is returned for every blob that cannot be opened.
	ErrDecrypt = errors.New("credential decryption failed")
	// ErrEmptyMasterKey is returned when the cipher is built without a secret.
	ErrEmptyMasterKey = errors.New("empty credential master key")
)
