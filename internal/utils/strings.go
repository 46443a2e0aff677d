// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"unicode/utf8"
)

// TruncateUTF8 returns at most maxBytes bytes of s cut on a rune boundary.
// Invalid byte sequences are dropped, so the result is always valid UTF-8
// and safe to store in a TEXT column.
func TruncateUTF8(s string, maxBytes int) string {
	if maxBytes < 0 {
		maxBytes = 0
	}
	if len(s) > maxBytes {
		cut := maxBytes
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return strings.ToValidUTF8(s, "")
}
