// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamHTTP matches every [*UpstreamHTTPError].
	ErrUpstreamHTTP = errors.New("upstream returned an error status")
	// ErrUpstreamTimeout is returned when a request ran out of time.
	ErrUpstreamTimeout = errors.New("upstream request timed out")
	// ErrUpstreamNetwork is returned for DNS, connection and TLS failures.
	ErrUpstreamNetwork = errors.New("upstream network error")
	// ErrUpstreamMalformed is returned for a 2xx response that is not valid
	// feed JSON.
	ErrUpstreamMalformed = errors.New("upstream returned a malformed response")

	ErrPhotoTooLarge = errors.New("photo exceeds size limit")
	ErrPhotoEmpty    = errors.New("photo body is empty")
)

// maxErrorBody is how much of an upstream error body is kept.
const maxErrorBody = 512

// UpstreamHTTPError describes a non-2xx response of the partner API. URL is
// already redacted and Body is truncated to 512 bytes.
type UpstreamHTTPError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *UpstreamHTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream returned HTTP %d for %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("upstream returned HTTP %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

// Is lets errors.Is(err, ErrUpstreamHTTP) match any status.
func (e *UpstreamHTTPError) Is(target error) bool {
	return target == ErrUpstreamHTTP
}
