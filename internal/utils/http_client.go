// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the sync engine to the partner feed and photo hosts.
const UserAgent = "go-inventory-sync"

// HTTPClient wraps a resty client shared by the outbound adapters.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that never retries on its own.
// A failed page fails the run and a failed photo keeps its remote URL, so
// the next trigger is the retry.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}
