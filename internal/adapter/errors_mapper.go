// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-inventory-sync/internal/utils"
)

// redactedQueryKeys are query parameters that may carry a credential.
var redactedQueryKeys = []string{"api_key", "apikey", "key", "token", "access_token"}

func mapHTTPError(resp *resty.Response, requestURL string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := utils.TruncateUTF8(strings.TrimSpace(string(resp.Body())), maxErrorBody)

	return &UpstreamHTTPError{
		StatusCode: resp.StatusCode(),
		Body:       body,
		URL:        redactURL(requestURL),
	}
}

func mapTransportError(err error, requestURL string) error {
	redacted := redactURL(requestURL)

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s", ErrUpstreamTimeout, redacted)
	}

	// url.Error repeats the raw URL; keep only the cause.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	return fmt.Errorf("%w: %s: %w", ErrUpstreamNetwork, redacted, err)
}

// redactURL replaces userinfo and credential-like query values so a URL can
// be logged and returned to callers.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparseable url]"
	}

	if u.User != nil {
		u.User = url.User("REDACTED")
	}

	query := u.Query()
	changed := false
	for key := range query {
		for _, secret := range redactedQueryKeys {
			if strings.EqualFold(key, secret) {
				query.Set(key, "REDACTED")
				changed = true
			}
		}
	}
	if changed {
		u.RawQuery = query.Encode()
	}

	return u.String()
}
