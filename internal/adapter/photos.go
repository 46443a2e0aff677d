// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/utils"
)

type httpPhotoDownloader struct {
	client *utils.HTTPClient

	timeout  time.Duration
	maxBytes int64
}

// NewHTTPPhotoDownloader constructs a resty implementation of
// [PhotoDownloader] bounded by feedCfg.PhotoTimeout and feedCfg.PhotoMaxBytes.
func NewHTTPPhotoDownloader(feedCfg config.Feed) PhotoDownloader {
	client := utils.NewHTTPClient()

	return &httpPhotoDownloader{
		client:   client,
		timeout:  feedCfg.PhotoTimeout,
		maxBytes: feedCfg.PhotoMaxBytes,
	}
}

// Download implements [PhotoDownloader]. The body is streamed and the read
// stops one byte past the limit so oversized photos are never buffered whole.
func (h *httpPhotoDownloader) Download(ctx context.Context, photoURL string) (Photo, error) {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(photoURL)
	if err != nil {
		return Photo{}, mapTransportError(err, photoURL)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() || resp.StatusCode() >= 300 {
		return Photo{}, &UpstreamHTTPError{StatusCode: resp.StatusCode(), URL: redactURL(photoURL)}
	}

	reader := io.Reader(body)
	if h.maxBytes > 0 {
		reader = io.LimitReader(body, h.maxBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return Photo{}, mapTransportError(err, photoURL)
	}
	if h.maxBytes > 0 && int64(len(data)) > h.maxBytes {
		return Photo{}, fmt.Errorf("%w: more than %d bytes", ErrPhotoTooLarge, h.maxBytes)
	}
	if len(data) == 0 {
		return Photo{}, ErrPhotoEmpty
	}

	return Photo{Data: data, ContentType: resp.Header().Get("Content-Type")}, nil
}
