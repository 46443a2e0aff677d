// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP collaborators of the inventory
// sync engine: the partner feed client and the photo downloader.
//
// Both are built on resty. Transport failures are mapped by mapHTTPError and
// mapTransportError onto the sentinels in errors.go so the service layer can
// use [errors.Is] without knowing anything about HTTP (e.g. [ErrUpstreamHTTP]
// for a non-2xx page, [ErrUpstreamTimeout] for a page that ran out of time).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-inventory-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FeedRequest addresses one dealer's inventory on the partner API.
type FeedRequest struct {
	BaseURL  string
	APIKey   string
	PageSize int
}

// FeedClient reads the paginated partner inventory feed.
type FeedClient interface {
	// FetchInventory walks every page until the last one reported by the
	// feed and returns all vehicles in feed order. Any failed page fails the
	// whole call; no partial result is ever returned.
	FetchInventory(ctx context.Context, req FeedRequest) (models.FeedResult, error)

	// ProbeInventory performs a single limit=1 request and returns the
	// pagination block, i.e. the total inventory count.
	ProbeInventory(ctx context.Context, req FeedRequest) (models.FeedProbe, error)
}

// Photo is a downloaded image body.
type Photo struct {
	Data        []byte
	ContentType string
}

// PhotoDownloader fetches remote photo bytes with a bounded size and time.
type PhotoDownloader interface {
	Download(ctx context.Context, url string) (Photo, error)
}
