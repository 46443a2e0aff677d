// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/utils"
	"github.com/MKhiriev/go-inventory-sync/models"
)

const (
	apiKeyHeader = "X-API-Key"

	// maxFeedPages stops a feed whose pagination never terminates.
	maxFeedPages = 10_000
)

type httpFeedClient struct {
	client *utils.HTTPClient

	pageSize     int
	pageTimeout  time.Duration
	probeTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPFeedClient constructs a resty implementation of [FeedClient].
// Retries are disabled: a failed page fails the run and the run is cheap to
// trigger again.
func NewHTTPFeedClient(feedCfg config.Feed, logger *logger.Logger) FeedClient {
	client := utils.NewHTTPClient()
	client.SetHeader("Accept", "application/json")

	return &httpFeedClient{
		client:       client,
		pageSize:     feedCfg.PageSize,
		pageTimeout:  feedCfg.PageTimeout,
		probeTimeout: feedCfg.ProbeTimeout,
		logger:       logger,
	}
}

// FetchInventory implements [FeedClient]. Pages are requested newest first
// (sort_by=updated_at, sort_order=desc) and concatenated in the order
// received. The loop stops once page >= total_pages; an empty page before that
// is malformed, since a truncated feed would disable the vehicles it lost.
func (h *httpFeedClient) FetchInventory(ctx context.Context, req FeedRequest) (models.FeedResult, error) {
	limit := req.PageSize
	if limit <= 0 {
		limit = h.pageSize
	}

	var result models.FeedResult
	for page := 1; ; page++ {
		if page > maxFeedPages {
			return models.FeedResult{}, fmt.Errorf("%w: pagination did not terminate after %d pages", ErrUpstreamMalformed, maxFeedPages)
		}

		feedPage, err := h.getPage(ctx, req, limit, page, h.pageTimeout)
		if err != nil {
			h.logger.Err(err).Str("func", "httpFeedClient.FetchInventory").Int("page", page).Msg("error fetching feed page")
			return models.FeedResult{}, err
		}

		result.Vehicles = append(result.Vehicles, feedPage.Vehicles...)
		result.Pagination = feedPage.Pagination
		result.Pages = page

		h.logger.Debug().
			Str("func", "httpFeedClient.FetchInventory").
			Int("page", page).
			Int("total_pages", feedPage.Pagination.TotalPages).
			Int("vehicles", len(feedPage.Vehicles)).
			Msg("feed page fetched")

		if page >= feedPage.Pagination.TotalPages {
			break
		}
		if len(feedPage.Vehicles) == 0 {
			return models.FeedResult{}, fmt.Errorf("%w: page %d of %d is empty", ErrUpstreamMalformed, page, feedPage.Pagination.TotalPages)
		}
	}

	return result, nil
}

// ProbeInventory implements [FeedClient].
func (h *httpFeedClient) ProbeInventory(ctx context.Context, req FeedRequest) (models.FeedProbe, error) {
	feedPage, err := h.getPage(ctx, req, 1, 1, h.probeTimeout)
	if err != nil {
		h.logger.Err(err).Str("func", "httpFeedClient.ProbeInventory").Msg("error probing feed")
		return models.FeedProbe{}, err
	}

	return models.FeedProbe{Pagination: feedPage.Pagination, Sample: feedPage.Vehicles}, nil
}

func (h *httpFeedClient) getPage(ctx context.Context, req FeedRequest, limit, page int, timeout time.Duration) (models.FeedPage, error) {
	pageURL, err := inventoryURL(req.BaseURL, limit, page)
	if err != nil {
		return models.FeedPage{}, err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, req.APIKey).
		Get(pageURL)
	if err != nil {
		return models.FeedPage{}, mapTransportError(err, pageURL)
	}
	if err = mapHTTPError(resp, pageURL); err != nil {
		return models.FeedPage{}, err
	}

	var feedPage models.FeedPage
	if err = json.Unmarshal(resp.Body(), &feedPage); err != nil {
		return models.FeedPage{}, fmt.Errorf("%w: page %d: %w", ErrUpstreamMalformed, page, err)
	}

	return feedPage, nil
}

// inventoryURL appends /inventory and the paging parameters to base while
// keeping any query parameters base already carries.
func inventoryURL(base string, limit, page int) (string, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: invalid feed base url %q", ErrUpstreamNetwork, redactURL(base))
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/inventory"

	query := u.Query()
	query.Set("limit", strconv.Itoa(limit))
	query.Set("page", strconv.Itoa(page))
	query.Set("sort_by", "updated_at")
	query.Set("sort_order", "desc")
	u.RawQuery = query.Encode()

	return u.String(), nil
}
