// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DealerConfig is the stored partner feed configuration of one dealer.
// EncryptedAPIKey is never decrypted outside of the config loader.
type DealerConfig struct {
	DealerID        string     `json:"dealer_id"`
	FeedBaseURL     string     `json:"feed_base_url"`
	EncryptedAPIKey string     `json:"-"`
	IsEnabled       bool       `json:"is_enabled"`
	IntervalMinutes int        `json:"interval_minutes"`
	PageSize        int        `json:"page_size"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// FeedSettings is a resolved, decrypted feed configuration ready for the
// feed client.
type FeedSettings struct {
	DealerID        string
	BaseURL         string
	APIKey          string
	PageSize        int
	IsEnabled       bool
	IntervalMinutes int
}
