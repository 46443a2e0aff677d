// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-inventory-sync/models"
)

// Field name constants accepted by [FeedSettingsValidator].
const (
	FieldDealerID     = "dealer_id"
	FieldFeedBaseURL  = "feed_base_url"
	FieldAPIKey       = "api_key"
	FieldPageSize     = "page_size"
	FieldSyncInterval = "interval_minutes"
)

// FeedSettingsValidator checks a decrypted feed configuration before the feed
// client is called with it.
type FeedSettingsValidator struct{}

func NewFeedSettingsValidator() Validator {
	return &FeedSettingsValidator{}
}

func (v *FeedSettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FeedSettings:
		return v.validateFeedSettings(value, fields...)
	case *models.FeedSettings:
		return v.validateFeedSettings(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FeedSettingsValidator) validateFeedSettings(settings models.FeedSettings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDealerID, FieldFeedBaseURL, FieldAPIKey, FieldPageSize, FieldSyncInterval}
	}

	for _, f := range fields {
		switch f {
		case FieldDealerID:
			if strings.TrimSpace(settings.DealerID) == "" {
				return ErrEmptyDealerID
			}
		case FieldFeedBaseURL:
			if strings.TrimSpace(settings.BaseURL) == "" {
				return ErrEmptyFeedBaseURL
			}
			u, err := url.Parse(settings.BaseURL)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return ErrInvalidFeedBaseURL
			}
		case FieldAPIKey:
			if strings.TrimSpace(settings.APIKey) == "" {
				return ErrEmptyAPIKey
			}
		case FieldPageSize:
			if settings.PageSize < 0 {
				return ErrInvalidPageSize
			}
		case FieldSyncInterval:
			if settings.IntervalMinutes < 0 {
				return ErrInvalidSyncInterval
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
