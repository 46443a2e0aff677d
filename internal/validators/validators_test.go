// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-inventory-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestRemoteVehicleValidator(t *testing.T) {
	v := NewRemoteVehicleValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid value", obj: models.RemoteVehicle{VIN: "1HGCM82633A004352"}},
		{name: "valid pointer", obj: &models.RemoteVehicle{VIN: "1HGCM82633A004352"}},
		{name: "empty vin", obj: models.RemoteVehicle{}, wantErr: ErrEmptyVIN},
		{name: "whitespace vin", obj: models.RemoteVehicle{VIN: " \t "}, wantErr: ErrEmptyVIN},
		{name: "explicit field", obj: models.RemoteVehicle{}, fields: []string{FieldVIN}, wantErr: ErrEmptyVIN},
		{name: "unknown field", obj: models.RemoteVehicle{VIN: "X"}, fields: []string{"color"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: models.Vehicle{}, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFeedSettingsValidator(t *testing.T) {
	v := NewFeedSettingsValidator()
	ctx := context.Background()

	valid := func() models.FeedSettings {
		return models.FeedSettings{
			DealerID:        "dealer-1",
			BaseURL:         "https://feed.example.com/api/v1",
			APIKey:          "secret",
			PageSize:        100,
			IntervalMinutes: 60,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*models.FeedSettings)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.FeedSettings) {}},
		{name: "zero page size uses default", mutate: func(s *models.FeedSettings) { s.PageSize = 0 }},
		{name: "no dealer", mutate: func(s *models.FeedSettings) { s.DealerID = "" }, wantErr: ErrEmptyDealerID},
		{name: "no base url", mutate: func(s *models.FeedSettings) { s.BaseURL = "  " }, wantErr: ErrEmptyFeedBaseURL},
		{name: "relative base url", mutate: func(s *models.FeedSettings) { s.BaseURL = "/api/v1" }, wantErr: ErrInvalidFeedBaseURL},
		{name: "ftp base url", mutate: func(s *models.FeedSettings) { s.BaseURL = "ftp://feed.example.com" }, wantErr: ErrInvalidFeedBaseURL},
		{name: "no api key", mutate: func(s *models.FeedSettings) { s.APIKey = "" }, wantErr: ErrEmptyAPIKey},
		{name: "negative page size", mutate: func(s *models.FeedSettings) { s.PageSize = -1 }, wantErr: ErrInvalidPageSize},
		{name: "negative interval", mutate: func(s *models.FeedSettings) { s.IntervalMinutes = -5 }, wantErr: ErrInvalidSyncInterval},
		{name: "field scoping skips api key", mutate: func(s *models.FeedSettings) { s.APIKey = "" }, fields: []string{FieldFeedBaseURL}},
		{name: "unknown field", mutate: func(*models.FeedSettings) {}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := valid()
			tt.mutate(&settings)

			err := v.Validate(ctx, &settings, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, v.Validate(ctx, "settings"), ErrUnsupportedType)
}
