package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureAnnotations_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FeatureAnnotations
		wantErr bool
	}{
		{
			name:  "object",
			input: `{"confirmed":["Sunroof"],"suggested":["Heated seats"]}`,
			want:  FeatureAnnotations{Confirmed: []string{"Sunroof"}, Suggested: []string{"Heated seats"}},
		},
		{
			name:  "flat list is confirmed",
			input: `["Sunroof","Heated seats"]`,
			want:  FeatureAnnotations{Confirmed: []string{"Sunroof", "Heated seats"}},
		},
		{name: "null", input: `null`, want: FeatureAnnotations{}},
		{name: "string", input: `"Sunroof"`, wantErr: true},
		{name: "bad list", input: `[1,2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FeatureAnnotations
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemoteVehicle_DecodesBothFeatureShapes(t *testing.T) {
	var feed []RemoteVehicle
	err := json.Unmarshal([]byte(`[
		{"id":"a","vin":"V1","ai_features":["Sunroof"]},
		{"id":"b","vin":"V2","ai_features":{"confirmed":[],"suggested":["Tow hitch"]}}
	]`), &feed)

	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, []string{"Sunroof"}, feed[0].AIFeatures.Confirmed)
	assert.Equal(t, []string{"Tow hitch"}, feed[1].AIFeatures.Suggested)
	assert.True(t, FeatureAnnotations{}.IsEmpty())
	assert.False(t, feed[0].AIFeatures.IsEmpty())
}

func TestVehicle_ManuallyWithdrawn(t *testing.T) {
	bySync := DeactivatedBySync
	byOperator := "operator"

	assert.False(t, Vehicle{IsActive: true}.ManuallyWithdrawn())
	assert.False(t, Vehicle{DeactivatedBy: &bySync}.ManuallyWithdrawn())
	assert.True(t, Vehicle{DeactivatedBy: &byOperator}.ManuallyWithdrawn())
	assert.True(t, Vehicle{}.ManuallyWithdrawn())
}

func TestVehicle_ContentExcludesLifecycle(t *testing.T) {
	v := Vehicle{ID: 7, VIN: "V1", Make: "Honda", ContentHash: "abc", IsActive: true, Status: StatusAvailable}
	c := v.Content()

	assert.Equal(t, "Honda", c.Make)
	assert.True(t, c.IsActive)
	assert.Equal(t, StatusAvailable, c.Status)

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "content_hash")
	assert.NotContains(t, string(b), "last_synced_at")
}
