// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// SourcePartnerFeed is the provenance tag stored on every row created or
// updated by the inventory sync engine.
const SourcePartnerFeed = "partner-feed"

// DeactivatedBySync marks rows that the sync engine itself switched to
// inactive because their VIN disappeared from the feed. Any other value of
// [Vehicle.DeactivatedBy] on an inactive row means an operator withdrew it.
const DeactivatedBySync = "sync"

// StatusAvailable is the lifecycle label given to newly created rows.
const StatusAvailable = "Available"

// MPG holds fuel economy figures as reported by the feed.
type MPG struct {
	City    *int `json:"city,omitempty"`
	Highway *int `json:"highway,omitempty"`
}

// MediaItem is a structured media entry (photo, video, spin, document)
// attached to a feed vehicle.
type MediaItem struct {
	Type     string `json:"type"`
	URL      string `json:"url"`
	Position int    `json:"position,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

// FeatureAnnotations is the canonical shape of AI-detected vehicle features.
//
// The partner feed sends either an object
//
//	{"confirmed": ["Sunroof"], "suggested": ["Heated seats"]}
//
// or a flat list
//
//	["Sunroof", "Heated seats"]
//
// Both are accepted by UnmarshalJSON; a flat list is treated as confirmed.
type FeatureAnnotations struct {
	Confirmed []string `json:"confirmed"`
	Suggested []string `json:"suggested"`
}

// UnmarshalJSON decodes either accepted wire shape into the canonical one.
func (f *FeatureAnnotations) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = FeatureAnnotations{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var flat []string
		if err := json.Unmarshal(trimmed, &flat); err != nil {
			return fmt.Errorf("decode flat feature list: %w", err)
		}
		*f = FeatureAnnotations{Confirmed: flat}
		return nil
	case '{':
		// alias drops the method set so json does not recurse
		type alias FeatureAnnotations
		var obj alias
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return fmt.Errorf("decode feature annotations: %w", err)
		}
		*f = FeatureAnnotations(obj)
		return nil
	default:
		return fmt.Errorf("unsupported feature annotations shape: %q", trimmed[0])
	}
}

// IsEmpty reports whether there are no annotations at all.
func (f FeatureAnnotations) IsEmpty() bool {
	return len(f.Confirmed) == 0 && len(f.Suggested) == 0
}

// RemoteVehicle is one record of the partner inventory feed. It is read-only
// input for the reconciliation engine.
type RemoteVehicle struct {
	ID            string             `json:"id"`
	VIN           string             `json:"vin"`
	StockNumber   string             `json:"stock_number"`
	Year          int                `json:"year"`
	Make          string             `json:"make"`
	Model         string             `json:"model"`
	Trim          string             `json:"trim"`
	Price         float64            `json:"price"`
	AskingPrice   float64            `json:"asking_price"`
	ComparePrice  *float64           `json:"compare_price,omitempty"`
	Mileage       int                `json:"mileage"`
	MPG           MPG                `json:"mpg"`
	Color         string             `json:"color"`
	InteriorColor string             `json:"interior_color"`
	ExteriorColor string             `json:"exterior_color"`
	Transmission  string             `json:"transmission"`
	Drivetrain    string             `json:"drivetrain"`
	FuelType      string             `json:"fuel_type"`
	BodyStyle     string             `json:"body_style"`
	Engine        string             `json:"engine"`
	Description   string             `json:"description"`
	Photos        []string           `json:"photos"`
	Videos        []string           `json:"videos"`
	Features      []string           `json:"features"`
	AIFeatures    FeatureAnnotations `json:"ai_features"`
	Media         []MediaItem        `json:"media"`
}

// Vehicle is the locally persisted inventory record owned by the sync engine.
// It carries every feed field plus provenance, lifecycle and mirrored images.
type Vehicle struct {
	ID         int64  `json:"id"`
	DealerID   string `json:"dealer_id"`
	Source     string `json:"source"`
	ExternalID string `json:"external_id"`

	VIN           string             `json:"vin"`
	StockNumber   string             `json:"stock_number"`
	Year          int                `json:"year"`
	Make          string             `json:"make"`
	Model         string             `json:"model"`
	Trim          string             `json:"trim"`
	Price         float64            `json:"price"`
	AskingPrice   float64            `json:"asking_price"`
	ComparePrice  *float64           `json:"compare_price,omitempty"`
	Mileage       int                `json:"mileage"`
	MPG           MPG                `json:"mpg"`
	Color         string             `json:"color"`
	InteriorColor string             `json:"interior_color"`
	ExteriorColor string             `json:"exterior_color"`
	Transmission  string             `json:"transmission"`
	Drivetrain    string             `json:"drivetrain"`
	FuelType      string             `json:"fuel_type"`
	BodyStyle     string             `json:"body_style"`
	Engine        string             `json:"engine"`
	Description   string             `json:"description"`
	Images        []string           `json:"images"`
	Videos        []string           `json:"videos"`
	Features      []string           `json:"features"`
	AIFeatures    FeatureAnnotations `json:"ai_features"`
	Media         []MediaItem        `json:"media"`

	IsActive      bool       `json:"is_active"`
	Status        string     `json:"status"`
	DeactivatedBy *string    `json:"deactivated_by,omitempty"`
	ContentHash   string     `json:"content_hash"`
	LastSyncedAt  *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// ManuallyWithdrawn reports whether the row was deactivated outside of the
// sync engine. Such rows must stay inactive when their VIN reappears.
func (v Vehicle) ManuallyWithdrawn() bool {
	if v.IsActive {
		return false
	}
	return v.DeactivatedBy == nil || *v.DeactivatedBy != DeactivatedBySync
}

// FeedContent is the subset of a Vehicle that is owned by the feed. Its JSON
// form is what the content hash is computed over, so lifecycle timestamps
// never cause spurious updates.
type FeedContent struct {
	ExternalID    string             `json:"external_id"`
	StockNumber   string             `json:"stock_number"`
	Year          int                `json:"year"`
	Make          string             `json:"make"`
	Model         string             `json:"model"`
	Trim          string             `json:"trim"`
	Price         float64            `json:"price"`
	AskingPrice   float64            `json:"asking_price"`
	ComparePrice  *float64           `json:"compare_price"`
	Mileage       int                `json:"mileage"`
	MPG           MPG                `json:"mpg"`
	Color         string             `json:"color"`
	InteriorColor string             `json:"interior_color"`
	ExteriorColor string             `json:"exterior_color"`
	Transmission  string             `json:"transmission"`
	Drivetrain    string             `json:"drivetrain"`
	FuelType      string             `json:"fuel_type"`
	BodyStyle     string             `json:"body_style"`
	Engine        string             `json:"engine"`
	Description   string             `json:"description"`
	Images        []string           `json:"images"`
	Videos        []string           `json:"videos"`
	Features      []string           `json:"features"`
	AIFeatures    FeatureAnnotations `json:"ai_features"`
	Media         []MediaItem        `json:"media"`
	IsActive      bool               `json:"is_active"`
	Status        string             `json:"status"`
}

// Content extracts the feed-owned fields of v.
func (v Vehicle) Content() FeedContent {
	return FeedContent{
		ExternalID:    v.ExternalID,
		StockNumber:   v.StockNumber,
		Year:          v.Year,
		Make:          v.Make,
		Model:         v.Model,
		Trim:          v.Trim,
		Price:         v.Price,
		AskingPrice:   v.AskingPrice,
		ComparePrice:  v.ComparePrice,
		Mileage:       v.Mileage,
		MPG:           v.MPG,
		Color:         v.Color,
		InteriorColor: v.InteriorColor,
		ExteriorColor: v.ExteriorColor,
		Transmission:  v.Transmission,
		Drivetrain:    v.Drivetrain,
		FuelType:      v.FuelType,
		BodyStyle:     v.BodyStyle,
		Engine:        v.Engine,
		Description:   v.Description,
		Images:        v.Images,
		Videos:        v.Videos,
		Features:      v.Features,
		AIFeatures:    v.AIFeatures,
		Media:         v.Media,
		IsActive:      v.IsActive,
		Status:        v.Status,
	}
}
