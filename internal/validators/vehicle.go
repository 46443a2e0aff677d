// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-inventory-sync/models"
)

// FieldVIN targets the natural key of a feed vehicle.
const FieldVIN = "vin"

// RemoteVehicleValidator checks feed records before they reach the
// reconciliation engine. A record that fails is skipped, never fatal.
type RemoteVehicleValidator struct{}

func NewRemoteVehicleValidator() Validator {
	return &RemoteVehicleValidator{}
}

func (v *RemoteVehicleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RemoteVehicle:
		return v.validateRemoteVehicle(value, fields...)
	case *models.RemoteVehicle:
		return v.validateRemoteVehicle(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RemoteVehicleValidator) validateRemoteVehicle(vehicle models.RemoteVehicle, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVIN}
	}

	for _, f := range fields {
		switch f {
		case FieldVIN:
			if strings.TrimSpace(vehicle.VIN) == "" {
				return ErrEmptyVIN
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
