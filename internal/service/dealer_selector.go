// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/store"
)

// firstEnabledDealerSelector serves the single-tenant deployment: unattended
// runs go to the pinned dealer or, if none is pinned, to the first enabled
// configuration ordered by dealer ID.
type firstEnabledDealerSelector struct {
	configs        store.DealerConfigRepository
	pinnedDealerID string
}

func NewDealerSelector(configs store.DealerConfigRepository, pinnedDealerID string) DealerSelector {
	return &firstEnabledDealerSelector{
		configs:        configs,
		pinnedDealerID: pinnedDealerID,
	}
}

func (s *firstEnabledDealerSelector) SelectDealer(ctx context.Context) (string, error) {
	if s.pinnedDealerID != "" {
		return s.pinnedDealerID, nil
	}

	configs, err := s.configs.ListEnabled(ctx)
	if err != nil {
		return "", err
	}
	if len(configs) == 0 {
		return "", ErrNoDealerConfigured
	}
	if len(configs) > 1 {
		logger.FromContext(ctx).Warn().
			Str("func", "firstEnabledDealerSelector.SelectDealer").
			Int("enabled_dealers", len(configs)).
			Str("dealer_id", configs[0].DealerID).
			Msg("more than one dealer is enabled; unattended runs use the first one")
	}

	return configs[0].DealerID, nil
}
