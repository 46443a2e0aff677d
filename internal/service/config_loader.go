// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-sync/internal/crypto"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/store"
	"github.com/MKhiriev/go-inventory-sync/internal/validators"
	"github.com/MKhiriev/go-inventory-sync/models"
)

// configLoader reads a dealer's feed configuration and decrypts its API key.
// It is the only component that ever holds the plaintext key.
type configLoader struct {
	configs         store.DealerConfigRepository
	cipher          crypto.CredentialCipher
	validator       validators.Validator
	defaultPageSize int
}

func NewConfigLoader(configs store.DealerConfigRepository, cipher crypto.CredentialCipher, defaultPageSize int) ConfigLoader {
	return &configLoader{
		configs:         configs,
		cipher:          cipher,
		validator:       validators.NewFeedSettingsValidator(),
		defaultPageSize: defaultPageSize,
	}
}

// Load returns the decrypted settings of dealerID. The enabled flag is
// reported, not enforced: test-only probes are allowed on disabled dealers.
//
// Errors wrap [ErrConfigMissing], [ErrConfigIncomplete] or
// [ErrCredentialDecrypt]; store failures are returned as is.
func (l *configLoader) Load(ctx context.Context, dealerID string) (models.FeedSettings, error) {
	log := logger.FromContext(ctx)

	cfg, err := l.configs.GetByDealerID(ctx, dealerID)
	if errors.Is(err, store.ErrDealerConfigNotFound) {
		return models.FeedSettings{}, fmt.Errorf("%w: dealer %q", ErrConfigMissing, dealerID)
	}
	if err != nil {
		return models.FeedSettings{}, err
	}

	settings := models.FeedSettings{
		DealerID:        cfg.DealerID,
		BaseURL:         cfg.FeedBaseURL,
		PageSize:        cfg.PageSize,
		IsEnabled:       cfg.IsEnabled,
		IntervalMinutes: cfg.IntervalMinutes,
	}
	if settings.PageSize == 0 {
		settings.PageSize = l.defaultPageSize
	}

	err = l.validator.Validate(ctx, settings,
		validators.FieldDealerID,
		validators.FieldFeedBaseURL,
		validators.FieldPageSize,
		validators.FieldSyncInterval,
	)
	if err != nil {
		return models.FeedSettings{}, fmt.Errorf("%w: %w", ErrConfigIncomplete, err)
	}
	if cfg.EncryptedAPIKey == "" {
		return models.FeedSettings{}, fmt.Errorf("%w: %w", ErrConfigIncomplete, validators.ErrEmptyAPIKey)
	}

	apiKey, err := l.cipher.Decrypt(cfg.EncryptedAPIKey)
	if err != nil {
		// the error never carries key material
		log.Error().Err(err).
			Str("func", "configLoader.Load").
			Str("dealer_id", dealerID).
			Msg("failed to decrypt feed credentials")
		return models.FeedSettings{}, fmt.Errorf("%w: %w", ErrCredentialDecrypt, err)
	}
	settings.APIKey = apiKey

	if err = l.validator.Validate(ctx, settings, validators.FieldAPIKey); err != nil {
		return models.FeedSettings{}, fmt.Errorf("%w: %w", ErrConfigIncomplete, err)
	}

	return settings, nil
}
