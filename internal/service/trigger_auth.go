// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/store"
	"github.com/MKhiriev/go-inventory-sync/internal/utils"
	"github.com/MKhiriev/go-inventory-sync/models"
)

// triggerAuthenticator accepts either the pre-shared cron secret or an
// interactive session token. A presented cron secret that does not match is
// rejected outright and never falls through to the token path.
type triggerAuthenticator struct {
	cronSecret   string
	tokenSignKey string
	tokenIssuer  string
	selector     DealerSelector
	users        store.DealerUserRepository
}

func NewTriggerAuthenticator(cfg config.App, selector DealerSelector, users store.DealerUserRepository) TriggerAuthenticator {
	return &triggerAuthenticator{
		cronSecret:   cfg.CronSecret,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		selector:     selector,
		users:        users,
	}
}

func (a *triggerAuthenticator) Authenticate(ctx context.Context, credentials models.TriggerCredentials) (models.Trigger, error) {
	switch {
	case credentials.CronSecret != "":
		return a.authenticateCron(ctx, credentials.CronSecret)
	case credentials.BearerHeader != "":
		return a.authenticateSession(ctx, credentials.BearerHeader)
	default:
		return models.Trigger{}, fmt.Errorf("%w: no credentials presented", ErrUnauthorized)
	}
}

func (a *triggerAuthenticator) authenticateCron(ctx context.Context, secret string) (models.Trigger, error) {
	if a.cronSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(a.cronSecret)) != 1 {
		logger.FromContext(ctx).Warn().
			Str("func", "triggerAuthenticator.authenticateCron").
			Msg("rejected cron trigger with invalid secret")
		return models.Trigger{}, fmt.Errorf("%w: invalid cron secret", ErrUnauthorized)
	}

	dealerID, err := a.selector.SelectDealer(ctx)
	if err != nil {
		return models.Trigger{}, err
	}

	return models.Trigger{DealerID: dealerID, Source: models.TriggerCron}, nil
}

func (a *triggerAuthenticator) authenticateSession(ctx context.Context, header string) (models.Trigger, error) {
	log := logger.FromContext(ctx)

	rawToken, err := utils.ParseBearerToken(header)
	if err != nil {
		return models.Trigger{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	token, err := utils.ValidateAndParseJWTToken(rawToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).
			Str("func", "triggerAuthenticator.authenticateSession").
			Msg("rejected session token")
		return models.Trigger{}, fmt.Errorf("%w: invalid session token", ErrUnauthorized)
	}

	dealerID, err := a.users.FindDealerIDByUserID(ctx, token.UserID)
	if errors.Is(err, store.ErrDealerUserNotFound) {
		return models.Trigger{}, fmt.Errorf("%w: user %d has no dealer", ErrUnauthorized, token.UserID)
	}
	if err != nil {
		return models.Trigger{}, err
	}

	userID := token.UserID
	return models.Trigger{DealerID: dealerID, Source: models.TriggerManual, InvokedBy: &userID}, nil
}
