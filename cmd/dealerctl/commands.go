// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"

	"github.com/MKhiriev/go-inventory-sync/internal/crypto"
	"github.com/MKhiriev/go-inventory-sync/internal/store"
	"github.com/MKhiriev/go-inventory-sync/models"
)

const (
	commandConfigure = "configure"
	commandLink      = "link"

	defaultIntervalMinutes = 60
)

var errMissingFlag = errors.New("missing required flag")

func runConfigure(ctx context.Context, repo store.DealerConfigRepository, cipher crypto.CredentialCipher, args []string) error {
	dealerCfg, apiKey, err := parseConfigureArgs(args)
	if err != nil {
		return err
	}

	dealerCfg.EncryptedAPIKey, err = cipher.Encrypt(apiKey)
	if err != nil {
		return fmt.Errorf("encrypt api key: %w", err)
	}

	return repo.Save(ctx, dealerCfg)
}

func parseConfigureArgs(args []string) (models.DealerConfig, string, error) {
	var (
		dealerCfg models.DealerConfig
		apiKey    string
		disabled  bool
	)

	fs := flag.NewFlagSet(commandConfigure, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&dealerCfg.DealerID, "dealer", "", "Dealer ID")
	fs.StringVar(&dealerCfg.FeedBaseURL, "base-url", "", "Partner feed base URL")
	fs.StringVar(&apiKey, "api-key", "", "Partner API key (stored encrypted)")
	fs.IntVar(&dealerCfg.IntervalMinutes, "interval", defaultIntervalMinutes, "Minutes between scheduled syncs")
	fs.IntVar(&dealerCfg.PageSize, "page-size", 0, "Feed page size, 0 keeps the server default")
	fs.BoolVar(&disabled, "disabled", false, "Store the configuration with sync disabled")

	if err := fs.Parse(args); err != nil {
		return models.DealerConfig{}, "", fmt.Errorf("parse %s flags: %w", commandConfigure, err)
	}

	switch {
	case dealerCfg.DealerID == "":
		return models.DealerConfig{}, "", fmt.Errorf("%w: -dealer", errMissingFlag)
	case dealerCfg.FeedBaseURL == "":
		return models.DealerConfig{}, "", fmt.Errorf("%w: -base-url", errMissingFlag)
	case apiKey == "":
		return models.DealerConfig{}, "", fmt.Errorf("%w: -api-key", errMissingFlag)
	}

	if u, err := url.Parse(dealerCfg.FeedBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return models.DealerConfig{}, "", fmt.Errorf("invalid -base-url %q", dealerCfg.FeedBaseURL)
	}
	if dealerCfg.IntervalMinutes < 1 || dealerCfg.PageSize < 0 {
		return models.DealerConfig{}, "", errors.New("-interval must be positive and -page-size non-negative")
	}

	dealerCfg.IsEnabled = !disabled
	return dealerCfg, apiKey, nil
}

func runLink(ctx context.Context, repo store.DealerUserRepository, args []string) error {
	var (
		userID   int64
		dealerID string
	)

	fs := flag.NewFlagSet(commandLink, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Int64Var(&userID, "user", 0, "Dashboard user ID")
	fs.StringVar(&dealerID, "dealer", "", "Dealer ID")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse %s flags: %w", commandLink, err)
	}
	if userID <= 0 || dealerID == "" {
		return fmt.Errorf("%w: -user and -dealer", errMissingFlag)
	}

	return repo.Link(ctx, userID, dealerID)
}
