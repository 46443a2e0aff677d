// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command dealerctl registers partner feed configurations and dashboard user
// links in the database used by the sync server. It reads the same
// environment, flags and JSON config as the server, so the stored API key is
// encrypted with the server's credential key.
//
// Usage:
//
//	dealerctl [server flags] configure -dealer ID -base-url URL -api-key KEY [-interval 60] [-page-size 100] [-disabled]
//	dealerctl [server flags] link -user ID -dealer ID
package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/crypto"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/store"
)

var commands = []string{commandConfigure, commandLink}

func main() {
	log := logger.NewLogger("dealerctl")

	globalArgs, command, commandArgs, err := splitArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.GetStructuredConfig(globalArgs)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)

	switch command {
	case commandConfigure:
		cipher, cipherErr := crypto.NewCredentialCipher(cfg.App.CredentialKey)
		if cipherErr != nil {
			log.Fatal().Err(cipherErr).Msg("error creating credential cipher")
		}
		err = runConfigure(ctx, repos.DealerConfigRepository, cipher, commandArgs)
	case commandLink:
		err = runLink(ctx, repos.DealerUserRepository, commandArgs)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}

	log.Info().Str("command", command).Msg("done")
}

// splitArgs separates server flags from the subcommand and its own flags.
func splitArgs(args []string) (global []string, command string, rest []string, err error) {
	idx := slices.IndexFunc(args, func(arg string) bool {
		return slices.Contains(commands, arg)
	})
	if idx < 0 {
		return nil, "", nil, fmt.Errorf("expected one of the commands %v", commands)
	}
	return args[:idx], args[idx], args[idx+1:], nil
}
