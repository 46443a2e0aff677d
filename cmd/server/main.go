// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-inventory-sync/internal/adapter"
	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/crypto"
	"github.com/MKhiriev/go-inventory-sync/internal/handler"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/objects"
	"github.com/MKhiriev/go-inventory-sync/internal/server"
	"github.com/MKhiriev/go-inventory-sync/internal/service"
	"github.com/MKhiriev/go-inventory-sync/internal/store"
	"github.com/MKhiriev/go-inventory-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("inventory-sync-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storage, err := objects.NewStorage(cfg.Storage.Objects, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating object storage")
	}
	if err = storage.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("error initializing object storage")
	}

	cipher, err := crypto.NewCredentialCipher(cfg.App.CredentialKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating credential cipher")
	}

	services := service.NewServices(
		store.NewRepositories(db, log),
		storage,
		cipher,
		adapter.NewHTTPFeedClient(cfg.Feed, log),
		adapter.NewHTTPPhotoDownloader(cfg.Feed),
		*cfg,
		log,
	)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bgWorkers := workers.NewWorkers(services, cfg.Workers, log)
	workersDone := make(chan struct{})
	go func() {
		bgWorkers.Run(ctx)
		close(workersDone)
	}()

	srv.RunServer(ctx)

	// servers are drained; stop the scheduler and wait for a run in flight
	cancel()
	<-workersDone
	log.Info().Msg("application stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
