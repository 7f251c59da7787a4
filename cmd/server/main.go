// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/avdeyev/studykeep/internal/config"
	myHTTP "github.com/avdeyev/studykeep/internal/handler/http"
	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/server"
	"github.com/avdeyev/studykeep/internal/service"
	"github.com/avdeyev/studykeep/internal/store"
	"github.com/avdeyev/studykeep/internal/workers"
)

// cleanupInterval is how often the orphaned file cleaner sweeps the
// upload root.
const cleanupInterval = 6 * time.Hour

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("studykeep-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// Background workers share this context so a stop signal winds them
	// down alongside the HTTP server.
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	files, err := store.NewFileStorage(cfg.Storage.Uploads.Dir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating file storage")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(cfg, repositories, files, log)
	handler := myHTTP.NewHandler(services, db, cfg.Storage.Uploads, log)

	backgroundWorkers := workers.NewWorkers(
		workers.NewOrphanedFileCleaner(repositories.ResourceRepository, files, cleanupInterval, log),
	)
	backgroundWorkers.Run(ctx)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
