package main

import (
	"context"
	"fmt"

	"github.com/asemenov/learnhub/internal/config"
	"github.com/asemenov/learnhub/internal/handler"
	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/internal/server"
	"github.com/asemenov/learnhub/internal/service"
	"github.com/asemenov/learnhub/internal/store"
	"github.com/asemenov/learnhub/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("learnhub-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if cfg.Storage.SeedDemoData {
		if err := store.SeedDemoContent(ctx, storages, log); err != nil {
			log.Fatal().Err(err).Msg("error seeding demo content")
		}
	}

	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(storages.Sessions, cfg.Workers, log)
	go backgroundWorkers.Run(ctx)

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
