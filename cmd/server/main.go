package main

import (
	"context"
	"fmt"

	"github.com/somahealth/vault-companion/internal/config"
	"github.com/somahealth/vault-companion/internal/handler"
	"github.com/somahealth/vault-companion/internal/insight"
	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/internal/server"
	"github.com/somahealth/vault-companion/internal/service"
	"github.com/somahealth/vault-companion/internal/store"
	"github.com/somahealth/vault-companion/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vault-companion")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ids := utils.NewUUIDGenerator()
	storages := store.NewStorages(ids, log)

	if cfg.Demo.Seed {
		store.SeedDemoData(context.Background(), storages, log)
	}

	engine := insight.NewEngine(log)
	services := service.NewServices(storages, engine, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
