package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-chain-keeper/internal/bus"
	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/handler"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/server"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/workers"
	"github.com/MKhiriev/go-chain-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("walletd", logger.Level(false)).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("walletd", logger.Level(cfg.App.DevMode))
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configs")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	events := bus.New()

	services, err := service.NewServices(storages, events, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(services.WalletService, services.ApprovalService, cfg.Workers, log).
		Add(workers.NewEventLogWorker(events, log))

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
