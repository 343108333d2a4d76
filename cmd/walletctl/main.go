package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/internal/client"
	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewConsoleLogger("walletctl", logger.Level(false)).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewConsoleLogger("walletctl", logger.Level(cfg.App.DevMode))

	coordinator, err := adapter.NewHTTPCoordinatorAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating coordinator adapter")
	}

	newRelay := func(origin string) (adapter.RelayAdapter, error) {
		return adapter.NewHTTPRelayAdapter(cfg.Adapter, origin, log)
	}

	app := client.NewApp(coordinator, newRelay, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err = app.Run(context.Background(), os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
