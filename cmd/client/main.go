package main

import (
	"fmt"

	"github.com/MKhiriev/go-dream-cipher/internal/adapter"
	"github.com/MKhiriev/go-dream-cipher/internal/client"
	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/internal/tui"
	"github.com/MKhiriev/go-dream-cipher/internal/wallet"
	"github.com/MKhiriev/go-dream-cipher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("dream-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("dream-client", cfg.App.LogDir)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	identity, err := wallet.New(cfg.Wallet.PrivateKey, cfg.Wallet.ChainID)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading wallet")
	}
	if cfg.Wallet.PrivateKey == "" {
		log.Warn().Str("account", identity.Address().Hex()).Msg("no wallet key configured, using an ephemeral account")
	}

	ledger, err := adapter.NewHTTPLedgerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ledger adapter")
	}

	services, err := service.NewClientServices(identity, ledger, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client services")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, identity.Address(), identity.ChainID(), buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
