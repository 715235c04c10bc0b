package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/fhe"
	"github.com/MKhiriev/go-dream-cipher/internal/handler"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/server"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/internal/store"
	"github.com/MKhiriev/go-dream-cipher/internal/workers"
	"github.com/MKhiriev/go-dream-cipher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dream-ledger")
	cfg, err := config.GetLedgerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Uint64("chain_id", cfg.Ledger.ChainID).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	contract, err := config.ResolveContract(cfg.Ledger.ChainID, cfg.Ledger.ContractAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving contract")
	}

	runtime, err := fhe.NewRuntime(storages.CiphertextRepository, cfg.Ledger.ChainID, contract, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating confidential runtime")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, runtime, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var background workers.Worker
	if handlers.GRPC != nil {
		background = workers.NewHealthProbe(handlers.GRPC, cfg.Workers.RefreshInterval, log)
	}
	jobs := workers.NewWorkers(background)

	var wg sync.WaitGroup
	wg.Go(func() { jobs.Run(ctx) })

	log.Info().Str("contract", contract.Hex()).Msg("dream ledger started")
	srv.RunServer(ctx)

	cancel()
	wg.Wait()
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
