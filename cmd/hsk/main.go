// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-hsk-keeper/internal/adapter"
	"github.com/MKhiriev/go-hsk-keeper/internal/client"
	"github.com/MKhiriev/go-hsk-keeper/internal/config"
	"github.com/MKhiriev/go-hsk-keeper/internal/logger"
	"github.com/MKhiriev/go-hsk-keeper/internal/service"
	"github.com/MKhiriev/go-hsk-keeper/internal/store"
	"github.com/MKhiriev/go-hsk-keeper/internal/tui"
	"github.com/MKhiriev/go-hsk-keeper/internal/validators"
	"github.com/MKhiriev/go-hsk-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("hsk-client", cfg.App.LogFile, cfg.App.LogLevel)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// repositories log through the context
	ctx = log.Component("store").WithContext(ctx)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	source, err := adapter.NewWordListSource(cfg.Source, validators.NewWordValidator(), log.Component("source"))
	if err != nil {
		log.Fatal().Err(err).Msg("create word list source")
	}

	rnd := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	services := service.NewClientServices(storages, cfg.Workers, rnd, log)

	ui, err := tui.New(services, cfg.App.ExportPath, buildInfo, log.Component("tui"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, source, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "hsk: %v\n", err)
		storages.Close()
		os.Exit(1)
	}
}
