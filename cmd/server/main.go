package main

import (
	"context"
	"fmt"

	"github.com/melodia-app/melodia-server/internal/config"
	myHTTP "github.com/melodia-app/melodia-server/internal/handler/http"
	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/server"
	"github.com/melodia-app/melodia-server/internal/service"
	"github.com/melodia-app/melodia-server/internal/store"
	"github.com/melodia-app/melodia-server/internal/workers"
	"github.com/melodia-app/melodia-server/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("melodia-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repos := store.NewRepositories(db, log)
	services := service.NewServices(repos, *cfg, log)
	handler := myHTTP.NewHandler(services, cfg.App, log)

	// background chart refresh; a zero interval keeps the worker pool empty
	var pool []workers.Worker
	if cfg.Workers.ChartRefreshInterval > 0 {
		pool = append(pool, workers.NewChartWorker(services.SongService, cfg.Workers.ChartRefreshInterval, log))
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	workers.NewWorkers(pool...).Run(workersCtx)

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
