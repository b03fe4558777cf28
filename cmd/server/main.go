package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-door-keeper/internal/adapter"
	"github.com/MKhiriev/go-door-keeper/internal/config"
	"github.com/MKhiriev/go-door-keeper/internal/handler"
	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/internal/server"
	"github.com/MKhiriev/go-door-keeper/internal/service"
	"github.com/MKhiriev/go-door-keeper/internal/store"
	"github.com/MKhiriev/go-door-keeper/internal/workers"
	"github.com/MKhiriev/go-door-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("door-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http", cfg.Server.HTTPAddress).
		Str("grpc", cfg.Server.GRPCAddress).
		Str("tag_db", cfg.Storage.Files.TagDBPath).
		Bool("sql", cfg.Storage.DB.DSN != "").
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	door, stopActuator, err := adapter.NewActuator(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating door actuator")
	}
	defer stopActuator()

	// queued actuator calls are drained after the transports stop
	workersCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	workersDone := make(chan struct{})
	if cfg.Workers.Count > 0 {
		queue := workers.NewActuatorQueue(door, cfg.Workers, log)
		door = queue
		go func() {
			defer close(workersDone)
			workers.NewWorkers(queue).Run(workersCtx)
		}()
	} else {
		close(workersDone)
	}

	services, err := service.NewServices(storages, door, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stopWorkers()
	<-workersDone
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
