package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-enquete/internal/adapter"
	"github.com/MKhiriev/go-enquete/internal/client"
	"github.com/MKhiriev/go-enquete/internal/config"
	"github.com/MKhiriev/go-enquete/internal/logger"
	"github.com/MKhiriev/go-enquete/internal/service"
	"github.com/MKhiriev/go-enquete/internal/store"
	"github.com/MKhiriev/go-enquete/internal/tui"
	"github.com/MKhiriev/go-enquete/internal/validators"
	"github.com/MKhiriev/go-enquete/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("enquete-client", os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log, closeLog := logger.NewClientLogger("enquete-client", cfg.App.LogFile)
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, buildInfo, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		stop()
		_ = closeLog()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	postClient, err := adapter.NewHTTPPostClient(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create http adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	services := service.NewClientServices(cfg.App, storages, postClient, log)
	ui := tui.New(services, validators.NewLoginValidation(), buildInfo, log)

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
