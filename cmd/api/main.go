package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mmisra/sales-dashboard-api/infrastructure/dataset"
	"github.com/mmisra/sales-dashboard-api/internal/api"
	"github.com/mmisra/sales-dashboard-api/internal/config"
	"github.com/mmisra/sales-dashboard-api/internal/scheduler"
	"github.com/mmisra/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/mmisra/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/mmisra/sales-dashboard-api/internal/usecases/presetting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, using 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Dataset source with a process-scoped cache keyed by path + mtime
	csvSource := dataset.NewCSVSource(cfg.Dataset.Path)
	cachedSource := dataset.NewCachedSource(cfg.Dataset.Path, csvSource)

	// Warm the cache at startup; a broken dataset should be visible
	// immediately rather than on the first request
	if _, err := cachedSource.Table(ctx); err != nil {
		logrus.WithError(err).Warn("could not load dataset at startup, requests will retry")
	}

	authenticator := authenticating.NewService(cfg)
	dashboardService := dashboarding.NewService(cachedSource)
	presetService := presetting.NewService()

	refreshService := scheduler.NewDatasetRefreshService(cachedSource, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting dataset refresh scheduler")
	} else {
		logrus.Info("dataset refresh scheduler started")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		presetService,
		authenticator,
		refreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
