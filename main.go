package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/config"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/datacache"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/errors"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/refresh"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/ui"
)

func main() {
	// .env is optional; real environments configure via the process env.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := internal.NewDefaultLogger()
	cache := datacache.New(cfg.Data.CacheTTL)

	// Warm the cache so a bad source path surfaces at startup rather than
	// on the first interaction.
	if _, err := cache.Get(cfg.Data.CSVPath); err != nil {
		if errors.HasCode(err, errors.CodeMissingFile) {
			logger.Warn("source not found yet: %v", err)
		} else {
			log.Fatalf("cannot load survey data: %v", err)
		}
	}

	app, err := ui.NewApp(cfg, cache, logger)
	if err != nil {
		log.Fatalf("cannot initialize dashboard: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Refresh.Enabled {
		refresher := refresh.New(cfg.Refresh.Interval, func() error {
			_, err := cache.ForceReload(cfg.Data.CSVPath)
			return err
		}, logger)
		go refresher.Run(ctx)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
