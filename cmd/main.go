package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/mixtape/internal/shared"
	"github.com/desertthunder/mixtape/internal/stores"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config.toml, using defaults", "error", err)
		}
	}
	shared.SetLogLevel(logger, config.Log.LogLevel())

	seed := stores.DefaultSeed()
	if config.Catalog.SeedPath != "" {
		if loadedSeed, err := stores.LoadSeed(config.Catalog.SeedPath); err == nil {
			seed = loadedSeed
		} else {
			logger.Warn("failed to load seed, using embedded catalog", "path", config.Catalog.SeedPath, "error", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:    config,
		Catalog:   stores.NewCatalogStore(seed.Categories),
		Playlists: stores.NewPlaylistStore(seed.Playlists),
		Logger:    logger,
	})

	app := &cli.Command{
		Name:     "mixtape",
		Usage:    "Browse a demo music catalog, playlists & favorites",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		}
		logger.Fatalf("application error: %v", err)
	}
}
