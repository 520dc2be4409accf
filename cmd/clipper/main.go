// ABOUTME: Main entry point for the clipper CLI
// ABOUTME: Wires configuration, storage, logging, and transport into the app

package main

import (
	"fmt"
	"log"
	"os"

	"clipper-app-api/core/interfaces"
	"clipper-app-api/core/settings"
	stdhttp "clipper-app-api/infrastructure/http/standard"
	logruslogger "clipper-app-api/infrastructure/logger/logrus"
	"clipper-app-api/infrastructure/storage/memory"
	"clipper-app-api/infrastructure/storage/sqlite"
	"clipper-app-api/pkg/config"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(cfg.Log.Level, cfg.Log.Format)

	store, closeStore, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open settings store: %v", err)
	}
	defer closeStore()

	httpClient, err := stdhttp.NewStandardHTTPClient(cfg.RequestTimeout())
	if err != nil {
		log.Fatalf("Failed to create HTTP client: %v", err)
	}

	deps := interfaces.Dependencies{
		Store:      store,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	app := newCLIApp(appEnv{
		cfg:      cfg,
		deps:     deps,
		settings: settings.NewService(store),
	})

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newStore builds the configured settings store and its cleanup func.
func newStore(cfg *config.Config) (interfaces.Store, func(), error) {
	switch cfg.Store.Type {
	case "memory":
		return memory.NewMemoryStore(), func() {}, nil
	default:
		client, err := sqlite.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { client.Close() }, nil
	}
}
