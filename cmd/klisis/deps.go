package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ersonp/klisis/internal/application/handlers"
	"github.com/ersonp/klisis/internal/domain/ports"
	"github.com/ersonp/klisis/internal/domain/services"
	"github.com/ersonp/klisis/internal/infrastructure/config"
	"github.com/ersonp/klisis/internal/infrastructure/logging"
	"github.com/ersonp/klisis/internal/infrastructure/relationaldb/sqlite"
)

// errStoreDisabled is returned by commands that need the paradigm history.
var errStoreDisabled = errors.New("paradigm history is disabled (set store.enabled in .klisis/config.yaml or run 'klisis init --store')")

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config       *config.Config
	Logger       *slog.Logger
	CleanHandler *handlers.CleanHandler
}

// internalDeps holds all dependencies including low-level components.
// Used internally by helper functions.
type internalDeps struct {
	Deps
	paradigms *services.ParadigmService
	store     ports.ParadigmStore // nil when the store is disabled
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level components.
func withInternalDeps(fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log, os.Stderr)

	deps := &internalDeps{
		Deps: Deps{
			Config:       cfg,
			Logger:       logger,
			CleanHandler: handlers.NewCleanHandler(),
		},
		paradigms: services.NewParadigmService(),
	}

	if cfg.Store.Enabled {
		store, err := openStore(cfg, cwd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.EnsureSchema(context.Background()); err != nil {
			return fmt.Errorf("ensuring sqlite schema: %w", err)
		}
		deps.store = store
		logger.Debug("paradigm store opened", "path", cfg.StorePath(cwd))
	}

	return fn(deps)
}

// withDeclineHandler provides a DeclineHandler using the given batch parallelism.
// workers below 1 use the configured value.
func withDeclineHandler(workers int, fn func(*handlers.DeclineHandler, *Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		if workers < 1 {
			workers = d.Config.Batch.Workers
		}
		batch := services.NewBatchService(d.paradigms, workers)
		handler := handlers.NewDeclineHandler(d.paradigms, batch, d.store, d.Logger)
		return fn(handler, &d.Deps)
	})
}

// withHistoryHandler provides access to the HistoryHandler for history commands.
func withHistoryHandler(fn func(*handlers.HistoryHandler) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		if d.store == nil {
			return errStoreDisabled
		}
		return fn(handlers.NewHistoryHandler(d.store))
	})
}

// openStore opens the SQLite paradigm store, creating its directory if needed.
func openStore(cfg *config.Config, basePath string) (ports.ParadigmStore, error) {
	path := cfg.StorePath(basePath)
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: path})
	if err != nil {
		return nil, fmt.Errorf("creating sqlite repository: %w", err)
	}
	return repo, nil
}
