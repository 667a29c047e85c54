package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/klisis/internal/domain/ports"
	"github.com/ersonp/klisis/internal/infrastructure/config"
)

// StoreOpener opens the paradigm store described by cfg.
type StoreOpener func(cfg *config.Config, basePath string) (ports.ParadigmStore, error)

// InitHandler handles project initialization.
type InitHandler struct {
	openStore StoreOpener
}

// NewInitHandler creates a new init handler.
func NewInitHandler(openStore StoreOpener) *InitHandler {
	return &InitHandler{
		openStore: openStore,
	}
}

// InitOptions controls initialization.
type InitOptions struct {
	EnableStore bool // Turn on paradigm history and create its schema
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath string
	StorePath  string
}

// Handle writes the default configuration and, if asked, creates the store.
func (h *InitHandler) Handle(ctx context.Context, basePath string, opts InitOptions) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("klisis already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	result := &InitResult{ConfigPath: config.ConfigFilePath(basePath)}
	if !opts.EnableStore {
		return result, nil
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg.Store.Enabled = true
	if err := config.Write(basePath, cfg); err != nil {
		return nil, fmt.Errorf("enabling store: %w", err)
	}

	if h.openStore != nil {
		store, err := h.openStore(cfg, basePath)
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
		defer store.Close()

		if err := store.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	result.StorePath = cfg.StorePath(basePath)
	return result, nil
}
