// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ersonp/klisis/internal/domain/entities"
	"github.com/ersonp/klisis/internal/domain/ports"
	"github.com/ersonp/klisis/internal/domain/services"
	"github.com/ersonp/klisis/internal/infrastructure/parsers"
)

// ErrNoStore is returned when saving is requested but no paradigm store is configured.
var ErrNoStore = errors.New("no paradigm store configured")

// DeclineHandler handles declining nouns from an inline triple or a batch file.
type DeclineHandler struct {
	paradigms *services.ParadigmService
	batch     *services.BatchService
	store     ports.ParadigmStore
	logger    *slog.Logger
}

// NewDeclineHandler creates a new decline handler.
// store may be nil, in which case saving fails with ErrNoStore.
func NewDeclineHandler(
	paradigms *services.ParadigmService,
	batch *services.BatchService,
	store ports.ParadigmStore,
	logger *slog.Logger,
) *DeclineHandler {
	return &DeclineHandler{
		paradigms: paradigms,
		batch:     batch,
		store:     store,
		logger:    logger,
	}
}

// DeclineOptions controls decline behavior.
type DeclineOptions struct {
	Format string // "json", "csv", or "auto"
	Save   bool   // Persist built paradigms in the store
}

// DeclineResult contains the result of a batch decline.
type DeclineResult struct {
	Nouns   []*entities.Noun
	Skipped []services.RecordError
	Saved   int
}

// HandleTriple declines one "nominative, genitive, article" triple.
// Any failure is returned; nothing is skipped.
func (h *DeclineHandler) HandleTriple(ctx context.Context, input string, save bool) (*entities.Noun, error) {
	if save && h.store == nil {
		return nil, ErrNoStore
	}

	rec, err := parsers.ParseTriple(input)
	if err != nil {
		return nil, err
	}

	noun, err := h.paradigms.DeclineTokens(rec.Nominative, rec.Genitive, rec.Gender)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("declined noun", "nominative", noun.Nominative, "class", noun.Class)

	if save {
		if _, err := h.store.Save(ctx, noun); err != nil {
			return nil, fmt.Errorf("saving paradigm: %w", err)
		}
	}

	return noun, nil
}

// HandleFile declines every record in a batch file.
func (h *DeclineHandler) HandleFile(ctx context.Context, filePath string, opts DeclineOptions) (*DeclineResult, error) {
	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(opts.Format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return h.HandleBatch(ctx, file, parser, opts)
}

// HandleBatch declines every record read from r. Records that cannot be
// declined are reported in Skipped; read and store failures are returned.
func (h *DeclineHandler) HandleBatch(ctx context.Context, r io.Reader, parser parsers.Parser, opts DeclineOptions) (*DeclineResult, error) {
	if opts.Save && h.store == nil {
		return nil, ErrNoStore
	}

	records, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing records: %w", err)
	}

	if len(records) == 0 {
		return &DeclineResult{}, nil
	}

	batchResult, err := h.batch.Decline(ctx, records)
	if err != nil {
		return nil, err
	}

	for _, skipped := range batchResult.Skipped {
		h.logger.Debug("record skipped",
			"line", skipped.Line,
			"nominative", skipped.Nominative,
			"error", skipped.Err,
		)
	}

	result := &DeclineResult{
		Nouns:   batchResult.Nouns,
		Skipped: batchResult.Skipped,
	}

	if opts.Save && len(result.Nouns) > 0 {
		saved, err := h.store.SaveBatch(ctx, result.Nouns)
		if err != nil {
			return nil, fmt.Errorf("saving paradigms: %w", err)
		}
		result.Saved = len(saved)
	}

	h.logger.Info("batch declined", "declined", len(result.Nouns), "skipped", len(result.Skipped))
	return result, nil
}
