package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/klisis/internal/domain/entities"
	"github.com/ersonp/klisis/internal/domain/ports"
)

// DefaultHistoryLimit is the number of paradigms listed when no limit is given.
const DefaultHistoryLimit = 20

// HistoryHandler handles listing and removing stored paradigms.
type HistoryHandler struct {
	store ports.ParadigmStore
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(store ports.ParadigmStore) *HistoryHandler {
	return &HistoryHandler{
		store: store,
	}
}

// HistoryOptions filters the history listing.
// Lemma takes precedence over Class.
type HistoryOptions struct {
	Limit int
	Class string
	Lemma string
}

// HandleList lists stored paradigms, newest first.
func (h *HistoryHandler) HandleList(ctx context.Context, opts HistoryOptions) ([]*entities.Paradigm, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	switch {
	case opts.Lemma != "":
		found, err := h.store.FindByNominative(ctx, opts.Lemma)
		if err != nil {
			return nil, fmt.Errorf("finding paradigms for %s: %w", opts.Lemma, err)
		}
		if len(found) > limit {
			found = found[:limit]
		}
		return found, nil

	case opts.Class != "":
		class := entities.DeclensionClass(opts.Class)
		if !class.IsValid() {
			return nil, fmt.Errorf("unknown declension class: %s", opts.Class)
		}
		found, err := h.store.ListByClass(ctx, class, limit)
		if err != nil {
			return nil, fmt.Errorf("listing %s paradigms: %w", class, err)
		}
		return found, nil

	default:
		found, err := h.store.List(ctx, limit, 0)
		if err != nil {
			return nil, fmt.Errorf("listing paradigms: %w", err)
		}
		return found, nil
	}
}

// HandleFind returns one stored paradigm.
func (h *HistoryHandler) HandleFind(ctx context.Context, id string) (*entities.Paradigm, error) {
	p, err := h.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding paradigm: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("paradigm not found: %s", id)
	}
	return p, nil
}

// HandleDelete removes a stored paradigm and returns it.
func (h *HistoryHandler) HandleDelete(ctx context.Context, id string) (*entities.Paradigm, error) {
	p, err := h.HandleFind(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := h.store.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting paradigm: %w", err)
	}
	return p, nil
}

// HandleCount returns the number of stored paradigms.
func (h *HistoryHandler) HandleCount(ctx context.Context) (int, error) {
	count, err := h.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting paradigms: %w", err)
	}
	return count, nil
}
