// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/klisis/internal/domain/entities"
)

// ParadigmStore persists built paradigms so they can be listed and exported later.
type ParadigmStore interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// Save stores a built noun and returns the stored record.
	Save(ctx context.Context, noun *entities.Noun) (*entities.Paradigm, error)

	// SaveBatch stores several built nouns in one transaction.
	SaveBatch(ctx context.Context, nouns []*entities.Noun) ([]*entities.Paradigm, error)

	// FindByID finds a stored paradigm by ID. Returns nil if not found.
	FindByID(ctx context.Context, id string) (*entities.Paradigm, error)

	// FindByNominative finds stored paradigms for a nominative, newest first.
	FindByNominative(ctx context.Context, nominative string) ([]*entities.Paradigm, error)

	// List lists stored paradigms, newest first, with pagination.
	List(ctx context.Context, limit, offset int) ([]*entities.Paradigm, error)

	// ListByClass lists stored paradigms of one declension class, newest first.
	ListByClass(ctx context.Context, class entities.DeclensionClass, limit int) ([]*entities.Paradigm, error)

	// Count returns the number of stored paradigms.
	Count(ctx context.Context) (int, error)

	// Delete removes a stored paradigm by ID.
	Delete(ctx context.Context, id string) error
}
