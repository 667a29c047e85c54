// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/ersonp/klisis/internal/domain/entities"
)

// ParadigmStore is an in-memory mock implementation of ports.ParadigmStore.
type ParadigmStore struct {
	Paradigms []*entities.Paradigm
	Err       error

	// Call tracking
	SaveCallCount      int
	SaveBatchCallCount int
	CloseCallCount     int

	nextID int
}

// NewParadigmStore creates a new mock ParadigmStore.
func NewParadigmStore() *ParadigmStore {
	return &ParadigmStore{}
}

// EnsureSchema returns the configured error.
func (m *ParadigmStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close counts the call.
func (m *ParadigmStore) Close() error {
	m.CloseCallCount++
	return nil
}

// Save appends the noun.
func (m *ParadigmStore) Save(_ context.Context, noun *entities.Noun) (*entities.Paradigm, error) {
	m.SaveCallCount++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.add(noun), nil
}

// SaveBatch appends every noun.
func (m *ParadigmStore) SaveBatch(_ context.Context, nouns []*entities.Noun) ([]*entities.Paradigm, error) {
	m.SaveBatchCallCount++
	if m.Err != nil {
		return nil, m.Err
	}
	saved := make([]*entities.Paradigm, 0, len(nouns))
	for _, n := range nouns {
		saved = append(saved, m.add(n))
	}
	return saved, nil
}

func (m *ParadigmStore) add(noun *entities.Noun) *entities.Paradigm {
	m.nextID++
	p := &entities.Paradigm{
		ID:        fmt.Sprintf("paradigm-%d", m.nextID),
		Noun:      *noun,
		CreatedAt: time.Now(),
	}
	m.Paradigms = append(m.Paradigms, p)
	return p
}

// FindByID finds a paradigm by ID.
func (m *ParadigmStore) FindByID(_ context.Context, id string) (*entities.Paradigm, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.Paradigms {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// FindByNominative finds paradigms for a nominative, newest first.
func (m *ParadigmStore) FindByNominative(_ context.Context, nominative string) ([]*entities.Paradigm, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []*entities.Paradigm
	for i := len(m.Paradigms) - 1; i >= 0; i-- {
		if m.Paradigms[i].Nominative == nominative {
			result = append(result, m.Paradigms[i])
		}
	}
	return result, nil
}

// List lists paradigms newest first.
func (m *ParadigmStore) List(_ context.Context, limit, offset int) ([]*entities.Paradigm, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []*entities.Paradigm
	for i := len(m.Paradigms) - 1 - offset; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.Paradigms[i])
	}
	return result, nil
}

// ListByClass lists paradigms of a class newest first.
func (m *ParadigmStore) ListByClass(_ context.Context, class entities.DeclensionClass, limit int) ([]*entities.Paradigm, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []*entities.Paradigm
	for i := len(m.Paradigms) - 1; i >= 0 && len(result) < limit; i-- {
		if m.Paradigms[i].Class == class {
			result = append(result, m.Paradigms[i])
		}
	}
	return result, nil
}

// Count returns the number of paradigms.
func (m *ParadigmStore) Count(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Paradigms), nil
}

// Delete removes a paradigm by ID.
func (m *ParadigmStore) Delete(_ context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i, p := range m.Paradigms {
		if p.ID == id {
			m.Paradigms = append(m.Paradigms[:i], m.Paradigms[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("paradigm not found: %s", id)
}
