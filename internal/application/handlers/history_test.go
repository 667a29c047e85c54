package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/klisis/internal/domain/entities"
	"github.com/ersonp/klisis/internal/domain/mocks"
	"github.com/ersonp/klisis/internal/domain/services"
)

func seededStore(t *testing.T) *mocks.ParadigmStore {
	t.Helper()
	svc := services.NewParadigmService()
	store := mocks.NewParadigmStore()

	for _, triple := range [][3]string{
		{"λογος", "λογου", "ὁ"},
		{"χωρα", "χωρας", "ἡ"},
		{"δωρον", "δωρου", "το"},
		{"λογος", "λογου", "ὁ"},
	} {
		noun, err := svc.DeclineTokens(triple[0], triple[1], triple[2])
		require.NoError(t, err)
		_, err = store.Save(context.Background(), noun)
		require.NoError(t, err)
	}
	return store
}

func TestHistoryHandler_HandleList(t *testing.T) {
	handler := NewHistoryHandler(seededStore(t))
	ctx := context.Background()

	t.Run("default limit", func(t *testing.T) {
		list, err := handler.HandleList(ctx, HistoryOptions{})
		require.NoError(t, err)
		require.Len(t, list, 4)
		assert.Equal(t, "paradigm-4", list[0].ID)
	})

	t.Run("limit", func(t *testing.T) {
		list, err := handler.HandleList(ctx, HistoryOptions{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("by class", func(t *testing.T) {
		list, err := handler.HandleList(ctx, HistoryOptions{Class: "chora"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "χωρα", list[0].Nominative)
	})

	t.Run("unknown class", func(t *testing.T) {
		_, err := handler.HandleList(ctx, HistoryOptions{Class: "fourth"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown declension class")
	})

	t.Run("by lemma", func(t *testing.T) {
		list, err := handler.HandleList(ctx, HistoryOptions{Lemma: "λογος", Limit: 1})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "paradigm-4", list[0].ID)
	})
}

func TestHistoryHandler_HandleList_StoreError(t *testing.T) {
	store := mocks.NewParadigmStore()
	store.Err = errors.New("locked")

	_, err := NewHistoryHandler(store).HandleList(context.Background(), HistoryOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing paradigms")
}

func TestHistoryHandler_HandleDelete(t *testing.T) {
	store := seededStore(t)
	handler := NewHistoryHandler(store)
	ctx := context.Background()

	deleted, err := handler.HandleDelete(ctx, "paradigm-2")
	require.NoError(t, err)
	assert.Equal(t, entities.ClassChora, deleted.Class)

	count, err := handler.HandleCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = handler.HandleDelete(ctx, "paradigm-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paradigm not found")
}

func TestHistoryHandler_HandleFind(t *testing.T) {
	handler := NewHistoryHandler(seededStore(t))

	p, err := handler.HandleFind(context.Background(), "paradigm-3")
	require.NoError(t, err)
	assert.Equal(t, "δωρον", p.Nominative)

	_, err = handler.HandleFind(context.Background(), "paradigm-9")
	require.Error(t, err)
}
