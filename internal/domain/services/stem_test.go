package services

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/klisis/internal/domain/entities"
)

func TestExtractStem(t *testing.T) {
	tests := []struct {
		genitive string
		class    entities.DeclensionClass
		expected string
	}{
		{genitive: "χωρας", class: entities.ClassChora, expected: "χωρ"},
		{genitive: "φυλακος", class: entities.ClassPhulax, expected: "φυλακ"},
		{genitive: "σωματος", class: entities.ClassSoma, expected: "σωματ"},
		{genitive: "πολεως", class: entities.ClassPolis, expected: "πολ"},
		{genitive: "γενους", class: entities.ClassGenos, expected: "γεν"},
		{genitive: "βασιλεως", class: entities.ClassBasileus, expected: "βασιλε"},
		{genitive: "ος", class: entities.ClassPhulax, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.genitive, func(t *testing.T) {
			got, err := ExtractStem(tt.genitive, tt.class)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractStem_LengthInvariant(t *testing.T) {
	for _, c := range entities.AllClasses {
		genitive := "αβγδεζηθ"
		stem, err := ExtractStem(genitive, c)
		require.NoError(t, err)

		removed := 2
		if c == entities.ClassPolis || c == entities.ClassGenos {
			removed = 3
		}
		assert.Equal(t, utf8.RuneCountInString(genitive)-removed, utf8.RuneCountInString(stem), "class %s", c)
	}
}

func TestExtractStem_TooShort(t *testing.T) {
	tests := []struct {
		genitive string
		class    entities.DeclensionClass
		required int
	}{
		{genitive: "ς", class: entities.ClassLogos, required: 2},
		{genitive: "ως", class: entities.ClassPolis, required: 3},
		{genitive: "", class: entities.ClassGenos, required: 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			_, err := ExtractStem(tt.genitive, tt.class)
			require.Error(t, err)
			assert.True(t, errors.Is(err, entities.ErrStemTooShort))

			var stemErr *entities.StemError
			require.True(t, errors.As(err, &stemErr))
			assert.Equal(t, tt.required, stemErr.Required)
			assert.Equal(t, tt.genitive, stemErr.Genitive)
		})
	}
}
