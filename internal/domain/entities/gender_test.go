package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleTable_Complete(t *testing.T) {
	require.Len(t, AllGenders, 3)
	for _, g := range AllGenders {
		assert.True(t, g.IsValid())
		assert.Len(t, g.Articles(), SlotCount)
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		token string
		want  Gender
	}{
		{token: "ὁ", want: Masculine},
		{token: "οἱ", want: Masculine},
		{token: "ἡ", want: Feminine},
		{token: "αἱ", want: Feminine},
		{token: "το", want: Neuter},
		{token: "τα", want: Neuter},
		{token: " ἡ ", want: Feminine},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseGender(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGender_Unrecognized(t *testing.T) {
	for _, token := range []string{"ξ", "", "the", "τό"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseGender(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnrecognizedGender))

			var genderErr *GenderError
			require.True(t, errors.As(err, &genderErr))
			assert.Equal(t, token, genderErr.Token)
		})
	}
}

func TestGenderFromName(t *testing.T) {
	g, ok := GenderFromName("Feminine")
	assert.True(t, ok)
	assert.Equal(t, Feminine, g)

	_, ok = GenderFromName("common")
	assert.False(t, ok)
}

func TestGender_Articles(t *testing.T) {
	assert.Equal(t, "τον", Masculine.Articles()[AccusativeSingular])
	assert.Equal(t, "ταις", Feminine.Articles()[DativePlural])
	assert.Equal(t, "το", Neuter.Articles()[AccusativeSingular])
}
