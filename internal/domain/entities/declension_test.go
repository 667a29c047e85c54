package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclensionTable_Complete(t *testing.T) {
	require.Len(t, AllClasses, 16)
	assert.Len(t, declensionTable, len(AllClasses))

	for _, c := range AllClasses {
		t.Run(string(c), func(t *testing.T) {
			assert.True(t, c.IsValid())
			assert.Len(t, c.Endings(), SlotCount)
			assert.NotEmpty(t, c.Exemplar())
		})
	}
}

func TestDeclensionClass_IsValid(t *testing.T) {
	assert.True(t, ClassChora.IsValid())
	assert.False(t, DeclensionClass("").IsValid())
	assert.False(t, DeclensionClass("amicus").IsValid())
}

func TestDeclensionClass_Endings(t *testing.T) {
	tests := []struct {
		name  string
		class DeclensionClass
		slot  Slot
		want  string
	}{
		{name: "chora dative singular", class: ClassChora, slot: DativeSingular, want: "ᾳ"},
		{name: "logos accusative plural", class: ClassLogos, slot: AccusativePlural, want: "ους"},
		{name: "phulax empty nominative", class: ClassPhulax, slot: NominativeSingular, want: ""},
		{name: "polis genitive singular", class: ClassPolis, slot: GenitiveSingular, want: "εως"},
		{name: "genos dative plural", class: ClassGenos, slot: DativePlural, want: "εσι"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.class.Endings()[tt.slot])
		})
	}
}

func TestDeclensionClass_UnknownHasEmptyEndings(t *testing.T) {
	assert.Equal(t, Endings{}, DeclensionClass("nope").Endings())
}

func TestSlot_String(t *testing.T) {
	assert.Equal(t, "nom. sg.", NominativeSingular.String())
	assert.Equal(t, "dat. pl.", DativePlural.String())
	assert.Equal(t, "unknown", Slot(SlotCount).String())
	assert.Equal(t, "unknown", Slot(-1).String())
}
