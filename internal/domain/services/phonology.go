package services

import (
	"strings"

	"github.com/ersonp/klisis/internal/domain/entities"
)

type rewrite struct {
	from string
	to   string
}

// soundChanges lists the boundary rewrites for each class, applied in order.
// Classes without an entry are left unchanged.
var soundChanges = map[entities.DeclensionClass][]rewrite{
	entities.ClassPhulax: {
		{from: "κσ", to: "ξ"},
		{from: "κτσ", to: "ξ"},
		{from: "δσ", to: "σ"},
		{from: "τσ", to: "σ"},
	},
	entities.ClassCheimon: {{from: "νσ", to: "σ"}},
	entities.ClassGeron:   {{from: "οντσι", to: "ουσι"}},
	entities.ClassGigas:   {{from: "αντσι", to: "ασι"}},
	entities.ClassSoma:    {{from: "ατσι", to: "ασι"}},
}

// Rewrite applies the class's sound changes to a stem+ending candidate.
// Each rewrite runs once, in table order, over the whole candidate.
func Rewrite(class entities.DeclensionClass, candidate string) string {
	for _, rw := range soundChanges[class] {
		candidate = strings.ReplaceAll(candidate, rw.from, rw.to)
	}
	return candidate
}
