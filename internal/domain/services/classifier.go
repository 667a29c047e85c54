// Package services contains the declension engine: classification, stem
// extraction, sound-change rewriting and paradigm building.
package services

import (
	"strings"

	"github.com/ersonp/klisis/internal/domain/entities"
)

// classificationRule maps a nominative/genitive suffix pair to a class.
// An empty nominative suffix matches any nominative.
type classificationRule struct {
	nominative string
	genitive   string
	class      entities.DeclensionClass
}

func (r classificationRule) matches(nominative, genitive string) bool {
	return strings.HasSuffix(nominative, r.nominative) && strings.HasSuffix(genitive, r.genitive)
}

// classificationRules is evaluated top to bottom and the first match wins.
// Broader suffixes must stay below the narrower ones they overlap with:
// every -νος genitive also ends in -ος, so the nasal rule precedes the
// consonant-stem fallback.
var classificationRules = []classificationRule{
	// First declension
	{nominative: "η", genitive: "ης", class: entities.ClassTime},
	{nominative: "α", genitive: "ας", class: entities.ClassChora},
	{nominative: "α", genitive: "ης", class: entities.ClassMousa},
	{nominative: "ης", genitive: "ου", class: entities.ClassKrites},
	{nominative: "ας", genitive: "ου", class: entities.ClassNeanias},

	// Second declension
	{nominative: "ος", genitive: "ου", class: entities.ClassLogos},
	{nominative: "ον", genitive: "ου", class: entities.ClassDoron},
	{nominative: "οι", genitive: "ων", class: entities.ClassLogos},

	// Third declension
	{nominative: "ων", genitive: "οντος", class: entities.ClassGeron},
	{nominative: "ας", genitive: "αντος", class: entities.ClassGigas},
	{nominative: "α", genitive: "ατος", class: entities.ClassSoma},
	{nominative: "τα", genitive: "ατων", class: entities.ClassSoma},
	{nominative: "α", genitive: "ων", class: entities.ClassDoron},
	{nominative: "ος", genitive: "ους", class: entities.ClassGenos},
	{nominative: "ευς", genitive: "εως", class: entities.ClassBasileus},
	{nominative: "ις", genitive: "εως", class: entities.ClassPolis},
	{nominative: "υς", genitive: "υος", class: entities.ClassIchthus},
	{genitive: "νος", class: entities.ClassCheimon},
	{genitive: "ος", class: entities.ClassPhulax},
}

// Classify returns the declension class of a noun from its nominative and
// genitive singular. It fails with a *entities.PatternError when no rule matches.
func Classify(nominative, genitive string) (entities.DeclensionClass, error) {
	nominative = strings.TrimSpace(nominative)
	genitive = strings.TrimSpace(genitive)

	for _, rule := range classificationRules {
		if rule.matches(nominative, genitive) {
			return rule.class, nil
		}
	}
	return "", &entities.PatternError{Nominative: nominative, Genitive: genitive}
}
