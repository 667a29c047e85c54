package services

import (
	"fmt"
	"strings"

	"github.com/ersonp/klisis/internal/domain/entities"
)

// nominativeOverrides lists, per class, the slots whose composed form is
// replaced by the nominative as given. Other classes keep every composed form.
var nominativeOverrides = map[entities.DeclensionClass][]entities.Slot{
	entities.ClassPhulax:  {entities.NominativeSingular},
	entities.ClassCheimon: {entities.NominativeSingular},
	entities.ClassGeron:   {entities.NominativeSingular},
	entities.ClassGigas:   {entities.NominativeSingular},
	entities.ClassSoma:    {entities.NominativeSingular, entities.AccusativeSingular},
	entities.ClassGenos:   {entities.NominativeSingular, entities.AccusativeSingular},
}

// ParadigmService builds full paradigms for nouns.
type ParadigmService struct{}

// NewParadigmService creates a new ParadigmService.
func NewParadigmService() *ParadigmService {
	return &ParadigmService{}
}

// NewNoun classifies the noun and derives its stem. The returned noun has no forms yet.
func (s *ParadigmService) NewNoun(nominative, genitive string, gender entities.Gender) (*entities.Noun, error) {
	nominative = strings.TrimSpace(nominative)
	genitive = strings.TrimSpace(genitive)

	class, err := Classify(nominative, genitive)
	if err != nil {
		return nil, err
	}

	stem, err := ExtractStem(genitive, class)
	if err != nil {
		return nil, err
	}

	return &entities.Noun{
		Nominative: nominative,
		Genitive:   genitive,
		Gender:     gender,
		Class:      class,
		Stem:       stem,
	}, nil
}

// Build fills in the noun's bare and article forms.
// The noun is only modified once every slot has been computed.
func (s *ParadigmService) Build(noun *entities.Noun) error {
	if !noun.Class.IsValid() {
		return fmt.Errorf("building %s: unknown declension class %q", noun.Nominative, noun.Class)
	}
	if !noun.Gender.IsValid() {
		return fmt.Errorf("building %s: unknown gender %q", noun.Nominative, noun.Gender)
	}

	endings := noun.Class.Endings()
	forms := make([]string, entities.SlotCount)
	for i, ending := range endings {
		forms[i] = Rewrite(noun.Class, noun.Stem+ending)
	}

	for _, slot := range nominativeOverrides[noun.Class] {
		forms[slot] = noun.Nominative
	}

	articles := noun.Gender.Articles()
	withArticle := make([]string, entities.SlotCount)
	for i, form := range forms {
		withArticle[i] = articles[i] + " " + form
	}

	noun.Forms = forms
	noun.FormsWithArticle = withArticle
	return nil
}

// Decline classifies, derives the stem and builds the paradigm in one step.
func (s *ParadigmService) Decline(nominative, genitive string, gender entities.Gender) (*entities.Noun, error) {
	noun, err := s.NewNoun(nominative, genitive, gender)
	if err != nil {
		return nil, err
	}
	if err := s.Build(noun); err != nil {
		return nil, err
	}
	return noun, nil
}

// DeclineTokens is Decline with the gender given as an article token (ὁ, ἡ, το, ...).
// The noun pattern is checked before the gender token.
func (s *ParadigmService) DeclineTokens(nominative, genitive, genderToken string) (*entities.Noun, error) {
	noun, err := s.NewNoun(nominative, genitive, "")
	if err != nil {
		return nil, err
	}

	noun.Gender, err = entities.ParseGender(genderToken)
	if err != nil {
		return nil, fmt.Errorf("with %s: %w", noun.Nominative, err)
	}

	if err := s.Build(noun); err != nil {
		return nil, err
	}
	return noun, nil
}
