package entities

import "strings"

// Gender is the grammatical gender of a noun.
type Gender string

// Genders.
const (
	Masculine Gender = "masculine"
	Feminine  Gender = "feminine"
	Neuter    Gender = "neuter"
)

// Articles is the definite article in every slot, aligned with Endings.
type Articles [SlotCount]string

var articleTable = map[Gender]Articles{
	Masculine: {"ὁ", "τον", "του", "τῳ", "οἱ", "τους", "των", "τοις"},
	Feminine:  {"ἡ", "την", "της", "τῃ", "αἱ", "τας", "των", "ταις"},
	Neuter:    {"το", "το", "του", "τῳ", "τα", "τα", "των", "τοις"},
}

// genderTokens maps the nominative article, singular or plural, to its gender.
var genderTokens = map[string]Gender{
	"ὁ":  Masculine,
	"οἱ": Masculine,
	"ἡ":  Feminine,
	"αἱ": Feminine,
	"το": Neuter,
	"τα": Neuter,
}

// AllGenders lists the genders in conventional order.
var AllGenders = []Gender{Masculine, Feminine, Neuter}

// ParseGender decodes a gender marker given as a nominative article.
func ParseGender(token string) (Gender, error) {
	g, ok := genderTokens[strings.TrimSpace(token)]
	if !ok {
		return "", &GenderError{Token: token}
	}
	return g, nil
}

// GenderFromName returns the gender with the given name ("masculine", ...).
func GenderFromName(name string) (Gender, bool) {
	g := Gender(strings.ToLower(strings.TrimSpace(name)))
	_, ok := articleTable[g]
	return g, ok
}

// IsValid reports whether g is a known gender.
func (g Gender) IsValid() bool {
	_, ok := articleTable[g]
	return ok
}

// Articles returns the article forms for the gender.
func (g Gender) Articles() Articles {
	return articleTable[g]
}
