package entities

import "time"

// Noun is one noun to be declined.
// Class and Stem are derived once when the noun is created and are not changed afterwards.
// Forms and FormsWithArticle are nil until the paradigm is built, then hold SlotCount entries.
type Noun struct {
	Nominative       string          `json:"nominative"`
	Genitive         string          `json:"genitive"`
	Gender           Gender          `json:"gender"`
	Class            DeclensionClass `json:"class"`
	Stem             string          `json:"stem"`
	Forms            []string        `json:"forms,omitempty"`
	FormsWithArticle []string        `json:"forms_with_article,omitempty"`
}

// Built reports whether the paradigm has been generated.
func (n *Noun) Built() bool {
	return len(n.Forms) == SlotCount && len(n.FormsWithArticle) == SlotCount
}

// Paradigm is a built noun as kept in the paradigm history.
type Paradigm struct {
	ID string `json:"id"`
	Noun
	CreatedAt time.Time `json:"created_at"`
}
