// Package entities contains core domain data structures.
package entities

// SlotCount is the number of case/number slots in a paradigm.
const SlotCount = 8

// Slot indexes one case/number combination of a paradigm.
// The order is shared by every ending and article table.
type Slot int

// Paradigm slots in table order.
const (
	NominativeSingular Slot = iota
	AccusativeSingular
	GenitiveSingular
	DativeSingular
	NominativePlural
	AccusativePlural
	GenitivePlural
	DativePlural
)

var slotNames = [SlotCount]string{
	"nom. sg.", "acc. sg.", "gen. sg.", "dat. sg.",
	"nom. pl.", "acc. pl.", "gen. pl.", "dat. pl.",
}

// String returns the abbreviated grammatical name of the slot.
func (s Slot) String() string {
	if s < 0 || int(s) >= SlotCount {
		return "unknown"
	}
	return slotNames[s]
}

// Endings is an ordered set of eight inflectional endings, one per Slot.
type Endings [SlotCount]string

// DeclensionClass identifies a noun inflection pattern.
// Each class is named after the noun it is usually taught with.
type DeclensionClass string

// Declension classes.
const (
	// First declension.
	ClassTime    DeclensionClass = "time"    // τιμη, -ης (f)
	ClassChora   DeclensionClass = "chora"   // χωρα, -ας (f)
	ClassMousa   DeclensionClass = "mousa"   // μουσα, -ης (f)
	ClassKrites  DeclensionClass = "krites"  // κριτης, -ου (m)
	ClassNeanias DeclensionClass = "neanias" // νεανιας, -ου (m)

	// Second declension.
	ClassLogos DeclensionClass = "logos" // λογος, -ου (m)
	ClassDoron DeclensionClass = "doron" // δωρον, -ου (n)

	// Third declension.
	ClassPhulax   DeclensionClass = "phulax"   // φυλαξ, -κος: consonant stem
	ClassCheimon  DeclensionClass = "cheimon"  // χειμων, -νος: nasal stem
	ClassGeron    DeclensionClass = "geron"    // γερων, -οντος
	ClassGigas    DeclensionClass = "gigas"    // γιγας, -αντος
	ClassBasileus DeclensionClass = "basileus" // βασιλευς, -εως
	ClassGenos    DeclensionClass = "genos"    // γενος, -ους (n)
	ClassSoma     DeclensionClass = "soma"     // σωμα, -ατος (n)
	ClassPolis    DeclensionClass = "polis"    // πολις, -εως (f)
	ClassIchthus  DeclensionClass = "ichthus"  // ιχθυς, -υος
)

// declensionTable maps every class to its endings. Never written after init.
var declensionTable = map[DeclensionClass]Endings{
	ClassChora:    {"α", "αν", "ας", "ᾳ", "αι", "ας", "ων", "αις"},
	ClassTime:     {"η", "ην", "ης", "ῃ", "αι", "ας", "ων", "αις"},
	ClassMousa:    {"α", "αν", "ης", "ῃ", "αι", "ας", "ων", "αις"},
	ClassKrites:   {"ης", "ην", "ου", "ῃ", "αι", "ας", "ων", "αις"},
	ClassNeanias:  {"ας", "αν", "ου", "ᾳ", "αι", "ας", "ων", "αις"},
	ClassLogos:    {"ος", "ον", "ου", "ῳ", "οι", "ους", "ων", "οις"},
	ClassDoron:    {"ον", "ον", "ου", "ῳ", "α", "α", "ων", "οις"},
	ClassPhulax:   {"", "α", "ος", "ι", "ες", "ας", "ων", "σι"},
	ClassCheimon:  {"", "α", "ος", "ι", "ες", "ας", "ων", "σι"},
	ClassGeron:    {"", "α", "ος", "ι", "ες", "ας", "ων", "σι"},
	ClassGigas:    {"", "α", "ος", "ι", "ες", "ας", "ων", "σι"},
	ClassBasileus: {"υς", "α", "ως", "ι", "ις", "ας", "ων", "υσι"},
	ClassGenos:    {"", "", "ους", "ει", "η", "η", "ων", "εσι"},
	ClassPolis:    {"ις", "ιν", "εως", "ει", "εις", "εις", "εων", "εσι"},
	ClassIchthus:  {"ς", "ν", "ος", "ι", "εις", "εις", "ων", "σι"},
	ClassSoma:     {"", "", "ος", "ι", "α", "α", "ων", "σι"},
}

// exemplars holds the canonical noun each class is named after.
var exemplars = map[DeclensionClass]string{
	ClassChora:    "χωρα, χωρας",
	ClassTime:     "τιμη, τιμης",
	ClassMousa:    "μουσα, μουσης",
	ClassKrites:   "κριτης, κριτου",
	ClassNeanias:  "νεανιας, νεανιου",
	ClassLogos:    "λογος, λογου",
	ClassDoron:    "δωρον, δωρου",
	ClassPhulax:   "φυλαξ, φυλακος",
	ClassCheimon:  "χειμων, χειμωνος",
	ClassGeron:    "γερων, γεροντος",
	ClassGigas:    "γιγας, γιγαντος",
	ClassBasileus: "βασιλευς, βασιλεως",
	ClassGenos:    "γενος, γενους",
	ClassPolis:    "πολις, πολεως",
	ClassIchthus:  "ιχθυς, ιχθυος",
	ClassSoma:     "σωμα, σωματος",
}

// AllClasses lists every declension class, first declension first.
var AllClasses = []DeclensionClass{
	ClassTime, ClassChora, ClassMousa, ClassKrites, ClassNeanias,
	ClassLogos, ClassDoron,
	ClassPhulax, ClassCheimon, ClassGeron, ClassGigas,
	ClassBasileus, ClassGenos, ClassSoma, ClassPolis, ClassIchthus,
}

// IsValid reports whether c is one of the known declension classes.
func (c DeclensionClass) IsValid() bool {
	_, ok := declensionTable[c]
	return ok
}

// Endings returns the class's ending table. Unknown classes return an empty table.
func (c DeclensionClass) Endings() Endings {
	return declensionTable[c]
}

// Exemplar returns the nominative and genitive of the noun the class is named after.
func (c DeclensionClass) Exemplar() string {
	return exemplars[c]
}
