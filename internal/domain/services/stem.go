package services

import "github.com/ersonp/klisis/internal/domain/entities"

// stemTrim returns how many trailing characters of the genitive are not part of the stem.
func stemTrim(class entities.DeclensionClass) int {
	switch class {
	case entities.ClassPolis, entities.ClassGenos:
		return 3
	default:
		return 2
	}
}

// ExtractStem removes the class's genitive ending from genitive.
// Characters are counted as Unicode code points.
func ExtractStem(genitive string, class entities.DeclensionClass) (string, error) {
	n := stemTrim(class)
	runes := []rune(genitive)
	if len(runes) < n {
		return "", &entities.StemError{Genitive: genitive, Required: n}
	}
	return string(runes[:len(runes)-n]), nil
}
