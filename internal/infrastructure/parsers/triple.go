package parsers

import (
	"strings"

	"github.com/ersonp/klisis/internal/domain/entities"
)

const tripleFields = 3

// ParseTriple reads a single "nominative, genitive, article" record.
// More than three comma-separated parts is a usage error, as is fewer.
func ParseTriple(s string) (RawRecord, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != tripleFields {
		return RawRecord{}, &entities.FieldCountError{Got: len(parts), Want: tripleFields}
	}

	return RawRecord{
		Nominative: strings.TrimSpace(parts[0]),
		Genitive:   strings.TrimSpace(parts[1]),
		Gender:     strings.TrimSpace(parts[2]),
		LineNum:    1,
	}, nil
}
