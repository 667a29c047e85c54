package parsers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// JSONParser parses noun records from a JSON array of {"nom", "gen", "gender"} objects.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed records.
func (p *JSONParser) Parse(r io.Reader) ([]RawRecord, error) {
	var records []RawRecord

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Array index + 1 stands in for the line number
	for i := range records {
		records[i].Nominative = strings.TrimSpace(records[i].Nominative)
		records[i].Genitive = strings.TrimSpace(records[i].Genitive)
		records[i].Gender = strings.TrimSpace(records[i].Gender)
		records[i].LineNum = i + 1
	}

	return records, nil
}
