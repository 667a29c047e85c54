package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Column keys. Several header spellings map onto each key.
const (
	colNominative = "nom"
	colGenitive   = "gen"
	colGender     = "gender"
)

var headerAliases = map[string]string{
	"nom":        colNominative,
	"nominative": colNominative,
	"gen":        colGenitive,
	"genitive":   colGenitive,
	"gender":     colGender,
	"article":    colGender,
}

// positionalColumns is used when the input has no header row.
var positionalColumns = map[string]int{
	colNominative: 0,
	colGenitive:   1,
	colGender:     2,
}

// CSVParser parses noun records from comma-separated rows.
// A header row is optional: if every cell of the first row is a known column
// name it defines the column order, otherwise columns are nominative, genitive, gender.
type CSVParser struct{}

// Parse reads all rows from r.
func (p *CSVParser) Parse(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []RawRecord
	colIndex := positionalColumns
	first := true

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading rows: %w", err)
		}

		if first {
			first = false
			if header, ok := headerIndex(row); ok {
				colIndex = header
				continue
			}
		}

		line, _ := reader.FieldPos(0)
		records = append(records, RawRecord{
			Nominative: getColumn(row, colIndex, colNominative),
			Genitive:   getColumn(row, colIndex, colGenitive),
			Gender:     getColumn(row, colIndex, colGender),
			LineNum:    line,
		})
	}

	return records, nil
}

// headerIndex reports whether row is a header and, if so, its column positions.
func headerIndex(row []string) (map[string]int, bool) {
	colIndex := make(map[string]int, len(row))
	for i, cell := range row {
		key, ok := headerAliases[strings.ToLower(strings.TrimSpace(cell))]
		if !ok {
			return nil, false
		}
		colIndex[key] = i
	}
	return colIndex, len(colIndex) > 0
}

// getColumn safely retrieves a trimmed column value from a row.
func getColumn(row []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
