// Package parsers reads noun records from inline strings and batch files.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawRecord is one noun as read from input, before classification.
type RawRecord struct {
	Nominative string `json:"nom"`
	Genitive   string `json:"gen"`
	Gender     string `json:"gender"`
	LineNum    int    `json:"-"` // Line number in source (set by parser)
}

// Parser defines the interface for parsing batches of noun records.
type Parser interface {
	Parse(r io.Reader) ([]RawRecord, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the parser for a file based on its extension.
// Anything that is not .json is read as comma-separated rows.
func ForFile(filename string) Parser {
	if strings.ToLower(filepath.Ext(filename)) == ".json" {
		return &JSONParser{}
	}
	return &CSVParser{}
}
