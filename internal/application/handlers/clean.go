package handlers

import (
	"fmt"
	"io"
	"os"

	"github.com/ersonp/klisis/internal/infrastructure/orthography"
)

// AccentError reports an input file that still carries accents.
type AccentError struct {
	Path  string
	Lines []int
}

func (e *AccentError) Error() string {
	return fmt.Sprintf("file %s contains accents, run 'klisis clean' first", e.Path)
}

// CleanHandler handles accent stripping and accent checks on input files.
type CleanHandler struct{}

// NewCleanHandler creates a new clean handler.
func NewCleanHandler() *CleanHandler {
	return &CleanHandler{}
}

// Handle writes an accent-free copy of the file at filePath to w
// and returns the number of lines written.
func (h *CleanHandler) Handle(filePath string, w io.Writer) (int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	lines, err := orthography.Clean(file, w)
	if err != nil {
		return lines, fmt.Errorf("cleaning %s: %w", filePath, err)
	}
	return lines, nil
}

// Check returns the 1-based numbers of the lines that contain accents.
func (h *CleanHandler) Check(filePath string) ([]int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	lines, err := orthography.AccentedLines(file)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", filePath, err)
	}
	return lines, nil
}

// RequireClean returns an *AccentError if the file contains accents.
func (h *CleanHandler) RequireClean(filePath string) error {
	lines, err := h.Check(filePath)
	if err != nil {
		return err
	}
	if len(lines) > 0 {
		return &AccentError{Path: filePath, Lines: lines}
	}
	return nil
}
