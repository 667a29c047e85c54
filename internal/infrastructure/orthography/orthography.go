// Package orthography strips and detects accents in polytonic Greek text.
// Breathings, iota subscript and diaeresis are kept; only the pitch accents
// (acute, grave, circumflex) are treated as accents.
package orthography

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Combining pitch accents as they appear after canonical decomposition.
const (
	combiningGrave       = '\u0300'
	combiningAcute       = '\u0301'
	combiningPerispomeni = '\u0342'
)

// maxLineLength bounds a single input line.
const maxLineLength = 64 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)
	return scanner
}

func isAccent(r rune) bool {
	return r == combiningGrave || r == combiningAcute || r == combiningPerispomeni
}

func newStripper() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isAccent)), norm.NFC)
}

// StripAccents returns s with every accented vowel replaced by its unaccented
// form, e.g. ά→α, ἄ→ἀ, ᾴ→ᾳ, ῷ→ῳ.
func StripAccents(s string) string {
	out, _, err := transform.String(newStripper(), s)
	if err != nil {
		return s
	}
	return out
}

// CleanLine strips accents and removes a space before a comma.
func CleanLine(line string) string {
	return strings.ReplaceAll(StripAccents(line), " ,", ",")
}

// Clean copies r to w line by line, cleaning each line.
// Every output line ends with a newline.
func Clean(r io.Reader, w io.Writer) (int, error) {
	scanner := newLineScanner(r)
	bw := bufio.NewWriter(w)
	lines := 0

	for scanner.Scan() {
		if _, err := bw.WriteString(CleanLine(scanner.Text()) + "\n"); err != nil {
			return lines, fmt.Errorf("writing line %d: %w", lines+1, err)
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("reading line %d: %w", lines+1, err)
	}

	if err := bw.Flush(); err != nil {
		return lines, fmt.Errorf("flushing output: %w", err)
	}
	return lines, nil
}

// ContainsAccents reports whether s contains any accented vowel.
func ContainsAccents(s string) bool {
	return strings.ContainsFunc(norm.NFD.String(s), isAccent)
}

// AccentedLines returns the 1-based numbers of the lines in r that contain accents.
func AccentedLines(r io.Reader) ([]int, error) {
	scanner := newLineScanner(r)
	var lines []int

	for n := 1; scanner.Scan(); n++ {
		if ContainsAccents(scanner.Text()) {
			lines = append(lines, n)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning input: %w", err)
	}
	return lines, nil
}
