package orthography

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripAccents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "acute", input: "χώρα", expected: "χωρα"},
		{name: "grave", input: "τὸν", expected: "τον"},
		{name: "circumflex", input: "δῶρον", expected: "δωρον"},
		{name: "smooth breathing kept", input: "ἄνθρωπος", expected: "ἀνθρωπος"},
		{name: "rough breathing kept", input: "ἥλιος", expected: "ἡλιος"},
		{name: "iota subscript kept", input: "τῇ ᾠδῇ", expected: "τῃ ᾠδῃ"},
		{name: "breathing iota subscript and accent", input: "ᾄδω", expected: "ᾀδω"},
		{name: "diaeresis kept", input: "ϊ", expected: "ϊ"},
		{name: "unaccented unchanged", input: "ὁ λογος", expected: "ὁ λογος"},
		{name: "latin unchanged", input: "nom,gen,gender", expected: "nom,gen,gender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripAccents(tt.input))
		})
	}
}

func TestCleanLine(t *testing.T) {
	assert.Equal(t, "λογος, λογου, ὁ", CleanLine("λόγος , λόγου , ὁ"))
}

func TestClean(t *testing.T) {
	input := "χώρα , χώρας, ἡ\nσῶμα, σώματος, τὸ"
	var out bytes.Buffer

	lines, err := Clean(strings.NewReader(input), &out)
	require.NoError(t, err)
	assert.Equal(t, 2, lines)
	assert.Equal(t, "χωρα, χωρας, ἡ\nσωμα, σωματος, το\n", out.String())
	assert.False(t, ContainsAccents(out.String()))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestClean_WriteError(t *testing.T) {
	_, err := Clean(strings.NewReader("χώρα\n"), failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestContainsAccents(t *testing.T) {
	assert.True(t, ContainsAccents("λόγος"))
	assert.True(t, ContainsAccents("ὁ κριτὴς"))
	assert.True(t, ContainsAccents("τῷ"))
	assert.False(t, ContainsAccents("ὁ λογος, οἱ, αἱ, ἡ"))
	assert.False(t, ContainsAccents("χωρᾳ"))
	assert.False(t, ContainsAccents(""))
}

func TestLongLines(t *testing.T) {
	long := strings.Repeat("λογος,", 20000) + "λόγου"
	require.Greater(t, len(long), bufio.MaxScanTokenSize)

	lines, err := AccentedLines(strings.NewReader("χωρα\n" + long + "\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, lines)

	var out bytes.Buffer
	n, err := Clean(strings.NewReader(long), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, strings.Repeat("λογος,", 20000)+"λογου\n", out.String())
}

func TestAccentedLines(t *testing.T) {
	input := "χωρα,χωρας,ἡ\nλόγος,λογου,ὁ\nδωρον,δωρου,το\nσῶμα,σωματος,το\n"

	lines, err := AccentedLines(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, lines)
}
