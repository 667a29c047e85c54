package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/klisis/internal/application/handlers"
	"github.com/ersonp/klisis/internal/domain/entities"
)

func TestCleanCmd(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("nouns.txt", []byte("λόγος , λόγου, ὁ\nσῶμα, σώματος, το\n"), 0644))

	out, err := executeCmd(t, "clean", "nouns.txt")
	require.NoError(t, err)
	assert.Equal(t, "λογος, λογου, ὁ\nσωμα, σωματος, το\n", out)

	out, err = executeCmd(t, "clean", "nouns.txt", "-o", "clean.txt")
	require.NoError(t, err)
	assert.Equal(t, "Cleaned 2 lines to clean.txt\n", out)

	out, err = executeCmd(t, "check", "clean.txt")
	require.NoError(t, err)
	assert.Equal(t, "clean.txt has no accents\n", out)
}

func TestCheckCmd_Accented(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("nouns.txt", []byte("λογος,λογου,ὁ\nχώρα,χωρας,ἡ\n"), 0644))

	out, err := executeCmd(t, "check", "nouns.txt")
	require.Error(t, err)
	assert.Contains(t, out, "line 2 contains accents")

	var accentErr *handlers.AccentError
	require.True(t, errors.As(err, &accentErr))
	assert.Equal(t, []int{2}, accentErr.Lines)
}

func TestRunClasses(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runClasses(&buf, ""))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(entities.AllClasses))
	assert.True(t, strings.HasPrefix(lines[0], "time"))
	assert.Contains(t, buf.String(), "-, α, ος, ι, ες, ας, ων, σι")
}

func TestRunClasses_WithGender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runClasses(&buf, "ἡ"))
	assert.Contains(t, buf.String(), "ἡ, την, της, τῃ, αἱ, τας, των, ταις")

	buf.Reset()
	require.NoError(t, runClasses(&buf, "neuter"))
	assert.Contains(t, buf.String(), "το, το, του, τῳ, τα, τα, των, τοις")

	err := runClasses(&buf, "ξ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrUnrecognizedGender))
}
