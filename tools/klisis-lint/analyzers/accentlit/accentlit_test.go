package accentlit_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/ersonp/klisis/tools/klisis-lint/analyzers/accentlit"
)

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, accentlit.Analyzer, "a")
}
