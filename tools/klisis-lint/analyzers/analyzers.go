// Package analyzers provides all custom static analyzers for klisis.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/klisis/tools/klisis-lint/analyzers/accentlit"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		accentlit.Analyzer,
	}
}
