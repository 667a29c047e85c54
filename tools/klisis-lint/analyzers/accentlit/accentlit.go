// Package accentlit detects accented or unnormalized Greek in source literals.
package accentlit

import (
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports string and rune literals whose source text is not NFC or
// carries an acute, grave or circumflex accent. Test files are skipped, and
// \u escapes are allowed since they are checked as written.
var Analyzer = &analysis.Analyzer{
	Name:     "accentlit",
	Doc:      "detects accented or non-NFC Greek text in string and rune literals",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var pitchAccents = map[rune]bool{
	'\u0300': true, // grave
	'\u0301': true, // acute
	'\u0342': true, // perispomeni
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.BasicLit)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		lit := n.(*ast.BasicLit)
		if lit.Kind != token.STRING && lit.Kind != token.CHAR {
			return
		}

		if strings.HasSuffix(pass.Fset.Position(lit.Pos()).Filename, "_test.go") {
			return
		}

		if !norm.NFC.IsNormalString(lit.Value) {
			pass.Reportf(lit.Pos(), "literal is not NFC-normalized")
			return
		}

		for _, r := range norm.NFD.String(lit.Value) {
			if pitchAccents[r] {
				pass.Reportf(lit.Pos(), "literal contains pitch accent %U - strip it or write it as an escape", r)
				return
			}
		}
	})

	return nil, nil
}
