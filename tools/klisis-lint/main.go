// klisis-lint is a custom static analyzer for the klisis source tree.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/klisis/tools/klisis-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
