// Staticlint runs the analyzers used on this repository.
//
// Usage:
//
//	go run ./cmd/staticlint ./...
//
// Analyzers:
//   - golang.org/x/tools passes: printf, shadow, structtag, shift, nilness, unusedresult;
//   - all SA checks of staticcheck and the ST1005, ST1012 checks of stylecheck;
//   - errcheck, whitespace, ineffassign and nilerr;
//   - osexit, which forbids os.Exit in main.main.
package main

import (
	"github.com/gordonklaus/ineffassign/pkg/ineffassign"
	"github.com/gostaticanalysis/nilerr"
	"github.com/kisielk/errcheck/errcheck"
	"github.com/ultraware/whitespace"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck/st1005"
	"honnef.co/go/tools/stylecheck/st1012"
)

func main() {
	whitespaceAnalyzer := whitespace.NewAnalyzer(nil)

	countAnalyzers := len(staticcheck.Analyzers) + 13

	mychecks := make([]*analysis.Analyzer, 0, countAnalyzers)

	mychecks = append(mychecks, []*analysis.Analyzer{
		printf.Analyzer,       // check consistency of Printf format strings and arguments
		shadow.Analyzer,       // check for possible unintended shadowing of variables
		structtag.Analyzer,    // checks struct field tags are well formed
		shift.Analyzer,        // checks for shifts that exceed the width of an integer
		nilness.Analyzer,      // checks for redundant or impossible nil comparisons
		unusedresult.Analyzer, // checks for unused results of calls to some functions

		st1005.Analyzer, // incorrectly formatted error string
		st1012.Analyzer, // poorly chosen name for error variable

		errcheck.Analyzer,    // check for unchecked errors
		whitespaceAnalyzer,   // unnecessary newlines at the start and end of functions, if, for, etc
		ineffassign.Analyzer, // assignments to variables that are never read
		nilerr.Analyzer,      // returning nil even though an error was checked to be non-nil

		OSExitCheckAnalyzer, // check os.Exit() in main()
	}...)

	// Appending SA analyzers
	for _, v := range staticcheck.Analyzers {
		mychecks = append(mychecks, v.Analyzer)
	}

	multichecker.Main(
		mychecks...,
	)
}
