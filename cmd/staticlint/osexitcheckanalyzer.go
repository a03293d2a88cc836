package main

import (
	"go/ast"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// OSExitCheckAnalyzer reports direct os.Exit calls in main.main.
var OSExitCheckAnalyzer = &analysis.Analyzer{
	Name: "osexit",
	Doc:  "check os.Exit() in main() of package main",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		// test binaries generate their own main in the build cache
		if isGoBuildCacheFile(pass.Fset.File(file.Pos()).Name()) || ast.IsGenerated(file) {
			continue
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
				continue
			}

			ast.Inspect(fn.Body, func(node ast.Node) bool {
				call, ok := node.(*ast.CallExpr)
				if ok && isOSExit(pass, call) {
					pass.Reportf(call.Pos(), "os.Exit called in main function of main package")
				}
				return true
			})
		}
	}

	return nil, nil
}

// isOSExit matches os.Exit under any import name.
func isOSExit(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	return ok && fn.Pkg() != nil && fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}

func isGoBuildCacheFile(path string) bool {
	return strings.Contains(filepath.ToSlash(path), "/go-build/")
}
