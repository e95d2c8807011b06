// Package parse discovers cenum directives in a loaded package and turns
// them into enum specifications for the synthesizer.
package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// IsCenumImport reports whether the import path refers to the cenum marker
// package, tolerating vendored copies.
func IsCenumImport(path string) bool {
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == "github.com/Phantomical/cenum"
}

// Parser walks the AST of the underlying package to collect enum
// directives.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// GetDirective returns the name of the cenum marker function if the call
// expression is a cenum directive. Otherwise, it returns false.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil {
		return "", false
	}

	pkg := callee.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsCenumImport(pkg.Path()) {
		return "", false
	}

	return callee.Name(), true
}

// IsDirective checks if the call expression is a cenum directive with the
// given name. If name is empty, it checks if the call is any cenum
// directive.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok {
		return false
	}

	if name == "" {
		return true
	}

	return calleeName == name
}

// IsAuto reports whether the expression refers to the cenum.Auto sentinel.
func (p *Parser) IsAuto(expr ast.Expr) bool {
	id, ok := tailIdent(expr)
	if !ok {
		return false
	}

	con, ok := p.Pkg().TypesInfo.ObjectOf(id).(*types.Const)
	if !ok || con.Pkg() == nil {
		return false
	}

	return con.Name() == "Auto" && IsCenumImport(con.Pkg().Path())
}

// CenumGoFiles returns the Go files that have a "//go:build cenum"
// constraint.
func (p *Parser) CenumGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildCenum(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildCenum checks if the file has a "//go:build cenum" constraint.
func hasGoBuildCenum(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if constraint.IsGoBuild(comment.Text) {
				expr, _ := constraint.Parse(comment.Text)
				expr.Eval(func(tag string) bool {
					if tag == "cenum" {
						ok = true
					}
					return true
				})
			}
		}
	}
	return ok
}

// tailIdent extracts the rightmost [ast.Ident] from the expression.
//
//	Foo
//	^^^
//	pkg.Foo
//	    ^^^
func tailIdent(expr ast.Expr) (*ast.Ident, bool) {
	expr = ast.Unparen(expr)
	switch expr := expr.(type) {
	case *ast.Ident:
		return expr, true
	case *ast.SelectorExpr:
		return tailIdent(expr.Sel)
	}
	return nil, false
}
