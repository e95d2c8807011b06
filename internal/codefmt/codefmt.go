// Package codefmt carries the formatting plumbing shared by the cenum
// parser and synthesizer: rendering types, expressions, and positions the
// way they appear in source, positioned errors, unique-name allocation,
// and a code writer that tracks imports.
package codefmt

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

type (
	Pkger  interface{ Pkg() *packages.Package }
	Poser  interface{ Pos() token.Pos }
	Ender  interface{ End() token.Pos }
	Exprer interface{ Expr() ast.Expr }
	Typer  interface{ Type() types.Type }
)

// Formatter renders types, expressions, and positions relative to a
// package, so that generated code and error messages read like the user's
// own source.
type Formatter struct {
	PkgPath   string
	Fset      *token.FileSet
	TypesInfo *types.Info
}

func New(pkg *packages.Package) Formatter {
	if pkg == nil {
		return Formatter{}
	}
	return Formatter{pkg.PkgPath, pkg.Fset, pkg.TypesInfo}
}

func newByPkger(pkger Pkger) Formatter {
	if pkger == nil {
		return New(nil)
	}
	return New(pkger.Pkg())
}

// qf is a [types.Qualifier]: types in the formatter's own package render
// unqualified, everything else by package name.
func (f Formatter) qf(pkg *types.Package) string {
	if pkg.Path() == f.PkgPath {
		return ""
	}
	return pkg.Name()
}

// Type returns the source representation of the given type.
//
// e.g., f.Type([types.Type for bytes.Buffer]) => "bytes.Buffer"
func (f Formatter) Type(typ types.Type) string {
	return types.TypeString(typ, f.qf)
}

// Expr returns the Go source for the given [ast.Expr].
func (f Formatter) Expr(expr ast.Expr) string {
	var b strings.Builder
	if err := format.Node(&b, f.Fset, expr); err != nil {
		panic(err) // ast.Expr is always printable by go/printer
	}
	return b.String()
}

func (f Formatter) Pos(pos token.Pos) string {
	return FormatPosition(f.Fset.Position(pos))
}

// wd is the cached working directory.
var wd, _ = os.Getwd()

func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}

	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}

// wrapPrintfArgs wraps arguments the formatter knows how to render so that
// the custom verbs below work with plain fmt formatting.
func (f Formatter) wrapPrintfArgs(args []any) []any {
	for i, arg := range args {
		switch arg := arg.(type) {
		case token.Pos, token.Position:
			args[i] = formatArg{arg, f}
		case ast.Expr, types.Type:
			args[i] = formatArg{arg, f}
		case Poser, Exprer, Typer:
			args[i] = formatArg{arg, f}
		}
	}
	return args
}

type formatArg struct {
	x   any
	fmt Formatter
}

func (f formatArg) Expr() ast.Expr {
	switch x := f.x.(type) {
	case ast.Expr:
		return x
	case Exprer:
		return x.Expr()
	}
	return nil
}

func (f formatArg) Type() types.Type {
	switch x := f.x.(type) {
	case types.Type:
		return x
	case Typer:
		return x.Type()
	}
	if expr := f.Expr(); expr != nil && f.fmt.TypesInfo != nil {
		return f.fmt.TypesInfo.TypeOf(expr)
	}
	return nil
}

func (f formatArg) Position() *token.Position {
	switch x := f.x.(type) {
	case token.Position:
		return &x
	case token.Pos:
		p := f.fmt.Fset.Position(x)
		return &p
	case Poser:
		p := f.fmt.Fset.Position(x.Pos())
		return &p
	}
	return nil
}

// Format implements the fmt.Formatter interface.
//
// Supported verbs:
//
//	%t: types.Type - source form
//	%c: ast.Expr - code form
//	%b: token.Position - file:line:column form
//
// Other verbs fall back to the default fmt formatting.
func (f formatArg) Format(s fmt.State, verb rune) {
	switch verb {
	case 't':
		if typ := f.Type(); typ != nil {
			_, _ = s.Write([]byte(f.fmt.Type(typ)))
			return
		}
		fmt.Fprintf(s, "[%%t cannot format %T]", f.x)

	case 'c':
		if expr := f.Expr(); expr != nil {
			_, _ = s.Write([]byte(f.fmt.Expr(expr)))
			return
		}
		fmt.Fprintf(s, "[%%c cannot format %T]", f.x)

	case 'b':
		if pos := f.Position(); pos != nil {
			_, _ = s.Write([]byte(FormatPosition(*pos)))
			return
		}
		fmt.Fprintf(s, "[%%b cannot format %T]", f.x)

	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.x)
	}
}

func (f Formatter) Sprintf(format string, args ...any) string {
	args = f.wrapPrintfArgs(args)
	return fmt.Sprintf(format, args...)
}

func (f Formatter) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	args = f.wrapPrintfArgs(args)
	return fmt.Fprintf(w, format, args...)
}

// Sprintf is a shorthand for [Formatter.Sprintf] with a throwaway
// formatter for the given package.
func Sprintf(pkger Pkger, format string, args ...any) string {
	return newByPkger(pkger).Sprintf(format, args...)
}

// Errorf is a shorthand for [Formatter.Errorf].
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).Errorf(poser, format, args...)
}

type poser struct{ pos token.Pos }

func (p poser) Pos() token.Pos { return p.pos }

// Pos adapts a bare position to [Poser].
func Pos(pos token.Pos) Poser { return poser{pos} }
