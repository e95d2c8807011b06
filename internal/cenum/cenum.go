package cenuminternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/Phantomical/cenum/internal/cenum/parse"
	"github.com/Phantomical/cenum/internal/cenum/synth"
	"github.com/Phantomical/cenum/internal/codefmt"
)

// Cenum generates enum code for the target package. Call [Cenum.Build] and
// then [Cenum.Generate] to get the generated code. All potential errors
// are returned by [Cenum.Build]. Once [Cenum.Build] succeeds,
// [Cenum.Generate] never fails.
type Cenum struct {
	p   *parse.Parser
	buf *bytes.Buffer
	w   *codefmt.Writer

	// ns reserves package-scope names and every name the generation will
	// declare, so local names in generated method bodies cannot shadow
	// them.
	ns codefmt.NS

	// enums keyed by the position of their declaring construct, which is
	// also the erasure key when merging directive files.
	enums map[token.Pos]*synth.Enum

	// declared holds every top-level name the generation will declare.
	declared map[string]token.Pos
}

// New creates a new [Cenum] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have
// its Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Cenum, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Cenum{
		p:   parser,
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
		ns:  codefmt.NewNS(pkg.Types.Scope()),
	}, nil
}

// Build prepares code generation by parsing directives and building enums.
// All potential errors are returned by this method. It must be called
// before [Cenum.Generate].
func (cg *Cenum) Build() error {
	specs, err := cg.p.ParseEnums()
	errs := errors.Join(err, cg.p.Validate())
	if errs != nil {
		return errs
	}

	// Enum names and labels all become top-level declarations, so they
	// share one namespace across the package.
	declared := make(map[string]token.Pos)
	cg.declared = declared
	declare := func(name string, poser codefmt.Poser) {
		if prev, ok := declared[name]; ok {
			err := codefmt.Errorf(cg.p, poser, `duplicate declaration of %q
	previous declaration at %b`, name, prev)
			errs = errors.Join(errs, err)
			return
		}
		declared[name] = poser.Pos()
		cg.ns.Reserve(name)
	}

	cg.enums = make(map[token.Pos]*synth.Enum)
	for _, spec := range specs {
		declare(spec.Name, spec)
		for _, m := range spec.Members {
			declare(m.Label, m)
		}

		e, err := synth.Build(cg.p.Pkg(), spec)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		cg.enums[spec.Pos()] = e
	}

	return errors.Join(errs, cg.checkTypeErrors())
}

// checkTypeErrors surfaces the type errors of the loaded package, except
// for the references the generation itself resolves. A directive file may
// use an enum name or label before it exists, so "undefined" errors for
// names this package is about to declare are expected.
func (cg *Cenum) checkTypeErrors() error {
	var errs error
	for _, perr := range cg.p.Pkg().Errors {
		if perr.Kind != packages.TypeError {
			continue
		}

		if name, ok := strings.CutPrefix(perr.Msg, "undefined: "); ok {
			if _, ok := cg.declared[name]; ok {
				continue
			}
		}
		errs = errors.Join(errs, perr)
	}
	return errs
}

// Generate generates enum code for the package. It must be called after
// [Cenum.Build] succeeds. It returns nil when the package declares
// nothing to generate.
func (cg *Cenum) Generate() []byte {
	cg.writeEnumCode()
	cg.mergeCode()
	if cg.buf.Len() == 0 {
		return nil
	}
	return cg.frameCode()
}

// writeEnumCode writes the declarations of every enum in source order.
func (cg *Cenum) writeEnumCode() {
	if len(cg.enums) == 0 {
		return
	}

	cg.w.Printf("// cenum: enums\n\n")

	enums := slices.Collect(maps.Values(cg.enums))
	slices.SortFunc(enums, func(a, b *synth.Enum) int {
		if a.Spec().Pos() < b.Spec().Pos() {
			return -1
		}
		if a.Spec().Pos() > b.Spec().Pos() {
			return 1
		}
		return 0
	})

	for _, e := range enums {
		local := maps.Clone(cg.ns)
		e.WriteCode(cg.w.WithNS(local))
	}
}

// mergeCode copies non-cenum code from the source files tagged with
// "//go:build cenum". It erases cenum directives to remove any references
// to the cenum package.
func (cg *Cenum) mergeCode() {
	for _, file := range cg.p.CenumGoFiles() {
		name := filepath.Base(cg.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports
					// will be collected from their usage, and then
					// rewritten as an import declaration group.
					continue
				}

				// Comment-directive const blocks are regenerated as enum
				// declarations, so the whole block is erased.
				if gen.Tok == token.CONST {
					if _, ok := cg.enums[gen.Pos()]; ok {
						continue
					}
				}
			}

			if first {
				fmt.Fprintf(cg.buf, "// %s:\n\n", name)
				first = false
			}

			// Erase enum directive variables
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.ValueSpec)
				if !ok {
					return true
				}

				// Find non-cenum values
				var names []*ast.Ident
				var values []ast.Expr
				for i := range spec.Names {
					if i >= len(spec.Values) {
						names = append(names, spec.Names[i])
						continue
					}

					if _, ok := cg.enums[ast.Unparen(spec.Values[i]).Pos()]; !ok {
						names = append(names, spec.Names[i])
						values = append(values, spec.Values[i])
					}
				}

				if len(names) == 0 {
					// Input:  var ( a = cenum.Enum[T](...) )
					// Output: var ()
					c.Delete()
				} else {
					// Input:  var ( a, b = cenum.Enum[T](...), 42 )
					// Output: var ( b = 42 )
					c.Replace(&ast.ValueSpec{
						Doc:     spec.Doc,
						Names:   names,
						Type:    spec.Type,
						Values:  values,
						Comment: spec.Comment,
					})
				}

				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok {
				if len(gen.Specs) == 0 {
					continue
				}
			}

			// Prevent import name conflicts when merging multiple files
			// into one
			decl = codefmt.RewriteImports(cg.w, decl)

			// Write rewritten declaration code
			printer.Fprint(cg.buf, cg.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(cg.buf, "\n\n")
		}
	}
}

func (cg *Cenum) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !cenum\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/Phantomical/cenum%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", cg.p.Pkg().Name)

	if len(cg.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range cg.w.Imports() {
			// Check for remaining cenum import
			if parse.IsCenumImport(imp.Path()) {
				fmt.Println("cenum import remains")
			}

			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, cg.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
