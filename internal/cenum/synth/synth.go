// Package synth turns parsed enum specifications into generated Go
// declarations: the defined type, its constant block, and the value
// methods.
package synth

import (
	"errors"
	"go/ast"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/Phantomical/cenum/internal/cenum/parse"
	"github.com/Phantomical/cenum/internal/codefmt"
)

// Enum synthesizes the declarations for one enum.
type Enum struct {
	pkg  *packages.Package
	spec *parse.EnumSpec

	// recv is the method receiver name, kept clear of the member labels
	// referenced in method bodies.
	recv string
}

func (e *Enum) Pkg() *packages.Package { return e.pkg }
func (e *Enum) Name() string           { return e.spec.Name }
func (e *Enum) Spec() *parse.EnumSpec  { return e.spec }

// Build checks the semantic constraints of the spec and creates an [Enum]
// ready to write code. It collects all errors instead of stopping at the
// first error.
func Build(pkg *packages.Package, spec *parse.EnumSpec) (*Enum, error) {
	e := &Enum{pkg: pkg, spec: spec}

	var errs error
	for _, m := range spec.Members {
		if m.Value == nil {
			continue
		}

		// Explicit values become constant declarations, so they must be
		// constant expressions themselves.
		if tv, ok := pkg.TypesInfo.Types[m.Value]; !ok || tv.Value == nil {
			err := codefmt.Errorf(e, m, "value of %s must be a constant expression, but got %c", m.Label, m.Value)
			errs = errors.Join(errs, err)
		}
	}

	if errs != nil {
		return nil, errs
	}
	return e, nil
}

// WriteCode writes the declarations for the enum: the type, the constant
// block, Underlying, and unless the enum opted out of labels, Label,
// String, and the capability assertion.
func (e *Enum) WriteCode(w *codefmt.Writer) {
	e.recv = w.Name("e")

	e.writeTypeCode(w)
	e.writeConstCode(w)
	e.writeUnderlyingCode(w)

	if e.spec.NoDebug {
		return
	}

	e.writeLabelCode(w)
	e.writeStringCode(w)

	if !e.spec.Inline {
		// var _ cenumvalue.Value[T] = *new(Name)
		w.Printf("var _ %s.Value[%s] = *new(%s)\n\n",
			w.Import("github.com/Phantomical/cenum/pkg/cenumvalue", "cenumvalue"),
			e.underlying(w), e.spec.Name)
	}
}

// underlying returns the source form of the underlying type, registering
// any import it needs.
func (e *Enum) underlying(w *codefmt.Writer) string {
	if e.spec.Type != nil {
		return w.Sprintf("%t", e.spec.Type)
	}

	src := e.spec.TypeSrc
	if e.spec.TypePkg != nil {
		// The parser resolved the qualifier against the directive file's
		// imports, which may alias the package. Emit the package's declared
		// name and register the import.
		_, typeName, _ := strings.Cut(src, ".")
		return w.Import(e.spec.TypePkg.Path(), e.spec.TypePkg.Name()) + "." + typeName
	}
	return src
}

func (e *Enum) writeTypeCode(w *codefmt.Writer) {
	writeDoc(w, e.spec.Doc)
	w.Printf("type %s %s\n\n", e.spec.Name, e.underlying(w))
}

func (e *Enum) writeConstCode(w *codefmt.Writer) {
	if len(e.spec.Members) == 0 {
		return
	}

	values := e.valueExprs(w)

	w.Printf("const (\n")
	for i, m := range e.spec.Members {
		writeDoc(w, m.Doc)
		w.Printf("%s = %s(%s)\n", m.Label, e.spec.Name, values[i])
	}
	w.Printf(")\n\n")
}

func (e *Enum) writeUnderlyingCode(w *codefmt.Writer) {
	typ := e.underlying(w)
	w.Printf("// Underlying returns the value of the enum as its underlying type.\n")
	w.Printf("func (%s %s) Underlying() %s { return %s(%s) }\n\n", e.recv, e.spec.Name, typ, typ, e.recv)
}

// writeLabelCode writes the label lookup. The scan follows declaration
// order, so when members share a value the first declared label wins. A
// switch over boolean cases keeps duplicate values legal.
func (e *Enum) writeLabelCode(w *codefmt.Writer) {
	w.Printf("// Label returns the name of the first declared member with a matching\n")
	w.Printf("// value. It returns false when no member matches.\n")
	w.Printf("func (%s %s) Label() (string, bool) {\n", e.recv, e.spec.Name)
	if len(e.spec.Members) > 0 {
		w.Printf("switch {\n")
		for _, m := range e.spec.Members {
			w.Printf("case %s == %s:\n", e.recv, m.Label)
			w.Printf("return %q, true\n", m.Label)
		}
		w.Printf("}\n")
	}
	w.Printf("return \"\", false\n")
	w.Printf("}\n\n")
}

func (e *Enum) writeStringCode(w *codefmt.Writer) {
	name := e.spec.Name

	w.Printf("// String formats the value as %q, or %q when no member\n",
		name+"::LABEL", name+"(value)")
	w.Printf("// matches.\n")

	if !e.spec.Inline {
		w.Printf("func (%s %s) String() string { return %s.Format(%q, %s) }\n\n",
			e.recv, name, w.Import("github.com/Phantomical/cenum/pkg/cenumvalue", "cenumvalue"), name, e.recv)
		return
	}

	fmtName := w.Import("fmt", "fmt")
	label := w.Name("label")
	w.Printf("func (%s %s) String() string {\n", e.recv, name)
	w.Printf("if %s, ok := %s.Label(); ok {\n", label, e.recv)
	w.Printf("return %q + %s\n", name+"::", label)
	w.Printf("}\n")
	w.Printf("return %s.Sprintf(\"%s(%%v)\", %s(%s))\n", fmtName, name, e.underlying(w), e.recv)
	w.Printf("}\n\n")
}

// writeDoc passes a doc comment through to the generated code.
func writeDoc(w *codefmt.Writer, doc *ast.CommentGroup) {
	if doc == nil {
		return
	}
	for _, comment := range doc.List {
		w.Printf("%s\n", comment.Text)
	}
}
