package parse

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"iter"
	"strconv"

	"golang.org/x/tools/go/packages"

	"github.com/Phantomical/cenum/internal/codefmt"
)

// EnumSpec is one parsed enum declaration, from either the var-directive
// form or the comment-directive form.
type EnumSpec struct {
	// Name of the generated type. The visibility of the enum follows the
	// casing of the name.
	Name string

	// Type is the underlying type, resolved from the directive's type
	// argument. It is nil for the comment-directive form, which carries the
	// underlying type as source text in TypeSrc instead.
	Type    types.Type
	TypeSrc string

	// TypePkg is the imported package of a qualified TypeSrc, resolved
	// through the directive file's imports. It is nil when TypeSrc is a
	// plain name.
	TypePkg *types.Package

	// Members in declaration order.
	Members []MemberSpec

	// Doc passes through to the generated type declaration.
	Doc *ast.CommentGroup

	// NoDebug skips the label lookup and the String method.
	NoDebug bool

	// Inline marks the comment-directive form: its String method inlines
	// the label scan, and its auto-increment spells out the previous
	// constant's stored value plus one.
	Inline bool

	pkg *packages.Package
	pos token.Pos
	end token.Pos
}

// Pkg returns the package where the enum is declared. EnumSpec implements
// [codefmt.Pkger] by this method.
func (spec *EnumSpec) Pkg() *packages.Package { return spec.pkg }

// Pos returns the position of the declaring construct: the directive call
// for the var form, the const declaration for the comment form. The
// position doubles as the erasure key when directive files are merged into
// the generated output.
func (spec *EnumSpec) Pos() token.Pos { return spec.pos }

// End returns the end position of the declaring construct.
func (spec *EnumSpec) End() token.Pos { return spec.end }

// MemberSpec is one named constant of an enum.
type MemberSpec struct {
	Label string

	// Value is the explicit value expression from the directive file, or
	// nil. ValueSrc holds the explicit value as source text instead when
	// the value came from a MemberExpr directive.
	Value    ast.Expr
	ValueSrc string

	// Doc passes through to the generated constant.
	Doc *ast.CommentGroup

	pos token.Pos
}

// Auto reports whether the member's value is auto-incremented.
func (m MemberSpec) Auto() bool { return m.Value == nil && m.ValueSrc == "" }

// Pos returns the position of the member declaration.
func (m MemberSpec) Pos() token.Pos { return m.pos }

// ParseEnums parses all enum specifications declared in the package's
// cenum files. It collects errors across declarations instead of stopping
// at the first one.
func (p *Parser) ParseEnums() ([]*EnumSpec, error) {
	var errs error
	var specs []*EnumSpec

	for _, file := range p.CenumGoFiles() {
		for spec, err := range p.parseEnumsInFile(file) {
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			specs = append(specs, spec)
		}
	}

	if errs != nil {
		return nil, errs
	}
	return specs, nil
}

// parseEnumsInFile parses and yields [EnumSpec]s in the given file.
func (p *Parser) parseEnumsInFile(file *ast.File) iter.Seq2[*EnumSpec, error] {
	return func(yield func(*EnumSpec, error) bool) {
		for _, decl := range file.Decls {
			if dir, ok := attrDirective(decl); ok {
				if !yield(p.parseAttrEnum(file, decl, dir)) {
					return
				}
				continue
			}

			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, s := range gen.Specs {
				val := s.(*ast.ValueSpec)

				if len(val.Names) != 1 || len(val.Values) != 1 {
					// Enum directives in multi-assignments are rejected by
					// Validate.
					continue
				}

				call, ok := ast.Unparen(val.Values[0]).(*ast.CallExpr)
				if !ok || !p.isEnumDirective(call) {
					continue
				}

				doc := val.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}

				if !yield(p.parseEnumDirective(val.Names[0], call, doc)) {
					return
				}
			}
		}
	}
}

// isEnumDirective checks if the call is cenum.Enum or cenum.EnumNoDebug.
func (p *Parser) isEnumDirective(call *ast.CallExpr) bool {
	switch name, _ := p.GetDirective(call); name {
	case "Enum", "EnumNoDebug":
		return true
	}
	return false
}

// parseEnumDirective parses an [EnumSpec] from a var-directive call.
func (p *Parser) parseEnumDirective(id *ast.Ident, call *ast.CallExpr, doc *ast.CommentGroup) (*EnumSpec, error) {
	if id.Name == "_" {
		return nil, codefmt.Errorf(p, id, "cannot assign enum directive to blank identifier; the variable name becomes the type name")
	}

	name, _ := p.GetDirective(call)

	typ, err := p.directiveTypeArg(call)
	if err != nil {
		return nil, err
	}

	spec := &EnumSpec{
		Name:    id.Name,
		Type:    typ,
		Doc:     doc,
		NoDebug: name == "EnumNoDebug",

		pkg: p.Pkg(),
		pos: call.Pos(),
		end: call.End(),
	}

	var errs error
	if call.Ellipsis.IsValid() {
		errs = errors.Join(errs, codefmt.Errorf(p, call, "cannot declare members with ..."))
	}

	seen := make(map[string]token.Pos)
	for _, arg := range call.Args {
		m, err := p.parseMember(arg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if prev, ok := seen[m.Label]; ok {
			errs = errors.Join(errs, codefmt.Errorf(p, m, `duplicate label %q in enum %s
	previous declaration at %b`, m.Label, spec.Name, prev))
			continue
		}
		seen[m.Label] = m.pos

		spec.Members = append(spec.Members, m)
	}

	if errs != nil {
		return nil, errs
	}
	return spec, nil
}

// parseMember parses one member marker call among the directive arguments.
func (p *Parser) parseMember(arg ast.Expr) (MemberSpec, error) {
	call, ok := ast.Unparen(arg).(*ast.CallExpr)
	if !ok {
		return MemberSpec{}, codefmt.Errorf(p, arg, "member must be a cenum.Member, cenum.MemberVal, or cenum.MemberExpr call")
	}

	name, ok := p.GetDirective(call)
	if !ok {
		return MemberSpec{}, codefmt.Errorf(p, arg, "member must be a cenum.Member, cenum.MemberVal, or cenum.MemberExpr call")
	}

	m := MemberSpec{pos: call.Pos()}

	switch name {
	case "Member":
		label, err := p.parseLabel(call, 0)
		if err != nil {
			return MemberSpec{}, err
		}
		m.Label = label

	case "MemberVal":
		label, err := p.parseLabel(call, 0)
		if err != nil {
			return MemberSpec{}, err
		}
		if len(call.Args) < 2 {
			return MemberSpec{}, codefmt.Errorf(p, call, "missing value for %q", label)
		}
		m.Label = label
		m.Value = call.Args[1]

	case "MemberExpr":
		label, err := p.parseLabel(call, 0)
		if err != nil {
			return MemberSpec{}, err
		}
		if len(call.Args) < 2 {
			return MemberSpec{}, codefmt.Errorf(p, call, "missing value for %q", label)
		}
		m.Label = label

		src, err := p.parseStringLit(call.Args[1], "value")
		if err != nil {
			return MemberSpec{}, err
		}
		if _, err := parser.ParseExpr(src); err != nil {
			return MemberSpec{}, codefmt.Errorf(p, call.Args[1], "cannot parse value expression %q: %s", src, err.Error())
		}
		m.ValueSrc = src

	default:
		return MemberSpec{}, codefmt.Errorf(p, call, "%s is not a member directive", name)
	}

	return m, nil
}

// parseLabel parses and validates the label argument of a member marker.
func (p *Parser) parseLabel(call *ast.CallExpr, i int) (string, error) {
	if len(call.Args) <= i {
		return "", codefmt.Errorf(p, call, "missing label")
	}

	label, err := p.parseStringLit(call.Args[i], "label")
	if err != nil {
		return "", err
	}

	if !token.IsIdentifier(label) {
		return "", codefmt.Errorf(p, call.Args[i], "label %q must be a valid Go identifier", label)
	}
	return label, nil
}

// parseStringLit requires the expression to be a string literal.
func (p *Parser) parseStringLit(expr ast.Expr, what string) (string, error) {
	lit, ok := ast.Unparen(expr).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", codefmt.Errorf(p, expr, "%s must be a string literal", what)
	}

	s, _ := strconv.Unquote(lit.Value)
	return s, nil
}

// directiveTypeArg resolves the underlying type from the directive's type
// argument.
func (p *Parser) directiveTypeArg(call *ast.CallExpr) (types.Type, error) {
	fun := ast.Unparen(call.Fun)
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}

	id, ok := tailIdent(fun)
	if !ok {
		return nil, codefmt.Errorf(p, call, "cannot determine the underlying type")
	}

	inst, ok := p.Pkg().TypesInfo.Instances[id]
	if !ok || inst.TypeArgs.Len() != 1 {
		return nil, codefmt.Errorf(p, call, "cannot determine the underlying type")
	}
	return inst.TypeArgs.At(0), nil
}
