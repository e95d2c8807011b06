package parse

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"github.com/Phantomical/cenum/internal/codefmt"
)

// attrPrefix marks a comment-directive on a const declaration.
const attrPrefix = "//cenum:enum"

// attrDirective returns the directive text following the "//cenum:enum"
// marker in the declaration's doc comment, if any.
func attrDirective(decl ast.Decl) (string, bool) {
	var doc *ast.CommentGroup
	switch decl := decl.(type) {
	case *ast.GenDecl:
		doc = decl.Doc
	case *ast.FuncDecl:
		doc = decl.Doc
	}
	if doc == nil {
		return "", false
	}

	for _, comment := range doc.List {
		rest, ok := strings.CutPrefix(comment.Text, attrPrefix)
		if !ok {
			continue
		}
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

// parseAttrEnum parses an [EnumSpec] from a comment-directive const
// declaration. The block's constant names become the labels, and the
// declaration order of the block is preserved.
func (p *Parser) parseAttrEnum(file *ast.File, decl ast.Decl, dir string) (*EnumSpec, error) {
	gen, ok := decl.(*ast.GenDecl)
	if !ok || gen.Tok != token.CONST {
		return nil, codefmt.Errorf(p, codefmt.Pos(decl.Pos()), "%s must be attached to a const declaration", attrPrefix)
	}

	name, typeSrc, typePkg, err := p.parseAttrHeader(file, gen, dir)
	if err != nil {
		return nil, err
	}

	spec := &EnumSpec{
		Name:    name,
		TypeSrc: typeSrc,
		TypePkg: typePkg,
		Doc:     attrDoc(gen.Doc),
		Inline:  true,

		pkg: p.Pkg(),
		pos: gen.Pos(),
		end: gen.End(),
	}

	var errs error
	seen := make(map[string]token.Pos)
	for _, s := range gen.Specs {
		val := s.(*ast.ValueSpec)

		m, err := p.parseAttrMember(val)
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

// parseAttrHeader parses "NAME [TYPE]" after the directive marker. TYPE
// defaults to int when omitted. A package-qualified TYPE resolves its
// qualifier against the directive file's imports.
func (p *Parser) parseAttrHeader(file *ast.File, gen *ast.GenDecl, dir string) (name, typeSrc string, typePkg *types.Package, err error) {
	fields := strings.Fields(dir)
	if len(fields) == 0 {
		return "", "", nil, codefmt.Errorf(p, gen, "%s needs a name for the enum type", attrPrefix)
	}

	name = fields[0]
	if !token.IsIdentifier(name) {
		return "", "", nil, codefmt.Errorf(p, gen, "%s name %q must be a valid Go identifier", attrPrefix, name)
	}

	typeSrc = "int"
	if len(fields) > 1 {
		typeSrc = strings.Join(fields[1:], " ")
		expr, perr := parser.ParseExpr(typeSrc)
		if perr != nil || !isTypeName(expr) {
			return "", "", nil, codefmt.Errorf(p, gen, "%s type %q must be a type name", attrPrefix, typeSrc)
		}

		if sel, ok := expr.(*ast.SelectorExpr); ok {
			qual := sel.X.(*ast.Ident).Name
			typePkg, ok = importedPkg(p.Pkg().TypesInfo, file, qual)
			if !ok {
				return "", "", nil, codefmt.Errorf(p, gen, "%s type %q refers to unimported package %q", attrPrefix, typeSrc, qual)
			}
		}
	}
	return name, typeSrc, typePkg, nil
}

// importedPkg resolves a package qualifier against the file's imports.
// The local name of an import is its alias when it has one.
func importedPkg(info *types.Info, file *ast.File, qual string) (*types.Package, bool) {
	for _, imp := range file.Imports {
		if pkgName := info.PkgNameOf(imp); pkgName != nil && pkgName.Name() == qual {
			return pkgName.Imported(), true
		}
	}
	return nil, false
}

// isTypeName restricts the underlying type of a comment-directive enum to
// a plain or package-qualified type name.
func isTypeName(expr ast.Expr) bool {
	switch expr := expr.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := expr.X.(*ast.Ident)
		return ok
	}
	return false
}

// parseAttrMember parses one member from a ValueSpec of the const block.
func (p *Parser) parseAttrMember(val *ast.ValueSpec) (MemberSpec, error) {
	if len(val.Names) != 1 {
		return MemberSpec{}, codefmt.Errorf(p, val, "each member must declare exactly one name")
	}
	if len(val.Values) > 1 {
		return MemberSpec{}, codefmt.Errorf(p, val, "each member must declare at most one value")
	}
	if val.Type != nil {
		return MemberSpec{}, codefmt.Errorf(p, val, "member cannot declare a type; the enum type is generated")
	}

	id := val.Names[0]
	if id.Name == "_" {
		return MemberSpec{}, codefmt.Errorf(p, id, "member name cannot be blank")
	}

	m := MemberSpec{
		Label: id.Name,
		Doc:   val.Doc,
		pos:   val.Pos(),
	}

	if len(val.Values) == 1 && !p.IsAuto(val.Values[0]) {
		m.Value = val.Values[0]
	}
	return m, nil
}

// attrDoc strips the directive marker line from a doc comment so that only
// the user's documentation passes through to the generated type.
func attrDoc(doc *ast.CommentGroup) *ast.CommentGroup {
	if doc == nil {
		return nil
	}

	var rest []*ast.Comment
	for _, comment := range doc.List {
		if strings.HasPrefix(comment.Text, attrPrefix) {
			continue
		}
		rest = append(rest, comment)
	}

	// Trim empty comment lines left over around the stripped marker.
	for len(rest) > 0 && strings.TrimSpace(rest[len(rest)-1].Text) == "//" {
		rest = rest[:len(rest)-1]
	}

	if len(rest) == 0 {
		return nil
	}
	return &ast.CommentGroup{List: rest}
}
