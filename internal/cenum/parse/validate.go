package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"github.com/Phantomical/cenum/internal/codefmt"
)

// Validate checks for usages outside expected paths. It collects all
// errors instead of stopping at the first error.
//
// Many validation rules are implemented in the expected paths by narrow
// parsing functions. But some rules need to be checked globally. That's
// what this function does.
func (p *Parser) Validate() error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
	}
	errs = errors.Join(errs, p.validateMarkerPositions())
	return errs
}

// validateConstraint checks if files importing
// "github.com/Phantomical/cenum" have "//go:build cenum" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	// Find cenum import
	var cenumImport *ast.ImportSpec
	for _, imp := range file.Imports {
		if IsCenumImport(strings.Trim(imp.Path.Value, `"`)) {
			cenumImport = imp
			break
		}
	}
	if cenumImport == nil {
		return nil // No cenum import found
	}

	// Check for "//go:build cenum" constraint
	if hasGoBuildCenum(file) {
		return nil // Constraint satisfied
	}

	// This file imports cenum but has no "//go:build cenum" constraint
	return codefmt.Errorf(p, cenumImport, `file must have "//go:build cenum" constraint when importing cenum`)
}

// validateMarkerPositions checks that every marker call and every Auto
// reference sits in a position the generator knows how to erase. Markers
// anywhere else would survive into the generated code as calls into cenum,
// which panic at runtime and keep the cenum import alive.
func (p *Parser) validateMarkerPositions() error {
	enums, members, autos := p.allowedMarkerPositions()

	var errs error
	for _, file := range p.CenumGoFiles() {
		ast.Inspect(file, func(node ast.Node) bool {
			switch node := node.(type) {
			case *ast.CallExpr:
				directive, ok := p.GetDirective(node)
				if !ok {
					return true
				}

				switch directive {
				case "Enum", "EnumNoDebug":
					if _, ok := enums[node.Pos()]; !ok {
						err := codefmt.Errorf(p, node, "%s must initialize a single package-level variable", directive)
						errs = errors.Join(errs, err)
					}
				case "Member", "MemberVal", "MemberExpr":
					if _, ok := members[node.Pos()]; !ok {
						err := codefmt.Errorf(p, node, "%s must be inlined in an enum directive", directive)
						errs = errors.Join(errs, err)
					}
				}
				return true

			case *ast.Ident:
				if !p.IsAuto(node) {
					return true
				}
				if _, ok := autos[node.Pos()]; !ok {
					err := codefmt.Errorf(p, node, "Auto can only value a member of a %s const block", attrPrefix)
					errs = errors.Join(errs, err)
				}
				return false
			}
			return true
		})
	}
	return errs
}

// allowedMarkerPositions walks the expected paths syntactically and
// records the positions where markers are legal: enum directives
// initializing a single package-level variable, member markers directly
// inlined in them, and Auto valuing members of comment-directive const
// blocks.
func (p *Parser) allowedMarkerPositions() (enums, members, autos map[token.Pos]struct{}) {
	enums = make(map[token.Pos]struct{})
	members = make(map[token.Pos]struct{})
	autos = make(map[token.Pos]struct{})

	for _, file := range p.CenumGoFiles() {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			if _, ok := attrDirective(gen); ok && gen.Tok == token.CONST {
				for _, s := range gen.Specs {
					val := s.(*ast.ValueSpec)
					for _, value := range val.Values {
						if id, ok := tailIdent(value); ok && p.IsAuto(id) {
							autos[id.Pos()] = struct{}{}
						}
					}
				}
				continue
			}

			if gen.Tok != token.VAR {
				continue
			}
			for _, s := range gen.Specs {
				val := s.(*ast.ValueSpec)
				if len(val.Names) != 1 || len(val.Values) != 1 {
					continue
				}

				call, ok := ast.Unparen(val.Values[0]).(*ast.CallExpr)
				if !ok || !p.isEnumDirective(call) {
					continue
				}
				enums[call.Pos()] = struct{}{}

				for _, arg := range call.Args {
					member, ok := ast.Unparen(arg).(*ast.CallExpr)
					if !ok {
						continue
					}
					if p.IsDirective(member, "") {
						members[member.Pos()] = struct{}{}
					}
				}
			}
		}
	}
	return enums, members, autos
}
