package synth

import (
	"fmt"

	"github.com/Phantomical/cenum/internal/cenum/parse"
	"github.com/Phantomical/cenum/internal/codefmt"
)

// valueExprs returns the generated value expression for every member in
// declaration order, registering imports for explicit values copied out of
// the directive file.
func (e *Enum) valueExprs(w *codefmt.Writer) []string {
	return planValues(e.spec, e.underlying(w), func(m parse.MemberSpec) string {
		return w.Sprintf("%c", codefmt.RewriteImports(w, m.Value))
	})
}

// planValues resolves the value expression of every member. Explicit
// values are rendered by the given function. An auto-incremented member is
// one more than the member before it, and an enum that opens with an
// auto-incremented member counts from zero. A comment-directive enum
// spells the increment on the underlying type.
func planValues(spec *parse.EnumSpec, typeSrc string, explicit func(parse.MemberSpec) string) []string {
	values := make([]string, len(spec.Members))
	for i, m := range spec.Members {
		switch {
		case m.Value != nil:
			values[i] = explicit(m)
		case m.ValueSrc != "":
			values[i] = m.ValueSrc
		case i == 0:
			values[i] = "0"
		case spec.Inline:
			values[i] = fmt.Sprintf("%s(%s) + 1", typeSrc, spec.Members[i-1].Label)
		default:
			values[i] = fmt.Sprintf("%s + 1", spec.Members[i-1].Label)
		}
	}
	return values
}
