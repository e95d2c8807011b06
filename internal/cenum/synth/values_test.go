package synth

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Phantomical/cenum/internal/cenum/parse"
)

func noExplicit(m parse.MemberSpec) string {
	panic("no explicit value expected for " + m.Label)
}

func TestPlanValuesCountsFromZero(t *testing.T) {
	spec := &parse.EnumSpec{
		Name: "Color",
		Members: []parse.MemberSpec{
			{Label: "RED"},
			{Label: "GREEN"},
			{Label: "BLUE"},
		},
	}

	values := planValues(spec, "int", noExplicit)
	assert.Equal(t, []string{"0", "RED + 1", "GREEN + 1"}, values)
}

func TestPlanValuesRestartsAfterExplicit(t *testing.T) {
	spec := &parse.EnumSpec{
		Name: "Level",
		Members: []parse.MemberSpec{
			{Label: "LOW"},
			{Label: "MID", ValueSrc: "10"},
			{Label: "HIGH"},
			{Label: "MAX"},
		},
	}

	values := planValues(spec, "int", noExplicit)
	assert.Equal(t, []string{"0", "10", "MID + 1", "HIGH + 1"}, values)
}

func TestPlanValuesExplicitOpening(t *testing.T) {
	spec := &parse.EnumSpec{
		Name: "Flag",
		Members: []parse.MemberSpec{
			{Label: "FIRST", ValueSrc: "1 << 4"},
			{Label: "SECOND"},
		},
	}

	values := planValues(spec, "int", noExplicit)
	assert.Equal(t, []string{"1 << 4", "FIRST + 1"}, values)
}

func TestPlanValuesInlineIncrement(t *testing.T) {
	spec := &parse.EnumSpec{
		Name:   "Hardware",
		Inline: true,
		Members: []parse.MemberSpec{
			{Label: "HW_CPU_CYCLES"},
			{Label: "HW_REF_CPU_CYCLES"},
		},
	}

	values := planValues(spec, "uint64", noExplicit)
	assert.Equal(t, []string{"0", "uint64(HW_CPU_CYCLES) + 1"}, values)
}

func TestPlanValuesRendersExplicitAST(t *testing.T) {
	spec := &parse.EnumSpec{
		Name: "Mode",
		Members: []parse.MemberSpec{
			{Label: "ON", Value: &ast.Ident{Name: "enabled"}},
			{Label: "OFF"},
		},
	}

	values := planValues(spec, "int", func(m parse.MemberSpec) string {
		return "rendered"
	})
	assert.Equal(t, []string{"rendered", "ON + 1"}, values)
}
