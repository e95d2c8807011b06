// Package cenum provides directives for generating C-style enumerations.
//
// A C-style enumeration is a named scalar type with a fixed set of named
// constants. Unlike an exhaustive sum type, the type accepts every value of
// its underlying scalar: constructing one from an arbitrary value is always
// valid, whether or not the value matches a declared constant. Declared
// constants without an explicit value count up from the previous constant,
// starting at zero.
//
// To start with Cenum, add a build constraint to files containing Cenum
// directives:
//
//	//go:build cenum
//
// Enums are declared by assigning the [Enum] directive to a package-level
// variable. The variable name becomes the generated type name, and the type
// argument is the underlying type:
//
//	// source:
//	var Software = cenum.Enum[uint64](
//		cenum.Member("CPU_CYCLES"),
//		cenum.MemberVal("INSTRUCTIONS", 2),
//		cenum.Member("CACHE_REFERENCES"),
//	)
//
//	// generated: (simplified)
//	type Software uint64
//
//	const (
//		CPU_CYCLES       = Software(0)
//		INSTRUCTIONS     = Software(2)
//		CACHE_REFERENCES = Software(INSTRUCTIONS + 1)
//	)
//
//	func (e Software) Underlying() uint64     { return uint64(e) }
//	func (e Software) Label() (string, bool)  { ... }
//	func (e Software) String() string         { ... }
//
// After declaring enums, run the cenum command. It will generate
// cenum_gen.go for your package:
//
//	go run github.com/Phantomical/cenum/cmd/cenum
//
// The generated file carries a "//go:build !cenum" constraint, so the
// directive files and the generated file never build together. Declarations
// in directive files other than the directives themselves are copied into
// the generated file unchanged.
//
// # Member values
//
// The first member defaults to zero and every later member defaults to the
// previous member's value plus one. The chain restarts after an explicit
// value, so [A=2, B, C=2, D] resolves to 2, 3, 2, 3. Two members may
// resolve to the same value; this is legal and intentional, exactly as in a
// C enum. The generated Label method always returns the first declared
// member with a matching value.
//
// [MemberVal] splices its value argument into the generated constant, so
// any constant expression that type-checks in the directive file works:
//
//	cenum.MemberVal("VariantWithValue", 0x777)
//
// [MemberExpr] takes the value as source text instead. The text is resolved
// when the generated file is compiled, where earlier members of the same
// enum are already declared, so it may refer to them by label:
//
//	cenum.MemberExpr("VariantWithComputedValue", "DefaultVariant + 7")
//
// Referring to a member declared later, or to a name that does not exist,
// fails with an ordinary "undefined name" error when the generated code is
// compiled.
//
// # Comment directive
//
// An enum can also be declared by attaching a directive comment to a const
// declaration. Each constant is one member; a constant with no value, or
// valued [Auto], is auto-incremented. The underlying type defaults to int
// when the directive does not name one:
//
//	//cenum:enum Hardware uint64
//	const (
//		HW_CPU_CYCLES = cenum.Auto
//		HW_INSTRUCTIONS
//		HW_BUS_CYCLES = 3
//	)
//
// Because the members are real constants in the directive file, explicit
// values may refer to earlier members directly. This form generates the
// same contract as [Enum] except that its String method inlines the label
// scan instead of calling [cenumvalue.Format], and its auto-increment is
// spelled as the previous constant's stored value plus one.
//
// # Capability interface
//
// Every type generated by [Enum] or a comment directive implements
// [github.com/Phantomical/cenum/pkg/cenumvalue.Value], which exposes the
// underlying value and the label lookup. [EnumNoDebug] skips the lookup and
// the String method entirely; use it when the underlying type has no
// meaningful equality or when callers supply their own diagnostics.
package cenum

// enum is the opaque result of an enum directive. It is unexported so a
// directive can only appear where the generator looks for it: as the
// initializer of a package-level variable.
type enum *struct{}

// member is an opaque member specification for [Enum] and [EnumNoDebug].
type member *struct{}

// Auto marks an auto-incremented member in a comment-directive const block.
// The first auto member of an enum resolves to zero; every later one
// resolves to the previous member's value plus one.
const Auto = 0

// Enum declares a C-style enumeration over the underlying type T. The
// variable holding the directive names the generated type:
//
//	var Status = cenum.Enum[uint8](
//		cenum.Member("StatusIdle"),
//		cenum.Member("StatusBusy"),
//	)
//
// The generated type is a defined type over T, so construction from a raw
// value is the ordinary conversion Status(v) and is total: values outside
// the declared members are fine. Alongside the constants, Enum emits an
// Underlying method returning the raw value, a Label method returning the
// first declared member with a matching value, and a String method
// rendering "Status::StatusIdle" for declared values and "Status(42)"
// otherwise.
//
// T must be comparable because the label lookup matches by equality. If T
// does not support it, use [EnumNoDebug].
func Enum[T comparable](members ...member) enum {
	panic("cenum: not generated")
}

// EnumNoDebug is the label-lookup-free variant of [Enum]. It generates only
// the type, its constants, and the Underlying method: no Label, no String.
// T may be any type; when it does not support increment, every member must
// carry an explicit value.
func EnumNoDebug[T any](members ...member) enum {
	panic("cenum: not generated")
}

// Member declares a member with an automatically assigned value. The label
// must be a string literal holding a valid Go identifier, unique within the
// enclosing enum.
func Member(label string) member {
	panic("cenum: not generated")
}

// MemberVal declares a member with an explicit value. The value expression
// is copied into the generated constant as written, wrapped in a conversion
// to the generated type, so any constant expression valid in the directive
// file is accepted:
//
//	cenum.MemberVal("BRANCH_INSTRUCTIONS", 5)
//	cenum.MemberVal("PAGE_SIZE", 1<<12)
func MemberVal[T any](label string, value T) member {
	panic("cenum: not generated")
}

// MemberExpr declares a member whose explicit value is given as source
// text. The text must parse as a Go expression; it is spliced into the
// generated constant and resolved there, so it may refer to earlier members
// of the same enum by label:
//
//	cenum.MemberExpr("VariantWithComputedValue", "DefaultVariant + 7")
//
// Unlike [MemberVal], the expression is not type-checked at the directive
// site, and it cannot refer to imported packages.
func MemberExpr(label, value string) member {
	panic("cenum: not generated")
}
