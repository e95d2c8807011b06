// Package cenumvalue defines the capability interface shared by all enum
// types generated by the full cenum directive, and the diagnostic formatter
// their String methods defer to.
package cenumvalue

import "fmt"

// Value is implemented by every enum type the full [Enum directive]
// generates. It exposes the two halves of the C-enum contract: extraction
// of the raw stored value and the label lookup. Construction from a raw
// value is the ordinary Go conversion to the enum type and is total; it is
// not part of the interface because a defined type already provides it.
//
// [Enum directive]: https://pkg.go.dev/github.com/Phantomical/cenum#Enum
type Value[T comparable] interface {
	// Underlying returns the raw stored value.
	Underlying() T

	// Label returns the label of the first declared member whose value
	// equals the stored value, in declaration order. It reports false when
	// the stored value matches no declared member.
	Label() (string, bool)
}

// Format renders a diagnostic representation of v. Declared values render
// as "Name::LABEL"; values outside the declared set render as the type
// name applied to the raw value, such as "Software(42)".
func Format[T comparable](name string, v Value[T]) string {
	if label, ok := v.Label(); ok {
		return name + "::" + label
	}
	return fmt.Sprintf("%s(%v)", name, v.Underlying())
}
