package cenumvalue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Phantomical/cenum/pkg/cenumvalue"
)

// color mimics a generated enum type with members red=0, green=2, dup=2.
type color uint8

func (c color) Underlying() uint8 { return uint8(c) }

func (c color) Label() (string, bool) {
	switch {
	case c == 0:
		return "red", true
	case c == 2:
		return "green", true
	}
	return "", false
}

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "color::red", cenumvalue.Format[uint8]("color", color(0)))
	assert.Equal(t, "color::green", cenumvalue.Format[uint8]("color", color(2)))
}

func TestFormatNoMatch(t *testing.T) {
	assert.Equal(t, "color(7)", cenumvalue.Format[uint8]("color", color(7)))
}

func TestValueRoundTrip(t *testing.T) {
	var v cenumvalue.Value[uint8] = color(42)
	assert.Equal(t, uint8(42), v.Underlying())

	_, ok := v.Label()
	assert.False(t, ok)
}
