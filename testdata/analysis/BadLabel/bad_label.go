//go:build cenum

package testdata

import "github.com/Phantomical/cenum"

const cherry = "CHERRY"

var Fruit = cenum.Enum[int](
	cenum.Member("not-an-identifier"), // want `label "not-an-identifier" must be a valid Go identifier`
	cenum.Member(cherry),              // want `label must be a string literal`
)
