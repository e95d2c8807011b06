//go:build cenum

package testdata

import "github.com/Phantomical/cenum"

var Color = cenum.Enum[uint8](
	cenum.Member("RED"),
	cenum.Member("RED"), // want `duplicate label "RED" in enum Color`
)
