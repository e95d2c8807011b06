//go:build cenum

package testdata

import "github.com/Phantomical/cenum"

var Color = cenum.Enum[uint8](
	cenum.Member("RED"),
)

var Paint = cenum.Enum[uint8](
	cenum.Member("CRIMSON"),
	cenum.Member("RED"), // want `duplicate declaration of "RED"`
)
