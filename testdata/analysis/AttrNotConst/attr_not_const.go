//go:build cenum

package testdata

//cenum:enum Mode
var ( // want `//cenum:enum must be attached to a const declaration`
	on = 1
)

var _ = on
