//go:build cenum

package testdata

//cenum:enum Delay tm.Duration
const ( // want `//cenum:enum type "tm\.Duration" refers to unimported package "tm"`
	NONE = 0
)
