//go:build cenum

package testdata

//cenum:enum Speed 12345
const ( // want `//cenum:enum type "12345" must be a type name`
	SLOW = 0
)
