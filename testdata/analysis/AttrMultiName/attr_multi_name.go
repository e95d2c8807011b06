//go:build cenum

package testdata

//cenum:enum Pair
const (
	first, second = 1, 2 // want `each member must declare exactly one name`
)
