//go:build cenum

package testdata

import "github.com/Phantomical/cenum"

var Fruit = cenum.Enum[int](
	cenum.Member("APPLE"), // ok
)

var banana = cenum.Member("BANANA") // want `Member must be inlined in an enum directive`

func member() any {
	return cenum.MemberVal("CHERRY", 3) // want `MemberVal must be inlined in an enum directive`
}
