//go:build cenum

package testdata

import "github.com/Phantomical/cenum"

var Status, limit = cenum.Enum[int]( // want `Enum must initialize a single package-level variable`
	cenum.Member("OK"), // want `Member must be inlined in an enum directive`
), 42
