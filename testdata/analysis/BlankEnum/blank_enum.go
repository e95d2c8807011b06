//go:build cenum

package testdata

import "github.com/Phantomical/cenum"

var _ = cenum.Enum[int]( // want `cannot assign enum directive to blank identifier`
	cenum.Member("VOID"),
)
