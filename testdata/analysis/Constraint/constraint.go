package testdata

import "github.com/Phantomical/cenum" // want `file must have "//go:build cenum" constraint when importing cenum`

var Color = cenum.Enum[int](cenum.Member("RED"))
