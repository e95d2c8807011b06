//go:build cenum

package main

import "github.com/Phantomical/cenum"

var Color = cenum.Enum[int](
	cenum.Member("RED"),
	cenum.Member("RED"),
)

func main() {}
