//go:build cenum

package main

import (
	"fmt"

	"github.com/Phantomical/cenum"
)

var Axis = cenum.Enum[int](
	cenum.Member("e"),
	cenum.Member("w"),
	cenum.Member("label"),
)

func main() {
	fmt.Println(e.Underlying(), w.Underlying(), label.Underlying())
	fmt.Println(w)
	fmt.Println(label)
}
