//go:build cenum

package main

import (
	"fmt"

	"github.com/Phantomical/cenum"
)

// Status carries duplicated values on purpose: the label of a duplicated
// value is always the first declared member.
var Status = cenum.Enum[int](
	cenum.MemberVal("A1", 2),
	cenum.Member("A2"),
	cenum.Member("A3"),
	cenum.MemberVal("B1", 2),
	cenum.Member("B2"),
	cenum.Member("B3"),
)

func main() {
	fmt.Println(A1, A2, A3)
	fmt.Println(B1, B2, B3)
}
