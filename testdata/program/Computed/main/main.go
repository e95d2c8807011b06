//go:build cenum

package main

import (
	"fmt"

	"github.com/Phantomical/cenum"
)

const base = 10

var Level = cenum.Enum[int](
	cenum.MemberVal("BASE", base),
	cenum.MemberExpr("NEXT", "BASE + 5"),
	cenum.Member("AFTER"),
)

func main() {
	// Output: 10 15 16
	fmt.Println(BASE.Underlying(), NEXT.Underlying(), AFTER.Underlying())
}
