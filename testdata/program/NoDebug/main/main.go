//go:build cenum

package main

import (
	"fmt"

	"github.com/Phantomical/cenum"
)

var Opcode = cenum.EnumNoDebug[uint16](
	cenum.Member("NOP"),
	cenum.MemberVal("JMP", 0x10),
	cenum.Member("RET"),
)

func main() {
	// Output: 0 16 17
	fmt.Println(NOP.Underlying(), JMP.Underlying(), RET.Underlying())
}
