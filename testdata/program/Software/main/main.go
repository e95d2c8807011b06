//go:build cenum

package main

import (
	"fmt"

	"github.com/Phantomical/cenum"
)

// Software identifies software events reported by the kernel.
var Software = cenum.Enum[uint64](
	cenum.Member("CPU_CYCLES"),
	cenum.MemberVal("INSTRUCTIONS", 2),
	cenum.Member("CACHE_REFERENCES"),
	cenum.Member("CACHE_MISSES"),
	cenum.MemberVal("BRANCH_INSTRUCTIONS", 5),
	cenum.Member("Lowercase"),
)

func main() {
	// Output: 0 2 3 4 5 6
	fmt.Println(
		CPU_CYCLES.Underlying(),
		INSTRUCTIONS.Underlying(),
		CACHE_REFERENCES.Underlying(),
		CACHE_MISSES.Underlying(),
		BRANCH_INSTRUCTIONS.Underlying(),
		Lowercase.Underlying(),
	)
	fmt.Println(CPU_CYCLES)
	fmt.Println(Lowercase != BRANCH_INSTRUCTIONS)
}
