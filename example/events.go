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
	cenum.Member("BRANCH_INSTRUCTIONS"),
	cenum.Member("BRANCH_MISSES"),
)

// Hardware identifies hardware events reported by the PMU.
//
//cenum:enum Hardware uint32
const (
	HW_CPU_CYCLES = cenum.Auto
	HW_STALLED_CYCLES_FRONTEND
	HW_STALLED_CYCLES_BACKEND = 7
)

func main() {
	// Output: Software::CPU_CYCLES 2
	fmt.Println(CPU_CYCLES, INSTRUCTIONS.Underlying())

	// Output: Hardware::HW_STALLED_CYCLES_BACKEND
	fmt.Println(HW_STALLED_CYCLES_BACKEND)
}
