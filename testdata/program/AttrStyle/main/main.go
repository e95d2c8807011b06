//go:build cenum

package main

import (
	"fmt"

	"github.com/Phantomical/cenum"
)

// Hardware identifies hardware events reported by the PMU.
//
//cenum:enum Hardware uint64
const (
	// HW_CPU_CYCLES counts total cycles.
	HW_CPU_CYCLES = cenum.Auto
	HW_INSTRUCTIONS
	HW_BUS_CYCLES = 12
	HW_REF_CPU_CYCLES
)

func main() {
	fmt.Println(HW_CPU_CYCLES, HW_INSTRUCTIONS, HW_BUS_CYCLES, HW_REF_CPU_CYCLES)
	fmt.Println(Hardware(7))
}
