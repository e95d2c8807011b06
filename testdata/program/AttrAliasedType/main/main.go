//go:build cenum

package main

import (
	"fmt"
	tm "time"

	"github.com/Phantomical/cenum"
)

// Timeout classifies retry deadlines.
//
//cenum:enum Timeout tm.Duration
const (
	NONE    = cenum.Auto
	DEFAULT = tm.Second
	LONG
)

func main() {
	fmt.Println(tm.Duration(NONE), tm.Duration(DEFAULT), tm.Duration(LONG))
	fmt.Println(DEFAULT)
	fmt.Println(Timeout(0))
}
