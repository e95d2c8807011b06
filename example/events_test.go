package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Phantomical/cenum/pkg/cenumvalue"
)

func TestSoftwareValues(t *testing.T) {
	values := []uint64{
		CPU_CYCLES.Underlying(),
		INSTRUCTIONS.Underlying(),
		CACHE_REFERENCES.Underlying(),
		CACHE_MISSES.Underlying(),
		BRANCH_INSTRUCTIONS.Underlying(),
		BRANCH_MISSES.Underlying(),
	}
	assert.Equal(t, []uint64{0, 2, 3, 4, 5, 6}, values)
}

func TestSoftwareLabel(t *testing.T) {
	label, ok := CPU_CYCLES.Label()
	assert.True(t, ok)
	assert.Equal(t, "CPU_CYCLES", label)

	_, ok = Software(12345).Label()
	assert.False(t, ok)
}

func TestSoftwareString(t *testing.T) {
	assert.Equal(t, "Software::BRANCH_MISSES", BRANCH_MISSES.String())
	assert.Equal(t, "Software::BRANCH_MISSES", fmt.Sprint(BRANCH_MISSES))

	// Values without a member still format.
	assert.Equal(t, "Software(12345)", Software(12345).String())
}

func TestSoftwareOpenConstruction(t *testing.T) {
	// Any underlying value is a valid Software, declared or not.
	e := Software(2)
	assert.Equal(t, INSTRUCTIONS, e)
	assert.Equal(t, uint64(2), e.Underlying())
}

func TestSoftwareValueInterface(t *testing.T) {
	var v cenumvalue.Value[uint64] = CACHE_MISSES
	assert.Equal(t, uint64(4), v.Underlying())
	assert.Equal(t, "Software::CACHE_MISSES", cenumvalue.Format("Software", v))
}

func TestHardwareValues(t *testing.T) {
	assert.Equal(t, uint32(0), HW_CPU_CYCLES.Underlying())
	assert.Equal(t, uint32(1), HW_STALLED_CYCLES_FRONTEND.Underlying())
	assert.Equal(t, uint32(7), HW_STALLED_CYCLES_BACKEND.Underlying())
}

func TestHardwareString(t *testing.T) {
	assert.Equal(t, "Hardware::HW_STALLED_CYCLES_BACKEND", Hardware(7).String())
	assert.Equal(t, "Hardware(5)", Hardware(5).String())
}
