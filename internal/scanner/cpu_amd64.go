//go:build amd64

package scanner

import (
	"golang.org/x/sys/cpu"
)

// hasWideLanes reports whether the lane-parallel comparer should be used.
// The flattener leans on POPCNT and TZCNT (BMI1).
func hasWideLanes() bool {
	return cpu.X86.HasPOPCNT && cpu.X86.HasBMI1
}
