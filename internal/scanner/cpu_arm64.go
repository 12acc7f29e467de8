//go:build arm64

package scanner

import (
	"golang.org/x/sys/cpu"
)

func hasWideLanes() bool {
	return cpu.ARM64.HasASIMD
}
