package scanner

import (
	"os"
	"strconv"
	"sync"
)

// ForceScalarEnv names the environment variable that pins the scalar
// comparer regardless of detected capabilities.
const ForceScalarEnv = "SIMDNUMS_FORCE_SCALAR"

var (
	detected     Comparer
	detectedOnce sync.Once
)

// Detect returns the fastest Comparer the running CPU supports. Detection
// runs once per process.
func Detect() Comparer {
	detectedOnce.Do(func() {
		detected = pick(hasWideLanes(), forcedScalar())
	})
	return detected
}

// Select returns Scalar when forceScalar is set, otherwise Detect().
func Select(forceScalar bool) Comparer {
	if forceScalar {
		return Scalar{}
	}
	return Detect()
}

// HasWideLanes reports whether the lane-parallel comparer is available.
func HasWideLanes() bool {
	return hasWideLanes()
}

func pick(wide, forced bool) Comparer {
	if wide && !forced {
		return SWAR{}
	}
	return Scalar{}
}

func forcedScalar() bool {
	v, ok := os.LookupEnv(ForceScalarEnv)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
