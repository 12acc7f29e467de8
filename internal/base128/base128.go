// Package base128 implements the marker-framed base-128 integer encoding.
//
// One integer is a 0xFF marker followed by 1 to 5 digit bytes. Each digit
// byte carries seven bits of the value in its low bits, least significant
// digit first; the high bit is always written as zero and ignored when
// read. The number of digits is implied by the position of the next marker
// or the end of the input, there is no continuation flag.
package base128

import (
	"math"
	"math/bits"
)

const (
	// Marker opens every encoded integer.
	Marker byte = 0xFF
	// MaxDigits is the most digits a uint32 needs.
	MaxDigits = 5
	// MaxLen is the longest encoding of one integer, marker included.
	MaxLen = 1 + MaxDigits

	digitBits = 7
	digitMask = 1<<digitBits - 1
)

// Digits returns how many digit bytes n encodes to. Zero takes one digit.
func Digits(n uint32) int {
	bitsNeeded := 32 - bits.LeadingZeros32(n)
	d := (bitsNeeded + digitBits - 1) / digitBits
	if d < 1 {
		return 1
	}
	return d
}

// Append appends the encoding of n to dst.
func Append(dst []byte, n uint32) []byte {
	d := Digits(n)
	dst = append(dst, Marker)
	for i := 0; i < d; i++ {
		dst = append(dst, byte(n&digitMask))
		n >>= digitBits
	}
	return dst
}

// Encode returns the encoding of n.
func Encode(n uint32) []byte {
	return Append(make([]byte, 0, 1+Digits(n)), n)
}

// Decode packs the low seven bits of each digit into a uint32, first digit
// lowest. It reports false when there are no digits, more than MaxDigits,
// or the digits describe a value wider than 32 bits.
func Decode(digits []byte) (uint32, bool) {
	if len(digits) == 0 || len(digits) > MaxDigits {
		return 0, false
	}
	var acc uint64
	for i, b := range digits {
		acc |= uint64(b&digitMask) << (digitBits * uint(i))
	}
	if acc > math.MaxUint32 {
		return 0, false
	}
	return uint32(acc), true
}
