package scanner

import "encoding/binary"

// SWAR compares eight bytes per step inside a 64-bit register.
type SWAR struct{}

func (SWAR) Name() string { return "swar64" }

func (SWAR) EqMask(window []byte, c byte) uint64 {
	if len(window) != WindowSize {
		panic("scanner: window is not WindowSize bytes")
	}
	pattern := lanesLow * uint64(c)

	var mask uint64
	for i := 0; i < WindowSize; i += 8 {
		x := binary.LittleEndian.Uint64(window[i:]) ^ pattern
		mask |= uint64(movemask8(zeroBytes(x))) << uint(i)
	}
	return mask
}

// zeroBytes sets the high bit of every byte of x that is zero and clears
// everything else. Exact: no false positives from borrows.
func zeroBytes(x uint64) uint64 {
	y := (x & lanes7F) + lanes7F
	return ^(y | x | lanes7F)
}

// movemask8 packs the high bit of each byte of hi into one byte, byte k
// of hi becoming bit k.
func movemask8(hi uint64) uint8 {
	return uint8(((hi >> 7) * gatherHigh) >> 56)
}
