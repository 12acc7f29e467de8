package scanner

import "math/bits"

// Flatten returns the positions of the set bits of mask in ascending order.
func Flatten(mask uint64) []uint32 {
	return AppendOffsets(nil, mask, 0)
}

// AppendOffsets appends base plus the position of every set bit of mask to
// dst, ascending, and returns the extended slice. Exactly
// bits.OnesCount64(mask) entries are appended.
//
// Extraction runs eight bits per round. A round may write past the last
// set bit; those slots are inside spare capacity and are cut off before
// returning.
func AppendOffsets(dst []uint32, mask uint64, base uint32) []uint32 {
	n := bits.OnesCount64(mask)
	if n == 0 {
		return dst
	}

	start := len(dst)
	need := start + (n+7)&^7
	if cap(dst) < need {
		grown := make([]uint32, start, need+need/2)
		copy(grown, dst)
		dst = grown
	}
	out := dst[start:need]

	for i := 0; mask != 0; i += 8 {
		out[i+0] = base + uint32(bits.TrailingZeros64(mask))
		mask &= mask - 1
		out[i+1] = base + uint32(bits.TrailingZeros64(mask))
		mask &= mask - 1
		out[i+2] = base + uint32(bits.TrailingZeros64(mask))
		mask &= mask - 1
		out[i+3] = base + uint32(bits.TrailingZeros64(mask))
		mask &= mask - 1
		out[i+4] = base + uint32(bits.TrailingZeros64(mask))
		mask &= mask - 1
		out[i+5] = base + uint32(bits.TrailingZeros64(mask))
		mask &= mask - 1
		out[i+6] = base + uint32(bits.TrailingZeros64(mask))
		mask &= mask - 1
		out[i+7] = base + uint32(bits.TrailingZeros64(mask))
		mask &= mask - 1
	}

	return dst[:start+n]
}
