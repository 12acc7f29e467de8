package scanner

// Scalar compares one byte at a time. It is the correctness baseline every
// other Comparer must match bit for bit.
type Scalar struct{}

func (Scalar) Name() string { return "scalar" }

func (Scalar) EqMask(window []byte, c byte) uint64 {
	if len(window) != WindowSize {
		panic("scanner: window is not WindowSize bytes")
	}
	var mask uint64
	for i, b := range window {
		if b == c {
			mask |= 1 << uint(i)
		}
	}
	return mask
}
