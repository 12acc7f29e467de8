package scanner

// ChunkSource hands out consecutive WindowSize-byte windows of a buffer.
// Full windows alias the buffer; the final short window is copied into a
// scratch array and padded with pad so classifiers always see WindowSize
// bytes.
type ChunkSource struct {
	buf     []byte
	pad     byte
	pos     int
	base    int
	n       int
	window  []byte
	scratch [WindowSize]byte
}

// NewChunkSource returns a source over buf padding the tail with pad.
func NewChunkSource(buf []byte, pad byte) *ChunkSource {
	c := &ChunkSource{}
	c.Reset(buf, pad)
	return c
}

// Reset rewinds the source onto a new buffer.
func (c *ChunkSource) Reset(buf []byte, pad byte) {
	c.buf = buf
	c.pad = pad
	c.pos = 0
	c.base = 0
	c.n = 0
	c.window = nil
}

// Next advances to the next window and reports whether there was one.
func (c *ChunkSource) Next() bool {
	if c.pos >= len(c.buf) {
		c.window = nil
		c.n = 0
		return false
	}

	c.base = c.pos
	remaining := len(c.buf) - c.pos
	if remaining >= WindowSize {
		c.window = c.buf[c.pos : c.pos+WindowSize]
		c.n = WindowSize
	} else {
		copy(c.scratch[:], c.buf[c.pos:])
		for i := remaining; i < WindowSize; i++ {
			c.scratch[i] = c.pad
		}
		c.window = c.scratch[:]
		c.n = remaining
	}
	c.pos += c.n
	return true
}

// Window returns the current window, always WindowSize bytes long.
func (c *ChunkSource) Window() []byte { return c.window }

// Base returns the buffer offset of the current window's first byte.
func (c *ChunkSource) Base() int { return c.base }

// Len returns how many bytes of the current window are real data.
func (c *ChunkSource) Len() int { return c.n }

// ValidMask returns a mask with one bit set per real data byte of the
// current window.
func (c *ChunkSource) ValidMask() uint64 {
	if c.n >= WindowSize {
		return ^uint64(0)
	}
	return uint64(1)<<uint(c.n) - 1
}

// Windows returns how many windows a buffer of n bytes spans.
func Windows(n int) int {
	return (n + WindowSize - 1) / WindowSize
}
