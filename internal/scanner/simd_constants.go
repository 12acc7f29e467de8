package scanner

// Window geometry and the byte values the classifiers look for.
const (
	// WindowSize is the number of bytes classified per step. One bit of a
	// uint64 mask per byte.
	WindowSize = 64

	// MaxBufferSize is the largest buffer whose offsets fit the uint32
	// offset list.
	MaxBufferSize = 1<<32 - 1

	Space  byte = ' '
	Comma  byte = ','
	Marker byte = 0xFF

	// Padding written past the end of the last, short window.
	TextPad   = Space
	BinaryPad byte = 0x00
)

// SWAR lane constants, one byte repeated across a uint64.
const (
	lanesLow  uint64 = 0x0101010101010101
	lanes7F   uint64 = 0x7F7F7F7F7F7F7F7F
	lanesHigh uint64 = 0x8080808080808080

	// gatherHigh collects the low bit of every byte into the top byte when
	// multiplied, byte k landing in bit 56+k.
	gatherHigh uint64 = 0x0102040810204080
)
