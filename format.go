package simdnums

import "fmt"

// Format is the wire format of a buffer.
type Format uint8

const (
	// FormatText is comma separated decimal integers.
	FormatText Format = iota
	// FormatBinary is 0xFF-marked base-128 integers.
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatBinary:
		return "binary"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat maps a format name to its Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "txt":
		return FormatText, nil
	case "binary", "bin":
		return FormatBinary, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}
