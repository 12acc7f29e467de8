// Package simdnums decodes sequences of unsigned 32-bit integers with a
// two stage structural scan.
//
// Stage 1 classifies the input 64 bytes at a time into a bitmask of points
// of interest and flattens it into offsets. Stage 2 walks the offsets with
// a small state machine to build a tape, and the tape is materialized into
// values. Two formats share the pipeline: comma separated decimal text,
// and 0xFF-marked base-128 binary.
package simdnums

import (
	"github.com/go-logr/logr"

	"github.com/biggeezerdevelopment/simdnums/internal/base128"
	"github.com/biggeezerdevelopment/simdnums/internal/parser"
	"github.com/biggeezerdevelopment/simdnums/internal/scanner"
)

// SyntaxError carries the kind and offset of malformed input.
type SyntaxError = parser.SyntaxError

var (
	ErrTruncatedInput     = parser.ErrTruncatedInput
	ErrMalformedDelimiter = parser.ErrMalformedDelimiter
	ErrMalformedNumber    = parser.ErrMalformedNumber
	ErrOversizedEncoding  = parser.ErrOversizedEncoding
)

// Marker opens every binary-encoded integer.
const Marker = base128.Marker

// Options controls decoding.
type Options struct {
	// ForceScalar pins the byte-at-a-time classifier.
	ForceScalar bool
	// Logger receives debug output. The zero value discards.
	Logger logr.Logger
}

// DefaultOptions returns the default decoding options.
func DefaultOptions() Options {
	return Options{
		ForceScalar: false,
		Logger:      logr.Discard(),
	}
}

// Decode decodes data in the given format. On malformed input the values
// decoded before the first error are returned together with a
// *SyntaxError.
func Decode(data []byte, format Format, opts Options) ([]uint32, error) {
	d := newDecoder(opts)
	defer d.release()

	return d.decode(data, format)
}

// ParseText decodes comma separated decimal integers.
func ParseText(data []byte) ([]uint32, error) {
	return Decode(data, FormatText, DefaultOptions())
}

// DecodeBinary decodes marker-framed base-128 integers.
func DecodeBinary(data []byte) ([]uint32, error) {
	return Decode(data, FormatBinary, DefaultOptions())
}

// Valid reports whether data is well-formed text.
func Valid(data []byte) bool {
	_, err := ParseText(data)
	return err == nil
}

// ValidBinary reports whether data is well-formed binary.
func ValidBinary(data []byte) bool {
	_, err := DecodeBinary(data)
	return err == nil
}

// Encode returns the binary encoding of n: the marker and one to five
// base-128 digits.
func Encode(n uint32) []byte {
	return base128.Encode(n)
}

// AppendEncode appends the binary encoding of n to dst.
func AppendEncode(dst []byte, n uint32) []byte {
	return base128.Append(dst, n)
}

// EncodeAll returns the concatenated binary encodings of nums.
func EncodeAll(nums []uint32) []byte {
	e := newEncoder()
	defer e.release()

	return e.marshal(nums)
}

// Classifier names the stage 1 classifier that opts selects on this CPU.
func Classifier(opts Options) string {
	return scanner.Select(opts.ForceScalar).Name()
}
