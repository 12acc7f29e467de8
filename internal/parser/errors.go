package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput reports input that ends before a required element,
	// such as a marker with no digit bytes behind it, or a buffer too large
	// to address.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrMalformedDelimiter reports a byte where a value or delimiter was
	// expected but something else was found.
	ErrMalformedDelimiter = errors.New("malformed delimiter")
	// ErrMalformedNumber reports a digit run followed by a byte that is
	// neither space nor comma, or a value that overflows uint32.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrOversizedEncoding reports a binary value with more digits than a
	// uint32 can use.
	ErrOversizedEncoding = errors.New("oversized encoding")
)

// SyntaxError is a malformed-input error with the offset it was found at.
// Value is the offset of the start of the value being decoded when the
// error was raised; it equals Offset for errors not tied to a value.
type SyntaxError struct {
	Kind   error
	Offset int
	Value  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Kind, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

func syntaxError(kind error, offset, value int) *SyntaxError {
	return &SyntaxError{Kind: kind, Offset: offset, Value: value}
}
