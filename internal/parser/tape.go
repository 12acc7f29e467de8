package parser

import "github.com/biggeezerdevelopment/simdnums/internal/scanner"

type TokenType uint8

const (
	TokenNone TokenType = iota
	TokenInteger
	TokenComma
)

func (t TokenType) String() string {
	switch t {
	case TokenInteger:
		return "integer"
	case TokenComma:
		return "comma"
	}
	return "none"
}

// Token is one entry of the text tape.
type Token struct {
	Type   TokenType
	Offset uint32
}

type tapeState uint8

const (
	expectValue tapeState = iota
	expectDelimiter
	tapeError
)

// TextTape is stage 2 for the text format. Offsets are fed to it window by
// window; it alternates between expecting a value and expecting a comma
// and stops at the first offset that breaks the alternation.
type TextTape struct {
	data   []byte
	tokens []Token
	state  tapeState
	err    error
}

// Reset clears the tape for a new buffer.
func (t *TextTape) Reset(data []byte) {
	t.data = data
	t.tokens = t.tokens[:0]
	t.state = expectValue
	t.err = nil
}

// Feed consumes ascending offsets. It returns false once the tape has
// failed; later calls are no-ops.
func (t *TextTape) Feed(offsets []uint32) bool {
	if t.state == tapeError {
		return false
	}
	for _, off := range offsets {
		c := t.data[off]
		switch {
		case t.state == expectValue && isDigit(c):
			t.tokens = append(t.tokens, Token{Type: TokenInteger, Offset: off})
			t.state = expectDelimiter
		case t.state == expectDelimiter && c == scanner.Comma:
			t.tokens = append(t.tokens, Token{Type: TokenComma, Offset: off})
			t.state = expectValue
		default:
			t.state = tapeError
			t.err = syntaxError(ErrMalformedDelimiter, int(off), int(off))
			return false
		}
	}
	return true
}

// Tokens returns the tape built so far.
func (t *TextTape) Tokens() []Token { return t.tokens }

// Err returns the error that stopped the tape, if any.
func (t *TextTape) Err() error { return t.err }

// Span is one entry of the binary tape: the marker at Start and the digit
// bytes up to End.
type Span struct {
	Start uint32
	End   uint32
}

// Digits returns the number of digit bytes in the span.
func (s Span) Digits() int {
	return int(s.End - s.Start - 1)
}

// BinaryTape is stage 2 for the binary format. Every marker offset starts a
// span that runs to the next marker, or to the end of the buffer once
// Finish is called.
type BinaryTape struct {
	data    []byte
	spans   []Span
	open    bool
	pending uint32
	err     error
}

// Reset clears the tape for a new buffer.
func (t *BinaryTape) Reset(data []byte) {
	t.data = data
	t.spans = t.spans[:0]
	t.open = false
	t.pending = 0
	t.err = nil
}

// Feed consumes ascending marker offsets. Bytes before the first marker
// cannot belong to any value and fail the tape.
func (t *BinaryTape) Feed(offsets []uint32) bool {
	if t.err != nil {
		return false
	}
	for _, off := range offsets {
		if !t.open {
			if off != 0 {
				t.err = syntaxError(ErrMalformedDelimiter, 0, 0)
				return false
			}
			t.open = true
			t.pending = off
			continue
		}
		t.spans = append(t.spans, Span{Start: t.pending, End: off})
		t.pending = off
	}
	return true
}

// Finish closes the last span at the end of the buffer.
func (t *BinaryTape) Finish() {
	if t.err != nil {
		return
	}
	if !t.open {
		if len(t.data) > 0 {
			t.err = syntaxError(ErrMalformedDelimiter, 0, 0)
		}
		return
	}
	t.spans = append(t.spans, Span{Start: t.pending, End: uint32(len(t.data))})
	t.open = false
}

// Spans returns the tape built so far.
func (t *BinaryTape) Spans() []Span { return t.spans }

// Err returns the error that stopped the tape, if any.
func (t *BinaryTape) Err() error { return t.err }

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
