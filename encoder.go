package simdnums

import (
	"io"
	"strconv"
	"sync"

	"github.com/biggeezerdevelopment/simdnums/internal/base128"
)

type encoder struct {
	buf []byte
}

var encoderPool = sync.Pool{
	New: func() interface{} {
		return &encoder{
			buf: make([]byte, 0, 4096),
		}
	},
}

func newEncoder() *encoder {
	e := encoderPool.Get().(*encoder)
	e.buf = e.buf[:0]
	return e
}

func (e *encoder) release() {
	if cap(e.buf) > 64*1024 {
		e.buf = make([]byte, 0, 4096)
	}
	encoderPool.Put(e)
}

func (e *encoder) marshal(nums []uint32) []byte {
	for _, n := range nums {
		e.buf = base128.Append(e.buf, n)
	}

	result := make([]byte, len(e.buf))
	copy(result, e.buf)
	return result
}

// appendHex writes one integer's encoding as "0xff 0x5 " followed by a
// newline.
func (e *encoder) appendHex(n uint32) {
	var scratch [base128.MaxLen]byte
	for _, b := range base128.Append(scratch[:0], n) {
		e.buf = append(e.buf, "0x"...)
		e.buf = strconv.AppendUint(e.buf, uint64(b), 16)
		e.buf = append(e.buf, ' ')
	}
	e.buf = append(e.buf, '\n')
}

// Style selects how an Encoder writes integers.
type Style uint8

const (
	// StyleRaw writes the binary encoding back to back.
	StyleRaw Style = iota
	// StyleHex writes each integer's bytes as hex on its own line.
	StyleHex
)

// Encoder writes binary-encoded integers to a stream.
type Encoder struct {
	w     io.Writer
	style Style
}

// NewEncoder returns an Encoder writing to w in the given style.
func NewEncoder(w io.Writer, style Style) *Encoder {
	return &Encoder{
		w:     w,
		style: style,
	}
}

// Encode writes nums with a single Write call.
func (e *Encoder) Encode(nums ...uint32) error {
	enc := newEncoder()
	defer enc.release()

	for _, n := range nums {
		if e.style == StyleHex {
			enc.appendHex(n)
		} else {
			enc.buf = base128.Append(enc.buf, n)
		}
	}

	_, err := e.w.Write(enc.buf)
	return err
}
