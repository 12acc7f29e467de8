package scanner

import (
	"errors"
	"sync"
)

// ErrBufferTooLarge is returned when a buffer has offsets that do not fit
// in the uint32 offset list.
var ErrBufferTooLarge = errors.New("buffer exceeds offset range")

// Kind selects which structural classifier a Scanner runs.
type Kind uint8

const (
	// Text flags commas and the first byte of every value.
	Text Kind = iota
	// Binary flags 0xFF value markers.
	Binary
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Binary:
		return "binary"
	}
	return "unknown"
}

// Scanner is stage 1: it walks a buffer window by window and yields the
// global offsets of the points of interest found in each window.
type Scanner struct {
	src        ChunkSource
	cmp        Comparer
	classifier Classifier
	carry      bool
	offsets    []uint32
	windows    int
}

var scannerPool = sync.Pool{
	New: func() interface{} {
		return &Scanner{
			offsets: make([]uint32, 0, WindowSize),
		}
	},
}

// New returns a pooled Scanner using the detected Comparer.
func New() *Scanner {
	s := scannerPool.Get().(*Scanner)
	s.cmp = Detect()
	return s
}

// Release returns the scanner to the pool. The scanner must not be used
// afterwards.
func (s *Scanner) Release() {
	s.src.Reset(nil, 0)
	s.offsets = s.offsets[:0]
	s.classifier = nil
	s.windows = 0
	scannerPool.Put(s)
}

// SetComparer overrides the comparer for subsequent Reset calls.
func (s *Scanner) SetComparer(c Comparer) {
	s.cmp = c
}

// Comparer returns the comparer in use.
func (s *Scanner) Comparer() Comparer {
	return s.cmp
}

// Reset points the scanner at data. The text classifier starts with its
// carry set so a value at offset 0 is flagged.
func (s *Scanner) Reset(data []byte, kind Kind) error {
	if uint64(len(data)) > MaxBufferSize {
		return ErrBufferTooLarge
	}
	if s.cmp == nil {
		s.cmp = Detect()
	}

	switch kind {
	case Binary:
		s.src.Reset(data, BinaryPad)
		s.classifier = MarkerClassifier{Cmp: s.cmp}
	default:
		s.src.Reset(data, TextPad)
		s.classifier = TextClassifier{Cmp: s.cmp}
	}
	s.carry = true
	s.offsets = s.offsets[:0]
	s.windows = 0
	return nil
}

// Next classifies the next window. It returns false once the buffer is
// exhausted.
func (s *Scanner) Next() bool {
	if !s.src.Next() {
		s.offsets = s.offsets[:0]
		return false
	}

	var mask uint64
	mask, s.carry = s.classifier.Classify(s.src.Window(), s.carry)
	mask &= s.src.ValidMask()
	s.offsets = AppendOffsets(s.offsets[:0], mask, uint32(s.src.Base()))
	s.windows++
	return true
}

// Offsets returns the global offsets found in the current window. The
// slice is reused by the next call to Next.
func (s *Scanner) Offsets() []uint32 {
	return s.offsets
}

// Windows returns how many windows have been classified since Reset.
func (s *Scanner) Windows() int {
	return s.windows
}

// Scan classifies all of data and returns every offset of interest.
func (s *Scanner) Scan(data []byte, kind Kind) ([]uint32, error) {
	if err := s.Reset(data, kind); err != nil {
		return nil, err
	}
	var all []uint32
	for s.Next() {
		all = append(all, s.offsets...)
	}
	return all, nil
}
