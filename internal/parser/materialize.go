package parser

import (
	"math"

	"github.com/biggeezerdevelopment/simdnums/internal/base128"
	"github.com/biggeezerdevelopment/simdnums/internal/scanner"
)

// ParseDecimal reads the digit run starting at start. The run must end at
// the buffer end, a space or a comma.
func ParseDecimal(data []byte, start int) (uint32, error) {
	var n uint64
	i := start
	for i < len(data) && isDigit(data[i]) {
		n = n*10 + uint64(data[i]-'0')
		if n > math.MaxUint32 {
			return 0, syntaxError(ErrMalformedNumber, i, start)
		}
		i++
	}

	if i < len(data) {
		if c := data[i]; c != scanner.Space && c != scanner.Comma {
			return 0, syntaxError(ErrMalformedNumber, i, start)
		}
	}
	return uint32(n), nil
}

// DecodeSpan decodes the digits of one binary span. The marker at
// span.Start is not part of the digits.
func DecodeSpan(data []byte, span Span) (uint32, error) {
	start := int(span.Start)
	switch d := span.Digits(); {
	case d == 0:
		return 0, syntaxError(ErrTruncatedInput, start, start)
	case d > base128.MaxDigits:
		return 0, syntaxError(ErrOversizedEncoding, start, start)
	}

	n, ok := base128.Decode(data[span.Start+1 : span.End])
	if !ok {
		return 0, syntaxError(ErrOversizedEncoding, start, start)
	}
	return n, nil
}
