package parser

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biggeezerdevelopment/simdnums/internal/base128"
	"github.com/biggeezerdevelopment/simdnums/internal/scanner"
)

var comparers = []scanner.Comparer{scanner.Scalar{}, scanner.SWAR{}}

func forEachParser(t *testing.T, fn func(t *testing.T, p *Parser)) {
	for _, cmp := range comparers {
		t.Run(cmp.Name(), func(t *testing.T) {
			p := New(cmp, logr.Discard())
			defer p.Release()
			fn(t, p)
		})
	}
}

func TestParser_ParseText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []uint32
		wantErr error
		errAt   int
	}{
		{"simple", "12,34,5", []uint32{12, 34, 5}, nil, 0},
		{"spaces", "12, 34 ,5", []uint32{12, 34, 5}, nil, 0},
		{"surrounding spaces", "  7  ", []uint32{7}, nil, 0},
		{"trailing comma", "1,2,", []uint32{1, 2}, nil, 0},
		{"empty", "", nil, nil, 0},
		{"only spaces", "    ", nil, nil, 0},
		{"malformed number", "12F5", nil, ErrMalformedNumber, 2},
		{"leading comma", ",12", nil, ErrMalformedDelimiter, 0},
		{"bad number after good", "1,2F,3", []uint32{1}, ErrMalformedNumber, 3},
		{"missing comma", "1 2", []uint32{1}, ErrMalformedDelimiter, 2},
		{"double comma", "1,,2", []uint32{1}, ErrMalformedDelimiter, 2},
		{"letter value", "a,1", nil, ErrMalformedDelimiter, 0},
		{"earliest error wins", "1F,,2", nil, ErrMalformedNumber, 1},
		{"overflow", "4294967296", nil, ErrMalformedNumber, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forEachParser(t, func(t *testing.T, p *Parser) {
				got, err := p.ParseText([]byte(tt.input))
				assert.Equal(t, len(tt.want), len(got))
				if len(tt.want) > 0 {
					assert.Equal(t, tt.want, got)
				}

				if tt.wantErr == nil {
					require.NoError(t, err)
					return
				}
				var serr *SyntaxError
				require.ErrorAs(t, err, &serr)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.errAt, serr.Offset)
			})
		})
	}
}

func TestParser_ParseTextManyWindows(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	seps := []string{",", ", ", " ,", " , ", ",   "}

	var want []uint32
	var sb strings.Builder
	for i := 0; i < 2000; i++ {
		if i > 0 {
			sb.WriteString(seps[r.Intn(len(seps))])
		}
		n := r.Uint32() >> uint(r.Intn(32))
		want = append(want, n)
		sb.WriteString(strconv.FormatUint(uint64(n), 10))
	}

	forEachParser(t, func(t *testing.T, p *Parser) {
		got, err := p.ParseText([]byte(sb.String()))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestParser_ParseTextErrorAfterManyWindows(t *testing.T) {
	input := strings.Repeat("1,", 100) + "2;3"

	forEachParser(t, func(t *testing.T, p *Parser) {
		got, err := p.ParseText([]byte(input))
		assert.Len(t, got, 100)
		var serr *SyntaxError
		require.ErrorAs(t, err, &serr)
		assert.ErrorIs(t, err, ErrMalformedNumber)
		assert.Equal(t, 201, serr.Offset)
		assert.Equal(t, 200, serr.Value)
	})
}

func TestParser_ParseBinary(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    []uint32
		wantErr error
		errAt   int
	}{
		{"empty", nil, nil, nil, 0},
		{"single", []byte{0xFF, 0x05}, []uint32{5}, nil, 0},
		{"zero", []byte{0xFF, 0x00}, []uint32{0}, nil, 0},
		{"two", []byte{0xFF, 0x2C, 0x02, 0xFF, 0x01}, []uint32{300, 1}, nil, 0},
		{"leading garbage", []byte{0x01, 0xFF, 0x05}, nil, ErrMalformedDelimiter, 0},
		{"no markers", []byte{0x01, 0x02}, nil, ErrMalformedDelimiter, 0},
		{"lone marker", []byte{0xFF}, nil, ErrTruncatedInput, 0},
		{"empty in middle", []byte{0xFF, 0x05, 0xFF, 0xFF, 0x01}, []uint32{5}, ErrTruncatedInput, 2},
		{"oversized", []byte{0xFF, 1, 1, 1, 1, 1, 1}, nil, ErrOversizedEncoding, 0},
		{"oversized after good", []byte{0xFF, 0x05, 0xFF, 1, 1, 1, 1, 1, 1}, []uint32{5}, ErrOversizedEncoding, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forEachParser(t, func(t *testing.T, p *Parser) {
				got, err := p.ParseBinary(tt.input)
				assert.Equal(t, len(tt.want), len(got))
				if len(tt.want) > 0 {
					assert.Equal(t, tt.want, got)
				}

				if tt.wantErr == nil {
					require.NoError(t, err)
					return
				}
				var serr *SyntaxError
				require.ErrorAs(t, err, &serr)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.errAt, serr.Offset)
			})
		})
	}
}

func TestParser_ParseBinaryManyWindows(t *testing.T) {
	r := rand.New(rand.NewSource(5))

	var want []uint32
	var data []byte
	for i := 0; i < 3000; i++ {
		n := r.Uint32() >> uint(r.Intn(32))
		want = append(want, n)
		data = base128.Append(data, n)
	}

	forEachParser(t, func(t *testing.T, p *Parser) {
		got, err := p.ParseBinary(data)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestParser_ParseBinaryStraddlingWindow(t *testing.T) {
	// Six-byte units put one unit across the first window boundary.
	var want []uint32
	var data []byte
	for i := 0; i < 12; i++ {
		n := uint32(1<<28 + i)
		want = append(want, n)
		data = base128.Append(data, n)
	}
	require.Greater(t, len(data), scanner.WindowSize)

	forEachParser(t, func(t *testing.T, p *Parser) {
		got, err := p.ParseBinary(data)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestParser_Reuse(t *testing.T) {
	p := New(nil, logr.Discard())
	defer p.Release()

	_, err := p.ParseText([]byte(",1"))
	require.Error(t, err)

	got, err := p.ParseText([]byte("1,2"))
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, got)

	got, err = p.ParseBinary([]byte{0xFF, 0x03})
	require.NoError(t, err)
	assert.Equal(t, []uint32{3}, got)
}
