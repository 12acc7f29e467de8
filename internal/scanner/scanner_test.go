package scanner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var comparers = []Comparer{Scalar{}, SWAR{}}

// referenceText flags offsets byte by byte: every comma, and every byte that
// is neither space nor comma and follows one (or the buffer start).
func referenceText(data []byte) []uint32 {
	var out []uint32
	prevDelim := true
	for i, b := range data {
		delim := b == Space || b == Comma
		if b == Comma || (!delim && prevDelim) {
			out = append(out, uint32(i))
		}
		prevDelim = delim
	}
	return out
}

func referenceBinary(data []byte) []uint32 {
	var out []uint32
	for i, b := range data {
		if b == Marker {
			out = append(out, uint32(i))
		}
	}
	return out
}

func randomBuffer(r *rand.Rand, n int, alphabet []byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[r.Intn(len(alphabet))]
	}
	return buf
}

func TestScanner_Basic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []uint32
	}{
		{
			name:     "simple list",
			input:    "12,34,5",
			expected: []uint32{0, 2, 3, 5, 6},
		},
		{
			name:     "spaces around delimiters",
			input:    "12, 34 ,5",
			expected: []uint32{0, 2, 4, 7, 8},
		},
		{
			name:     "leading delimiter",
			input:    ",12",
			expected: []uint32{0, 1},
		},
		{
			name:     "bad digit is not flagged",
			input:    "12F5",
			expected: []uint32{0},
		},
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, cmp := range comparers {
				s := New()
				s.SetComparer(cmp)

				indices, err := s.Scan([]byte(tt.input), Text)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, indices, cmp.Name())
				s.Release()
			}
		})
	}
}

func TestScanner_MatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	textAlphabet := []byte("0123456789 ,,  x")
	binAlphabet := []byte{0x00, 0x01, 0x7F, 0x80, 0xFF, 0xFF, 0x3C}

	for _, n := range []int{0, 1, 2, 31, 32, 63, 64, 65, 127, 128, 129, 200, 1000} {
		for round := 0; round < 20; round++ {
			text := randomBuffer(r, n, textAlphabet)
			bin := randomBuffer(r, n, binAlphabet)

			for _, cmp := range comparers {
				s := New()
				s.SetComparer(cmp)

				got, err := s.Scan(text, Text)
				require.NoError(t, err)
				require.Equal(t, referenceText(text), got, "text %s n=%d %q", cmp.Name(), n, text)

				got, err = s.Scan(bin, Binary)
				require.NoError(t, err)
				require.Equal(t, referenceBinary(bin), got, "binary %s n=%d", cmp.Name(), n)
				s.Release()
			}
		}
	}
}

func TestScanner_CrossWindowCarry(t *testing.T) {
	tests := []struct {
		name   string
		prefix int // bytes of padding before the payload
		body   string
	}{
		{"delimiter on last byte", WindowSize - 1, ",7"},
		{"space on last byte", WindowSize - 1, " 7"},
		{"value straddles boundary", WindowSize - 2, "1234"},
		{"value starts on first byte", WindowSize, "9,1"},
		{"value ends on last byte", WindowSize - 3, "555,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reference position: the same body right after a delimiter
			// inside a single window.
			inside := append([]byte(" "), tt.body...)
			s := New()
			defer s.Release()
			want, err := s.Scan(inside, Text)
			require.NoError(t, err)

			data := make([]byte, 0, tt.prefix+len(tt.body))
			for i := 0; i < tt.prefix; i++ {
				data = append(data, Space)
			}
			data = append(data, tt.body...)
			got, err := s.Scan(data, Text)
			require.NoError(t, err)

			require.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, want[i]-1, got[i]-uint32(tt.prefix))
			}
		})
	}
}

func TestScanner_Windows(t *testing.T) {
	s := New()
	defer s.Release()

	data := make([]byte, 3*WindowSize+5)
	for i := range data {
		data[i] = '1'
	}
	require.NoError(t, s.Reset(data, Text))

	var perWindow [][]uint32
	for s.Next() {
		perWindow = append(perWindow, append([]uint32(nil), s.Offsets()...))
	}
	assert.Equal(t, 4, s.Windows())
	// Only the very first byte starts a value: the carry must stay false
	// across every boundary of the digit run.
	assert.Equal(t, [][]uint32{{0}, nil, nil, nil}, perWindow)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "text", Text.String())
	assert.Equal(t, "binary", Binary.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
