package simdnums

import (
	"bytes"
	"io"
	"sync"

	"github.com/go-logr/logr"

	"github.com/biggeezerdevelopment/simdnums/internal/parser"
	"github.com/biggeezerdevelopment/simdnums/internal/scanner"
)

type decoder struct {
	parser *parser.Parser
}

var decoderPool = sync.Pool{
	New: func() interface{} {
		return &decoder{
			parser: parser.New(nil, logr.Discard()),
		}
	},
}

func newDecoder(opts Options) *decoder {
	d := decoderPool.Get().(*decoder)
	d.parser.SetComparer(scanner.Select(opts.ForceScalar))
	d.parser.SetLogger(opts.Logger)
	return d
}

func (d *decoder) release() {
	d.parser.SetLogger(logr.Discard())
	decoderPool.Put(d)
}

func (d *decoder) decode(data []byte, format Format) ([]uint32, error) {
	if format == FormatBinary {
		return d.parser.ParseBinary(data)
	}
	return d.parser.ParseText(data)
}

// Decoder reads a whole stream and decodes it. Input compressed with zstd
// is inflated first.
type Decoder struct {
	r      io.Reader
	format Format
	opts   Options
}

// NewDecoder returns a Decoder reading format from r.
func NewDecoder(r io.Reader, format Format) *Decoder {
	return &Decoder{
		r:      r,
		format: format,
		opts:   DefaultOptions(),
	}
}

// SetOptions replaces the decoding options.
func (d *Decoder) SetOptions(opts Options) {
	d.opts = opts
}

// Decode reads r to EOF and decodes it. Read errors are returned as is;
// malformed input follows the partial-result policy of Decode.
func (d *Decoder) Decode() ([]uint32, error) {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}

	if isZstd(data) {
		data, err = inflate(data)
		if err != nil {
			return nil, err
		}
		d.opts.Logger.V(1).Info("inflated zstd input", "bytes", len(data))
	}

	if d.format == FormatText {
		data = trimLineEnd(data)
	}
	return Decode(data, d.format, d.opts)
}

// trimLineEnd drops one trailing line terminator, as files conventionally
// end with one.
func trimLineEnd(data []byte) []byte {
	data = bytes.TrimSuffix(data, []byte("\n"))
	return bytes.TrimSuffix(data, []byte("\r"))
}
