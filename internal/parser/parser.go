package parser

import (
	"github.com/go-logr/logr"

	"github.com/biggeezerdevelopment/simdnums/internal/scanner"
)

// Parser runs the full pipeline: windows are classified and flattened by
// the scanner, fed to a tape as they arrive, and the tape is then
// materialized in order.
type Parser struct {
	scanner *scanner.Scanner
	text    TextTape
	binary  BinaryTape
	log     logr.Logger
}

// New returns a Parser using cmp for stage 1. A nil cmp selects the
// detected comparer.
func New(cmp scanner.Comparer, log logr.Logger) *Parser {
	s := scanner.New()
	if cmp != nil {
		s.SetComparer(cmp)
	}
	return &Parser{
		scanner: s,
		log:     log.WithName("parser"),
	}
}

// Release hands the scanner back to its pool. The parser must not be used
// afterwards.
func (p *Parser) Release() {
	p.scanner.Release()
	p.scanner = nil
	p.text.Reset(nil)
	p.binary.Reset(nil)
}

// SetComparer swaps the stage 1 comparer.
func (p *Parser) SetComparer(cmp scanner.Comparer) {
	p.scanner.SetComparer(cmp)
}

// SetLogger replaces the parser's logger.
func (p *Parser) SetLogger(log logr.Logger) {
	p.log = log.WithName("parser")
}

// Comparer returns the stage 1 comparer in use.
func (p *Parser) Comparer() scanner.Comparer {
	return p.scanner.Comparer()
}

// ParseText decodes comma separated decimal integers. On malformed input
// it returns every value decoded before the first error together with a
// *SyntaxError.
func (p *Parser) ParseText(data []byte) ([]uint32, error) {
	if err := p.scanner.Reset(data, scanner.Text); err != nil {
		return nil, syntaxError(ErrTruncatedInput, 0, 0)
	}
	p.text.Reset(data)
	for p.scanner.Next() {
		if !p.text.Feed(p.scanner.Offsets()) {
			break
		}
	}

	tokens := p.text.Tokens()
	p.log.V(2).Info("text tape built", "bytes", len(data), "windows", p.scanner.Windows(), "tokens", len(tokens))

	values := make([]uint32, 0, len(tokens)/2+1)
	for _, tok := range tokens {
		if tok.Type != TokenInteger {
			continue
		}
		n, err := ParseDecimal(data, int(tok.Offset))
		if err != nil {
			p.log.V(1).Info("malformed number", "error", err.Error(), "decoded", len(values))
			return values, err
		}
		values = append(values, n)
	}

	if err := p.text.Err(); err != nil {
		p.log.V(1).Info("malformed tape", "error", err.Error(), "decoded", len(values))
		return values, err
	}
	return values, nil
}

// ParseBinary decodes marker-framed base-128 integers. Errors follow the
// same partial-result policy as ParseText.
func (p *Parser) ParseBinary(data []byte) ([]uint32, error) {
	if err := p.scanner.Reset(data, scanner.Binary); err != nil {
		return nil, syntaxError(ErrTruncatedInput, 0, 0)
	}
	p.binary.Reset(data)
	for p.scanner.Next() {
		if !p.binary.Feed(p.scanner.Offsets()) {
			break
		}
	}
	p.binary.Finish()

	spans := p.binary.Spans()
	p.log.V(2).Info("binary tape built", "bytes", len(data), "windows", p.scanner.Windows(), "spans", len(spans))

	values := make([]uint32, 0, len(spans))
	for _, span := range spans {
		n, err := DecodeSpan(data, span)
		if err != nil {
			p.log.V(1).Info("malformed encoding", "error", err.Error(), "decoded", len(values))
			return values, err
		}
		values = append(values, n)
	}

	if err := p.binary.Err(); err != nil {
		p.log.V(1).Info("malformed tape", "error", err.Error(), "decoded", len(values))
		return values, err
	}
	return values, nil
}
