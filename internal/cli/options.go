package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errUsage = errors.New("usage")

// Common flags shared by every subcommand.
type Common struct {
	Verbosity   int
	ForceScalar bool
}

func registerCommon(fs *flag.FlagSet, c *Common) {
	fs.IntVar(&c.Verbosity, "v", 0, "log verbosity (0 = quiet)")
	fs.BoolVar(&c.ForceScalar, "scalar", false, "force the byte-at-a-time classifier")
}

// EncodeOptions configures the encode subcommand.
type EncodeOptions struct {
	Common
	Raw  bool
	Zstd bool
	Nums []uint32
}

// DecodeOptions configures the decode and parse subcommands.
type DecodeOptions struct {
	Common
	Text bool
	Path string
}

// BenchOptions configures the bench subcommand.
type BenchOptions struct {
	Common
	Count      int
	Iterations int
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// ParseEncodeArgs parses `encode [-raw] [-zstd] ints...`. Integers may be
// separate arguments or comma separated lists.
func ParseEncodeArgs(fs *flag.FlagSet, argv []string) (EncodeOptions, error) {
	var o EncodeOptions
	registerCommon(fs, &o.Common)
	fs.BoolVar(&o.Raw, "raw", false, "write raw binary instead of hex text")
	fs.BoolVar(&o.Zstd, "zstd", false, "compress the output with zstd")
	if err := fs.Parse(argv); err != nil {
		return o, err
	}

	for _, arg := range fs.Args() {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				return o, fmt.Errorf("invalid integer %q: %w", field, err)
			}
			o.Nums = append(o.Nums, uint32(n))
		}
	}
	if len(o.Nums) == 0 {
		return o, fmt.Errorf("encode: no integers given: %w", errUsage)
	}
	return o, nil
}

// ParseDecodeArgs parses `decode [-text] [file|-]`.
func ParseDecodeArgs(fs *flag.FlagSet, argv []string) (DecodeOptions, error) {
	var o DecodeOptions
	registerCommon(fs, &o.Common)
	fs.BoolVar(&o.Text, "text", false, "input is comma separated text instead of binary")
	if err := fs.Parse(argv); err != nil {
		return o, err
	}

	switch fs.NArg() {
	case 0:
		o.Path = "-"
	case 1:
		o.Path = fs.Arg(0)
	default:
		return o, fmt.Errorf("decode: at most one input: %w", errUsage)
	}
	return o, nil
}

// ParseParseArgs parses `parse <text...>`; the arguments are joined with
// spaces into one text buffer.
func ParseParseArgs(fs *flag.FlagSet, argv []string) (DecodeOptions, string, error) {
	var o DecodeOptions
	registerCommon(fs, &o.Common)
	if err := fs.Parse(argv); err != nil {
		return o, "", err
	}
	if fs.NArg() == 0 {
		return o, "", fmt.Errorf("parse: no text given: %w", errUsage)
	}
	o.Text = true
	return o, strings.Join(fs.Args(), " "), nil
}

// ParseBenchArgs parses `bench [-count N] [-n iterations]`.
func ParseBenchArgs(fs *flag.FlagSet, argv []string) (BenchOptions, error) {
	var o BenchOptions
	registerCommon(fs, &o.Common)
	fs.IntVar(&o.Count, "count", 100000, "integers per generated buffer")
	fs.IntVar(&o.Iterations, "n", 20, "decode iterations per measurement")
	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if o.Count <= 0 || o.Iterations <= 0 {
		return o, fmt.Errorf("bench: -count and -n must be positive: %w", errUsage)
	}
	return o, nil
}
