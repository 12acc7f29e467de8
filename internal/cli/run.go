package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/klauspost/compress/zstd"

	"github.com/biggeezerdevelopment/simdnums"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usage = `Usage:
  simdnums encode [-raw] [-zstd] <ints...>   encode integers to binary
  simdnums decode [-text] [file|-]           decode a file or stdin
  simdnums parse <text...>                   decode comma separated text
  simdnums bench [-count N] [-n N]           time the classifiers

Common flags:
  -v int      log verbosity (0 = quiet)
  -scalar     force the byte-at-a-time classifier
`

// Run dispatches a subcommand and returns the exit code.
func Run(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		_, _ = fmt.Fprint(stderr, usage)
		return exitUsage
	}

	cmd, rest := argv[0], argv[1:]
	fs := newFlagSet("simdnums "+cmd, stderr)

	var err error
	switch cmd {
	case "encode":
		var o EncodeOptions
		if o, err = ParseEncodeArgs(fs, rest); err == nil {
			return runEncode(withLogger(ctx, o.Common, stderr), o, stdout, stderr)
		}
	case "decode":
		var o DecodeOptions
		if o, err = ParseDecodeArgs(fs, rest); err == nil {
			return runDecode(withLogger(ctx, o.Common, stderr), o, stdin, stdout, stderr)
		}
	case "parse":
		var o DecodeOptions
		var text string
		if o, text, err = ParseParseArgs(fs, rest); err == nil {
			return runParse(withLogger(ctx, o.Common, stderr), o, text, stdout, stderr)
		}
	case "bench":
		var o BenchOptions
		if o, err = ParseBenchArgs(fs, rest); err == nil {
			return runBench(withLogger(ctx, o.Common, stderr), o, stdout)
		}
	case "-h", "-help", "--help", "help":
		_, _ = fmt.Fprint(stdout, usage)
		return exitOK
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
		return exitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	return exitUsage
}

func withLogger(ctx context.Context, c Common, stderr io.Writer) context.Context {
	return logr.NewContext(ctx, newLogger(c.Verbosity, stderr).WithName("simdnums"))
}

func decodeOptions(ctx context.Context, c Common) simdnums.Options {
	opts := simdnums.DefaultOptions()
	opts.ForceScalar = c.ForceScalar
	opts.Logger = logr.FromContextOrDiscard(ctx)
	return opts
}

func runEncode(ctx context.Context, o EncodeOptions, stdout, stderr io.Writer) int {
	log := logr.FromContextOrDiscard(ctx)
	log.V(1).Info("encoding", "count", len(o.Nums), "raw", o.Raw, "zstd", o.Zstd)

	w := stdout
	var zw *zstd.Encoder
	if o.Zstd {
		var err error
		if zw, err = zstd.NewWriter(stdout); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return exitError
		}
		w = zw
	}

	style := simdnums.StyleHex
	if o.Raw {
		style = simdnums.StyleRaw
	}
	err := simdnums.NewEncoder(w, style).Encode(o.Nums...)
	if zw != nil {
		if cerr := zw.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: writing output: %v\n", err)
		return exitError
	}
	return exitOK
}

func runDecode(ctx context.Context, o DecodeOptions, stdin io.Reader, stdout, stderr io.Writer) int {
	r := stdin
	if o.Path != "-" {
		f, err := os.Open(o.Path)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: opening input: %v\n", err)
			return exitError
		}
		defer f.Close()
		r = f
	}

	format := simdnums.FormatBinary
	if o.Text {
		format = simdnums.FormatText
	}
	d := simdnums.NewDecoder(r, format)
	d.SetOptions(decodeOptions(ctx, o.Common))

	nums, err := d.Decode()
	var serr *simdnums.SyntaxError
	if err != nil && !errors.As(err, &serr) {
		_, _ = fmt.Fprintf(stderr, "error: reading input: %v\n", err)
		return exitError
	}
	return report(nums, err, stdout, stderr)
}

func runParse(ctx context.Context, o DecodeOptions, text string, stdout, stderr io.Writer) int {
	nums, err := simdnums.Decode([]byte(text), simdnums.FormatText, decodeOptions(ctx, o.Common))
	return report(nums, err, stdout, stderr)
}

// report prints every decoded value, then the error if there was one.
// Values decoded before an error are always printed.
func report(nums []uint32, err error, stdout, stderr io.Writer) int {
	var buf bytes.Buffer
	buf.WriteString("Numbers:\n")
	for _, n := range nums {
		buf.WriteString("   ")
		buf.WriteString(strconv.FormatUint(uint64(n), 10))
		buf.WriteByte('\n')
	}
	if _, werr := stdout.Write(buf.Bytes()); werr != nil {
		return exitError
	}

	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	return exitOK
}

func runBench(ctx context.Context, o BenchOptions, stdout io.Writer) int {
	log := logr.FromContextOrDiscard(ctx)

	r := rand.New(rand.NewSource(1))
	nums := make([]uint32, o.Count)
	var text []byte
	for i := range nums {
		nums[i] = r.Uint32() >> uint(r.Intn(32))
		if i > 0 {
			text = append(text, ", "...)
		}
		text = strconv.AppendUint(text, uint64(nums[i]), 10)
	}
	bin := simdnums.EncodeAll(nums)

	cases := []struct {
		name   string
		data   []byte
		format simdnums.Format
	}{
		{"text", text, simdnums.FormatText},
		{"binary", bin, simdnums.FormatBinary},
	}
	for _, c := range cases {
		for _, scalar := range []bool{true, false} {
			opts := simdnums.Options{ForceScalar: scalar || o.ForceScalar}
			start := time.Now()
			for i := 0; i < o.Iterations; i++ {
				if ctx.Err() != nil {
					return exitError
				}
				if _, err := simdnums.Decode(c.data, c.format, opts); err != nil {
					log.Error(err, "bench input failed to decode", "format", c.name)
					return exitError
				}
			}
			elapsed := time.Since(start)
			mbps := float64(len(c.data)*o.Iterations) / elapsed.Seconds() / 1e6
			_, _ = fmt.Fprintf(stdout, "%-7s %-7s %8d bytes  %10.1f MB/s\n",
				c.name, simdnums.Classifier(opts), len(c.data), mbps)
		}
	}
	return exitOK
}
