package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is a command entry point. It returns the process exit code.
type RunFunc func(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int

// Main runs fn with the process arguments and standard streams, cancels
// its context on SIGINT/SIGTERM, and exits with its code.
func Main(fn RunFunc) {
	os.Exit(Run(fn, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Run is Main without the process exit, for tests.
func Run(fn RunFunc, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := fn(ctx, argv, stdin, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
