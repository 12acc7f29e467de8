package cli

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a development-mode zap logger behind logr, enabled
// down to V(verbosity). Verbosity zero discards everything.
func newLogger(verbosity int, w io.Writer) logr.Logger {
	if verbosity <= 0 {
		return logr.Discard()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.Level(-verbosity),
	)
	return zapr.NewLogger(zap.New(core, zap.Development()))
}
