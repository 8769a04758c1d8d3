// Package log wraps zap with the small logging API used by the converter
// and its command line entry point.
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encoder kinds accepted by NewEncoder.
const (
	ConsoleEncoder = "console"
	JSONEncoder    = "json"
)

// NewNop creates silent logger.
func NewNop() Log {
	return NewFromLog(zap.NewNop())
}

// NewEncoder returns a zap encoder for the given kind. Unknown kinds fall back
// to the console encoder.
func NewEncoder(kind string) zapcore.Encoder {
	if kind == JSONEncoder {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	return zapcore.NewConsoleEncoder(cfg)
}

// NewWithWriter creates a logger writing entries to w, with a fixed level and
// a set of (optional) hooks.
func NewWithWriter(w io.Writer,
	module string,
	level zap.AtomicLevel,
	encoder zapcore.Encoder,
	hooks ...func(zapcore.Entry) error,
) Log {
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return NewFromLog(zap.New(zapcore.RegisterHooks(core, hooks...)).Named(module))
}

// NewFromLog creates a Log from an existing zap-compatible log.
func NewFromLog(l *zap.Logger) Log {
	return Log{logger: l}
}

// ParseLevel parses a textual level such as "debug" or "WARN".
func ParseLevel(text string) (zap.AtomicLevel, error) {
	return zap.ParseAtomicLevel(text)
}
