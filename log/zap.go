package log

import (
	"time"

	"go.uber.org/zap"
)

// Log is an exported type that embeds our logger.
type Log struct {
	logger *zap.Logger
}

// Sync flushes buffered entries.
func (l Log) Sync() error {
	return l.logger.Sync()
}

// Field is a log field holding a name and value.
type Field zap.Field

// Field satisfy loggable field interface.
func (f Field) Field() Field { return f }

// String returns a string Field.
func String(name, val string) Field {
	return Field(zap.String(name, val))
}

// Int returns an int Field.
func Int(name string, val int) Field {
	return Field(zap.Int(name, val))
}

// Duration returns a duration field.
func Duration(name string, val time.Duration) Field {
	return Field(zap.Duration(name, val))
}

// Stringer returns a field for a fmt.Stringer.
func Stringer(name string, val interface{ String() string }) Field {
	return Field(zap.Stringer(name, val))
}

// Err returns an error field.
func Err(v error) Field {
	return Field(zap.NamedError("errmsg", v))
}

// LoggableField as an interface to enable every type to be used as a log field.
type LoggableField interface {
	Field() Field
}

func unpack(fields []LoggableField) []zap.Field {
	flds := make([]zap.Field, len(fields))
	for i, f := range fields {
		flds[i] = zap.Field(f.Field())
	}
	return flds
}

// FieldLogger is a logger that only logs messages with fields. It does not support formatting.
type FieldLogger struct {
	l *zap.Logger
}

// With returns a logger object that logs fields.
func (l Log) With() FieldLogger {
	return FieldLogger{l.logger}
}

// WithName returns a logger with the given name appended.
func (l Log) WithName(prefix string) Log {
	return Log{logger: l.logger.Named(prefix)}
}

// Info prints message with fields.
func (fl FieldLogger) Info(msg string, fields ...LoggableField) {
	fl.l.Info(msg, unpack(fields)...)
}

// Debug prints message with fields.
func (fl FieldLogger) Debug(msg string, fields ...LoggableField) {
	fl.l.Debug(msg, unpack(fields)...)
}

// Warning prints message with fields.
func (fl FieldLogger) Warning(msg string, fields ...LoggableField) {
	fl.l.Warn(msg, unpack(fields)...)
}
