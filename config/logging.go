package config

import (
	"go.uber.org/zap/zapcore"

	"github.com/morningowl/dicomcraft/log"
)

// stdout carries the status lines, so only problems are logged by default.
const defaultLoggingLevel = zapcore.WarnLevel

// LoggerConfig holds the logging level and encoder.
type LoggerConfig struct {
	// Encoder is log.ConsoleEncoder or log.JSONEncoder.
	Encoder string `mapstructure:"log-encoder"`
	Level   string `mapstructure:"log-level"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder: log.ConsoleEncoder,
		Level:   defaultLoggingLevel.String(),
	}
}
