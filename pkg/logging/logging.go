// Package logging provides structured logging for the control tower
package logging

import (
	"go.uber.org/zap"
)

// New creates a zap logger honoring the configured level and format.
// Format is "json" or "console"; an unparsable level falls back to info.
func New(level, format string) (*zap.Logger, error) {
	var zapConfig zap.Config

	if format == "console" {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Encoding = "console"
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.Encoding = "json"
	}

	parsed, err := zap.ParseAtomicLevel(level)
	if err != nil {
		parsed = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = parsed

	return zapConfig.Build()
}

// MustNew creates a logger and panics on failure. Intended for process
// startup, where there is nowhere to report the error anyway.
func MustNew(level, format string) *zap.Logger {
	logger, err := New(level, format)
	if err != nil {
		panic(err)
	}
	return logger
}
