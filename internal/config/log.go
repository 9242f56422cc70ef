package config

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/obslog"
)

// LogConfig holds settings for the process logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is one of console, json, legacy.
	Format string `yaml:"format"`

	// File, when set, receives a copy of every entry.
	File string `yaml:"file"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: "console",
	}
}

// Validate rejects unknown level and format names.
func (l *LogConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", l.Level)
	}
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "console", "json", "legacy":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "log format %q", l.Format)
	}
	return nil
}

// Options converts l to logger construction options.
func (l *LogConfig) Options() obslog.Options {
	return obslog.Options{
		Level:  l.Level,
		Format: l.Format,
		File:   l.File,
	}
}
