// SPDX-License-Identifier: MIT

// Package logging builds the CLI's structured logger: a log/slog handler
// writing JSON or text to stderr or to a rotated file, plus a logr view of
// the same handler for library code that takes a logr.Logger.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/go-logr/logr"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes log output, level and rotation.
type Config struct {
	Level      string `mapstructure:"level"       validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format"      validate:"oneof=json text"`
	File       string `mapstructure:"file"`                         // empty: write to the fallback writer
	MaxSize    int    `mapstructure:"max_size"    validate:"gte=0"` // MB per file
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge     int    `mapstructure:"max_age"     validate:"gte=0"` // days
	Compress   bool   `mapstructure:"compress"`
}

// DefaultConfig logs info and above as text.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "text", MaxSize: 10, MaxBackups: 3, MaxAge: 28}
}

// Logger pairs a slog logger with a logr view over the same handler.
type Logger struct {
	*slog.Logger
	Logr logr.Logger

	closer io.Closer
}

// ParseLevel maps debug, info, warn and error to slog levels. Unknown names
// fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a Logger from cfg. Records go to a lumberjack-rotated file when
// cfg.File is set and to fallback otherwise.
func New(cfg Config, fallback io.Writer) *Logger {
	var (
		out    = fallback
		closer io.Closer
	)
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		out, closer = lj, lj
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}

			return a
		},
	}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	return &Logger{
		Logger: slog.New(h),
		Logr:   logr.FromSlogHandler(h),
		closer: closer,
	}
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}

	return l.closer.Close()
}
