package app

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/sadie/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the application logger from cfg. Output goes to
// cfg.File since the terminal is owned by the editor; with no file, logs
// are discarded. The returned closer releases the file.
func NewLogger(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	if cfg.File == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	return newLogger(f, cfg.Format, level), f, nil
}

func newLogger(out io.Writer, format string, level zerolog.Level) zerolog.Logger {
	if format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}
