// Package logging builds the slog logger used by the drawauth command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"

	"github.com/high-horse/drawauth/config"
)

// ParseLevel maps a configured level name to a slog level. Unknown names
// fall back to info.
func ParseLevel(name string) slog.Level {
	switch name {
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

// Writer returns the log destination: stderr, or a rotating file when
// cfg.File is set. The returned closer must be called on shutdown.
func Writer(cfg config.LoggingConfig) (io.Writer, io.Closer, error) {
	if cfg.File == "" {
		return os.Stderr, nopCloser{}, nil
	}

	opts := []rotatelogs.Option{
		rotatelogs.WithRotationTime(cfg.RotationTime),
		rotatelogs.WithLinkName(filepath.Join(filepath.Dir(cfg.File), "drawauth.log")),
	}
	if cfg.MaxAge > 0 {
		opts = append(opts, rotatelogs.WithMaxAge(cfg.MaxAge))
	}
	rl, err := rotatelogs.New(cfg.File, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
	}
	return rl, rl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to w in the configured format.
func New(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
