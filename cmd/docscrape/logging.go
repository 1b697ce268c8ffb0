package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	docslog "github.com/fwojciec/docscrape/slog"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// openLogFile opens <dir>/logs/parser.log for appending.
func openLogFile(dir string) (*os.File, error) {
	logDir := filepath.Join(dir, LogsDir)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(logDir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// newLogger logs to the console at level and to file at debug level.
func newLogger(console, file io.Writer, level string) *slog.Logger {
	return slog.New(docslog.NewFanoutHandler(
		tint.NewHandler(console, &tint.Options{
			Level:      parseLevel(level),
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(console),
		}),
		slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
