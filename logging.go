package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alc6/histgen/config"
)

const logTimeFormat = "2006-01-02 15:04:05"

// newLogger builds a text logger writing to stderr and, when configured, to
// an append-only log file. The returned func closes the file.
func newLogger(cfg config.LogSection, stderr io.Writer) (*slog.Logger, func() error, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	out := stderr
	closeLog := func() error { return nil }
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = io.MultiWriter(stderr, f)
		closeLog = f.Close
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: formatLogTime,
	})
	return slog.New(handler), closeLog, nil
}

func formatLogTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		return slog.String(slog.TimeKey, a.Value.Time().Format(logTimeFormat))
	}
	return a
}
