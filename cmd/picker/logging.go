package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/name-picker/internal/errors"
)

func parseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// setupLogging installs the default slog logger writing to w
func setupLogging(w io.Writer) error {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(settings.LogLevel)})
	slog.SetDefault(slog.New(handler))
	return nil
}

// logToFile moves logging off the terminal while the UI owns it. The
// returned function closes the file.
func logToFile(path string) (func(), error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create log directory").WithMeta(errors.MetaPath, dir)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open log file").
			WithMeta(errors.MetaPath, path)
	}
	if err := setupLogging(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	return func() {
		_ = setupLogging(os.Stderr)
		_ = f.Close()
	}, nil
}
