// Package mirror copies everything that appears under a watched directory
// into a backup directory, keeping relative paths. It backs up camera
// caches that are wiped when the capture program restarts.
package mirror

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/KirkDiggler/name-picker/internal/errors"
)

// Config holds the directories to mirror
type Config struct {
	Source string
	Dest   string
}

// Validate ensures both directories are set and the backup is outside the source
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c == nil {
		return vb.RequiredField("Source").RequiredField("Dest").Build()
	}

	errors.ValidateRequired("Source", c.Source, vb)
	errors.ValidateRequired("Dest", c.Dest, vb)
	if c.Source != "" && c.Dest != "" && within(c.Dest, c.Source) {
		vb.Field("Dest", "must not be inside Source")
	}

	return vb.Build()
}

// within reports whether path is dir or below it
func within(path, dir string) bool {
	sep := string(filepath.Separator)
	return strings.HasPrefix(filepath.Clean(path)+sep, filepath.Clean(dir)+sep)
}

// Mirror watches Source and copies new content to Dest
type Mirror struct {
	source  string
	dest    string
	watcher *fsnotify.Watcher
}

// New creates the destination and starts watching the source tree
func New(cfg *Config) (*Mirror, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(cfg.Source)
	if err != nil || !info.IsDir() {
		return nil, errors.NotFound("source directory does not exist").WithMeta(errors.MetaPath, cfg.Source)
	}
	if err := os.MkdirAll(cfg.Dest, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create backup directory").WithMeta(errors.MetaPath, cfg.Dest)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to start file watcher")
	}

	m := &Mirror{
		source:  filepath.Clean(cfg.Source),
		dest:    filepath.Clean(cfg.Dest),
		watcher: watcher,
	}
	if err := m.watchTree(m.source); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return m, nil
}

// watchTree adds dir and every directory below it to the watcher
func (m *Mirror) watchTree(dir string) error {
	if m.watcher == nil {
		return nil
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := m.watcher.Add(path); err != nil {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to watch directory").
				WithMeta(errors.MetaPath, path)
		}
		return nil
	})
}

// Run processes watcher events until ctx is done. The watcher is closed on return.
func (m *Mirror) Run(ctx context.Context) error {
	defer func() {
		if err := m.watcher.Close(); err != nil {
			slog.Warn("Failed to close file watcher", "error", err)
		}
	}()

	slog.Info("Mirroring directory", "source", m.source, "dest", m.dest)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-m.watcher.Events:
			if !ok {
				return nil
			}
			if err := m.handle(event); err != nil {
				slog.Warn("Failed to mirror change", "path", event.Name, "error", err)
			}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", "error", err)
		}
	}
}

// handle mirrors one create or write event
func (m *Mirror) handle(event fsnotify.Event) error {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return nil
	}

	rel, err := filepath.Rel(m.source, event.Name)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		// removed before we got to it
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "failed to stat changed path").WithMeta(errors.MetaPath, event.Name)
	}

	if info.IsDir() {
		return m.mirrorDir(event.Name, rel)
	}
	if !info.Mode().IsRegular() {
		return nil
	}
	return m.copyFile(event.Name, rel)
}

// mirrorDir creates the directory in the backup, watches it and copies
// anything written into it before the watch was added
func (m *Mirror) mirrorDir(path, rel string) error {
	if err := os.MkdirAll(filepath.Join(m.dest, rel), 0o755); err != nil {
		return errors.Wrap(err, "failed to create backup directory").WithMeta(errors.MetaPath, rel)
	}
	slog.Info("Mirrored directory", "path", rel)

	if err := m.watchTree(path); err != nil {
		return err
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		sub, err := filepath.Rel(m.source, p)
		if err != nil {
			return err
		}
		if d.IsDir() {
			return os.MkdirAll(filepath.Join(m.dest, sub), 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return m.copyFile(p, sub)
	})
}

// copyFile writes through a temp file so a reader never sees a partial copy
func (m *Mirror) copyFile(path, rel string) error {
	target := filepath.Join(m.dest, rel)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrap(err, "failed to create backup directory").WithMeta(errors.MetaPath, rel)
	}

	src, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "failed to open source file").WithMeta(errors.MetaPath, rel)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(target), ".mirror-*")
	if err != nil {
		return errors.Wrap(err, "failed to create backup file").WithMeta(errors.MetaPath, rel)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, src); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "failed to copy file").WithMeta(errors.MetaPath, rel)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "failed to copy file").WithMeta(errors.MetaPath, rel)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "failed to replace backup file").WithMeta(errors.MetaPath, rel)
	}

	slog.Info("Mirrored file", "path", rel)
	return nil
}
