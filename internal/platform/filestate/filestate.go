// Package filestate persists the preference and analytics record as a JSON
// file on an afero filesystem.
package filestate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Persister stores the record in a single file. Writes go to a temporary
// file in the same directory that is then renamed over the target, so a
// crash never leaves a half-written record behind.
type Persister struct {
	fs     afero.Fs
	path   string
	logger *slog.Logger
}

// NewPersister creates a Persister for path on fsys. Use afero.NewOsFs() for
// the real filesystem.
func NewPersister(fsys afero.Fs, path string, logger *slog.Logger) *Persister {
	return &Persister{
		fs:     fsys,
		path:   path,
		logger: logger.With("component", "file_persister", "path", path),
	}
}

// Load returns the file contents, or nil when the file does not exist.
func (p *Persister) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(p.fs, p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	return data, nil
}

// Save atomically replaces the file contents with data.
func (p *Persister) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := p.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := afero.TempFile(p.fs, dir, filepath.Base(p.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = p.fs.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = p.fs.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := p.fs.Chmod(tmpName, 0o600); err != nil && !errors.Is(err, os.ErrNotExist) {
		p.logger.WarnContext(ctx, "failed to restrict state file permissions", "error", err)
	}

	if err := p.fs.Rename(tmpName, p.path); err != nil {
		_ = p.fs.Remove(tmpName)
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	p.logger.DebugContext(ctx, "saved state", "bytes", len(data))
	return nil
}
