/*
Package storage provides the durable key-value store used to mirror the client session across restarts.

This file defines FileStore, which persists each key as a single file inside a state
directory. Writes go through a temporary file and rename so a crashed write never
leaves a half-written value behind.
*/
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"huecas/internal/pkg/logx"
)

// FileStore is a file-backed Store. Each key maps to one file under dir.
type FileStore struct {
	// dir is the state directory holding one file per key.
	dir string

	// structured logger with storage context.
	logger zerolog.Logger
}

// NewFileStore creates the state directory if needed and returns a FileStore over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state directory %q: %w", dir, err)
	}

	storeLogger := logx.Logger().With().
		Str("component", "FileStore").
		Str("state_dir", dir).
		Logger()

	return &FileStore{
		dir:    dir,
		logger: storeLogger,
	}, nil
}

// Read returns the stored value for key. A missing or unreadable file reports absence;
// hydration treats absent values as an empty session rather than an error.
func (f *FileStore) Read(key string) (string, bool) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			f.logger.Warn().Err(err).Str("key", key).Msg("Failed to read stored value. Treating as absent.")
		}
		return "", false
	}

	return string(data), true
}

// Write persists value for key atomically (write to temp file, then rename).
func (f *FileStore) Write(key, value string) error {
	target := f.path(key)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, []byte(value), 0o600); err != nil {
		return fmt.Errorf("failed to write state file for %q: %w", key, err)
	}

	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("failed to commit state file for %q: %w", key, err)
	}

	return nil
}

// Delete removes the value for key. A missing file is not an error.
func (f *FileStore) Delete(key string) error {
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete state file for %q: %w", key, err)
	}
	return nil
}

// path maps a storage key to its backing file.
func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
