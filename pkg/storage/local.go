package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Local keeps blobs as files under a root directory
type Local struct {
	rootDir string
}

var _ Storage = &Local{}

// NewLocal ...
func NewLocal(rootDir string) *Local {
	return &Local{rootDir: rootDir}
}

// filePath cleans key as an absolute path so that it never leaves the root directory
func (l *Local) filePath(key string) string {
	return filepath.Join(l.rootDir, filepath.Clean("/"+key))
}

// Put ...
func (l *Local) Put(_ context.Context, key string, body io.Reader, _ string) error {
	p := l.filePath(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	f, err := os.Create(p)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Get ...
func (l *Local) Get(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(l.filePath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Delete is a no-op for a missing key
func (l *Local) Delete(_ context.Context, key string) error {
	err := os.Remove(l.filePath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
