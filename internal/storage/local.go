package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes assets to a directory on the local filesystem.
type LocalStorage struct {
	baseDir   string
	urlPrefix string
}

// NewLocalStorage returns a LocalStorage rooted at baseDir, serving files
// under urlPrefix (for example "/img/uploads").
func NewLocalStorage(baseDir, urlPrefix string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, urlPrefix: urlPrefix}
}

var _ Storage = (*LocalStorage)(nil)

// Save writes data to baseDir/key and returns the public URL for it.
func (s *LocalStorage) Save(_ context.Context, key string, data io.Reader) (string, error) {
	dest := filepath.Join(s.baseDir, key)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("storage: write: %w", err)
	}

	return s.urlPrefix + "/" + key, nil
}

// BaseDir returns the directory assets are written to.
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}
