// internal/cache/file.go
package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"home4paws-cli/internal/common/logger"
)

// FileStore keeps snapshots as JSON files under
// <storageDir>/cache/<userKey>/<resource>.json. It is the default backend
// for single-machine use.
type FileStore struct {
	dir    string
	ttl    time.Duration
	logger logger.Logger
}

// NewFileStore opens (and creates) the cache directory.
func NewFileStore(storageDir string, ttl time.Duration, log logger.Logger) (*FileStore, error) {
	dir := filepath.Join(storageDir, "cache")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileStore{dir: dir, ttl: ttl, logger: log}, nil
}

func (f *FileStore) entryPath(resource, userKey string) string {
	return filepath.Join(f.dir, sanitizeKey(userKey), sanitizeKey(resource)+".json")
}

func (f *FileStore) Get(_ context.Context, resource, userKey string, out interface{}) (bool, error) {
	raw, err := os.ReadFile(f.entryPath(resource, userKey))
	if err != nil {
		recordMiss(resource)
		return false, nil
	}
	ok, err := decodeSnapshot(raw, f.ttl, out)
	if err != nil || !ok {
		recordMiss(resource)
		return false, err
	}
	recordHit(resource)
	return true, nil
}

func (f *FileStore) Put(_ context.Context, resource, userKey string, value interface{}) error {
	raw, err := encodeSnapshot(value)
	if err != nil {
		return err
	}
	path := f.entryPath(resource, userKey)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create cache entry dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return os.Rename(tmp, path)
}

func (f *FileStore) Invalidate(_ context.Context, resource, userKey string) error {
	err := os.Remove(f.entryPath(resource, userKey))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove cache entry: %w", err)
	}
	return nil
}

func (f *FileStore) InvalidateUser(_ context.Context, userKey string) error {
	if userKey == "" {
		return nil
	}
	if err := os.RemoveAll(filepath.Join(f.dir, sanitizeKey(userKey))); err != nil {
		return fmt.Errorf("clear user cache: %w", err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }

// sanitizeKey keeps keys usable as file names.
func sanitizeKey(key string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_", ":", "_")
	cleaned := replacer.Replace(key)
	if cleaned == "" {
		cleaned = "_"
	}
	return cleaned
}
