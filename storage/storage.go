// File: /storage/storage.go
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage persists uploaded image blobs addressed by an object key.
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	// URLPath returns where the object is served from. A relative path is
	// resolved against the request base URL; an absolute URL is used as-is.
	URLPath(key string) string
}

// DiskStorage writes blobs under a local media directory. The directory is
// mounted at /media by the router.
type DiskStorage struct {
	root string
}

func NewDiskStorage(root string) (*DiskStorage, error) {
	if err := os.MkdirAll(filepath.Join(root, "listings"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &DiskStorage{root: root}, nil
}

// Root returns the media directory the storage writes under.
func (s *DiskStorage) Root() string {
	return s.root
}

func (s *DiskStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file for %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write file for %s: %w", key, err)
	}

	return nil
}

func (s *DiskStorage) Remove(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file for %s: %w", key, err)
	}
	return nil
}

func (s *DiskStorage) URLPath(key string) string {
	return "/media/" + strings.TrimPrefix(key, "/")
}
