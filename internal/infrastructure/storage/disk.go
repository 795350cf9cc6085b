// Package storage persists uploaded product images on local disk under a
// public-served directory.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

// publicPrefix is the URL path the upload directory is served under.
const publicPrefix = "/uploads/"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// DiskStore writes images under dir with timestamp-prefixed filenames, so
// concurrent uploads of the same name do not collide.
type DiskStore struct {
	dir      string
	maxBytes int64
}

func NewDiskStore(dir string, maxBytes int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, maxBytes: maxBytes}, nil
}

// Save validates type and size, writes the file, and returns its public path.
func (s *DiskStore) Save(name string, size int64, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return "", domain.ErrUnsupportedImageType
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		return "", domain.ErrImageTooLarge
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(name))
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return publicPrefix + filename, nil
}
