// Package storage manages the on-disk upload directory that backs post media.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URLPrefix is the public path prefix under which uploads are served.
const URLPrefix = "/uploads/"

// Store writes uploaded media to a local directory and maps files to the
// public URLs recorded on posts.
type Store struct {
	dir string
}

// New creates the upload directory if needed and returns a Store over it
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes to
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the uploaded file under a collision-resistant generated name
// preserving the original extension, and returns its public URL.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return URLPrefix + name, nil
}

// Remove deletes the file behind a public URL. URLs outside the upload
// prefix (direct external links) are ignored.
func (s *Store) Remove(publicURL string) error {
	if !strings.HasPrefix(publicURL, URLPrefix) {
		return nil
	}
	return os.Remove(filepath.Join(s.dir, filepath.Base(publicURL)))
}
