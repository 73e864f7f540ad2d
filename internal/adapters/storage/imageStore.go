package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid"
)

// ImageStoreDisk writes uploaded images under <root>/posts/ and returns the
// path relative to the media root, which is what gets stored on the post.
type ImageStoreDisk struct {
	Root string
}

func NewImageStoreDisk(root string) *ImageStoreDisk {
	return &ImageStoreDisk{Root: root}
}

func (s *ImageStoreDisk) Save(filename string, r io.Reader) (string, error) {
	rel := filepath.Join("posts", uuid.Must(uuid.NewV4()).String()+filepath.Ext(filename))
	dst := filepath.Join(s.Root, rel)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return filepath.ToSlash(rel), nil
}
