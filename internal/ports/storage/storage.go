package storage

import "io"

// ImageStore persists uploaded post images and returns the relative path to
// record on the post.
type ImageStore interface {
	Save(filename string, r io.Reader) (string, error)
}
