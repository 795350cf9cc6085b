package ports

import "io"

// ImageStore persists an uploaded product image and returns the public path it
// is served under (e.g. "/uploads/1712345678901-shoe.png").
type ImageStore interface {
	Save(name string, size int64, r io.Reader) (string, error)
}
