// Package storage persists extracted images (and other document sidecar
// bytes) so parsers and OCR backends can hand back a reference instead of
// inline bytes, grounded on the reference MinerU/markitdown flow where
// parsed images are uploaded and replaced with a URL in the markdown
// (mineru_parser.py's self.storage.upload_bytes call).
package storage

import (
	"context"
	"io"
)

// Uploader stores raw bytes under a content-addressed or caller-supplied
// key and returns a reference the caller can later resolve.
type Uploader interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// Downloader retrieves previously uploaded bytes by key.
type Downloader interface {
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}
