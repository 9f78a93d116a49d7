package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalUploader writes bytes to a directory on disk, used when no object
// store is configured (local development, single-node deployments).
type LocalUploader struct {
	Dir string
}

func (u LocalUploader) Upload(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	dest := filepath.Join(u.Dir, filepath.Clean("/"+key))
	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return "", fmt.Errorf("create storage dir for %s: %w", key, err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create file %s: %w", dest, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write file %s: %w", dest, err)
	}

	return dest, nil
}

func (u LocalUploader) Download(_ context.Context, key string) (io.ReadCloser, error) {
	dest := filepath.Join(u.Dir, filepath.Clean("/"+key))
	f, err := os.Open(dest)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", dest, err)
	}
	return f, nil
}

var _ Uploader = LocalUploader{}
var _ Downloader = LocalUploader{}
