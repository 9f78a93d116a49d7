package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOUploader stores bytes in an S3-compatible bucket, adapted from
// HSn0918-rag's pkg/storage/minio.go MinIOClient, trimmed to the upload
// and download operations this package's callers need.
type MinIOUploader struct {
	client     *minio.Client
	bucketName string
	publicURL  string
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
	PublicURL       string
}

func NewMinIOUploader(ctx context.Context, cfg MinIOConfig) (*MinIOUploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s exists: %w", cfg.BucketName, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.BucketName, err)
		}
	}

	return &MinIOUploader{client: client, bucketName: cfg.BucketName, publicURL: cfg.PublicURL}, nil
}

func (u *MinIOUploader) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, u.bucketName, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload object %s: %w", key, err)
	}
	if u.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", u.publicURL, u.bucketName, key), nil
	}
	return key, nil
}

func (u *MinIOUploader) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := u.client.GetObject(ctx, u.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("download object %s: %w", key, err)
	}
	return obj, nil
}

var _ Uploader = (*MinIOUploader)(nil)
var _ Downloader = (*MinIOUploader)(nil)
