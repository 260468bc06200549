package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// MinIO stores blobs in an object-storage bucket with public read access.
type MinIO struct {
	client    *minio.Client
	bucket    string
	urlPrefix string
}

func NewMinIO(client *minio.Client, bucket, publicEndpoint string, useSSL bool) *MinIO {
	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	return &MinIO{
		client:    client,
		bucket:    bucket,
		urlPrefix: fmt.Sprintf("%s://%s/%s/", scheme, publicEndpoint, bucket),
	}
}

func (m *MinIO) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, name, r, -1, minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}
	return m.urlPrefix + name, nil
}

func (m *MinIO) Remove(ctx context.Context, mediaURL string) error {
	name, ok := m.objectName(mediaURL)
	if !ok {
		return nil
	}
	return m.client.RemoveObject(ctx, m.bucket, name, minio.RemoveObjectOptions{})
}

func (m *MinIO) Exists(ctx context.Context, mediaURL string) (bool, error) {
	name, ok := m.objectName(mediaURL)
	if !ok {
		return false, nil
	}

	_, err := m.client.StatObject(ctx, m.bucket, name, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (m *MinIO) Owns(mediaURL string) bool {
	return strings.HasPrefix(mediaURL, m.urlPrefix)
}

func (m *MinIO) objectName(mediaURL string) (string, bool) {
	if !m.Owns(mediaURL) {
		return "", false
	}
	name := strings.TrimPrefix(mediaURL, m.urlPrefix)
	return name, name != ""
}
