package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local stores blobs as files under a single directory and serves them
// through a fixed URL prefix mounted as static files.
type Local struct {
	dir       string
	urlPrefix string
}

func NewLocal(dir, urlPrefix string) (*Local, error) {
	if dir == "" {
		return nil, errors.New("upload directory is required")
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &Local{dir: dir, urlPrefix: urlPrefix}, nil
}

func (l *Local) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	path := filepath.Join(l.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return l.urlPrefix + name, nil
}

func (l *Local) Remove(ctx context.Context, mediaURL string) error {
	path, ok := l.path(mediaURL)
	if !ok {
		return nil
	}

	// A blob already gone is not an error.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

func (l *Local) Exists(ctx context.Context, mediaURL string) (bool, error) {
	path, ok := l.path(mediaURL)
	if !ok {
		return false, nil
	}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (l *Local) Owns(mediaURL string) bool {
	return strings.HasPrefix(mediaURL, l.urlPrefix)
}

func (l *Local) path(mediaURL string) (string, bool) {
	if !l.Owns(mediaURL) {
		return "", false
	}
	name := strings.TrimPrefix(mediaURL, l.urlPrefix)
	// Reject names escaping the upload directory.
	if name == "" || name != filepath.Base(name) {
		return "", false
	}
	return filepath.Join(l.dir, name), true
}
