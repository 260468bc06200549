package storage

import (
	"context"
	"io"
)

// Store is the content store for uploaded media blobs. Save returns the
// public URL for the stored blob; Remove and Exists address blobs by that
// URL. Owns reports whether a URL points at a blob hosted by this store,
// so externally hosted media is never touched on delete.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Remove(ctx context.Context, mediaURL string) error
	Exists(ctx context.Context, mediaURL string) (bool, error)
	Owns(mediaURL string) bool
}
