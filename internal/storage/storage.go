// Package storage abstracts where converted screenshots are kept. The local
// filesystem implementation below can be swapped for an object store without
// touching the ingest service.
package storage

import (
	"context"
	"io"
)

// Storage persists gallery assets under a key and returns the public URL
// they are served from.
type Storage interface {
	Save(ctx context.Context, key string, data io.Reader) (url string, err error)
}
