// Package common holds the ports shared by application services.
package common

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by BlobStore.Get for a missing key.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore stores opaque files by key. Keys are slash separated and never
// start with a slash.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// DocumentConverter turns an uploaded template file into HTML. The file
// name selects the input format.
type DocumentConverter interface {
	ToHTML(ctx context.Context, fileName string, data []byte) (string, error)
}
