package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains persistence backends for generated proposal
// documents. Backends are addressed by flat keys (the document filename);
// writing an existing key overwrites it.

// PutOptions define optional parameters for storing documents.
// Size should be the exact number of bytes if known; set to -1 if unknown.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored document.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Storage persists generated documents and resolves their download URLs.
// Implementations are safe for concurrent use by multiple goroutines.
type Storage interface {
	// Put stores the document under the given key, overwriting any
	// existing document with the same key.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// Delete removes a document by key.
	Delete(ctx context.Context, key string) error
	// PublicURL returns the URL under which the stored document can be
	// downloaded by the dashboard.
	PublicURL(ctx context.Context, key string) (string, error)
}
