package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// localStorage implements Storage on the local filesystem. Documents live
// in a single flat directory and are served by the HTTP layer under the
// configured public prefix.
type localStorage struct {
	dir          string
	publicPrefix string
}

// NewLocal creates a filesystem-backed storage rooted at dir.
// The directory is created if it does not exist.
func NewLocal(dir, publicPrefix string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &localStorage{dir: dir, publicPrefix: strings.TrimSuffix(publicPrefix, "/")}, nil
}

// Put writes the document to disk and stats it back for the actual size.
// An existing file with the same key is overwritten.
func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}
	target, err := l.resolve(key)
	if err != nil {
		return ObjectInfo{}, err
	}

	f, err := os.Create(target)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(target)
		return ObjectInfo{}, fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return ObjectInfo{}, fmt.Errorf("close file: %w", err)
	}

	st, err := os.Stat(target)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("stat file: %w", err)
	}
	return ObjectInfo{
		Key:          key,
		Size:         st.Size(),
		ContentType:  opt.ContentType,
		LastModified: st.ModTime(),
	}, nil
}

// Delete removes a document by key. Missing files are not an error.
func (l *localStorage) Delete(ctx context.Context, key string) error {
	target, err := l.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PublicURL joins the public prefix with the key; the HTTP layer serves
// the storage directory statically under that prefix.
func (l *localStorage) PublicURL(ctx context.Context, key string) (string, error) {
	return l.publicPrefix + "/" + path.Clean(key), nil
}

// resolve maps a key to a path inside the storage directory and rejects
// keys that would escape it.
func (l *localStorage) resolve(key string) (string, error) {
	clean := filepath.Clean(key)
	if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(l.dir, clean), nil
}
