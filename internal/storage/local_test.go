package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutAndOverwrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "/generated-documents/")
	require.NoError(t, err)

	ctx := context.Background()
	key := "Travel_Proposal_Alice_Smith_2025-01-05.pdf"

	info, err := store.Put(ctx, key, strings.NewReader("first version"), PutOptions{ContentType: "application/pdf"})
	require.NoError(t, err)
	assert.Equal(t, int64(len("first version")), info.Size)
	assert.Equal(t, key, info.Key)

	// Same key again replaces the previous file without error.
	info2, err := store.Put(ctx, key, strings.NewReader("second, longer version"), PutOptions{ContentType: "application/pdf"})
	require.NoError(t, err)
	assert.Equal(t, int64(len("second, longer version")), info2.Size)
}

func TestLocalStorage_PublicURL(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/generated-documents")
	require.NoError(t, err)

	u, err := store.PublicURL(context.Background(), "file.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/generated-documents/file.pdf", u)
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/generated-documents")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "../outside.pdf", strings.NewReader("x"), PutOptions{})
	assert.Error(t, err)

	_, err = store.Put(context.Background(), "/etc/passwd", strings.NewReader("x"), PutOptions{})
	assert.Error(t, err)
}

func TestLocalStorage_DeleteMissingIsNil(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/generated-documents")
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never-written.pdf"))
}
