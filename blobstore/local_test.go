package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)

	ctx := context.Background()

	_, err := store.Open(ctx, "missing.hyp")
	require.ErrorIs(t, err, ErrNotFound)

	data := []byte("hello world, this is a test snapshot")

	w, err := store.Create(ctx, "data-001.hyp")
	require.NoError(t, err)

	n, err := w.Write(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)

	require.NoError(t, w.Sync())
	require.NoError(t, w.Close())

	// Verify file exists on disk under its final name.
	_, err = os.Stat(filepath.Join(tmpDir, "data-001.hyp"))
	require.NoError(t, err)

	rc, err := store.Open(ctx, "data-001.hyp")
	require.NoError(t, err)

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, data, got)

	// Nested names create directories.
	require.NoError(t, store.Put(ctx, "nested/data-002.hyp", []byte("two")))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"data-001.hyp", "nested/data-002.hyp"}, names)

	names, err = store.List(ctx, "nested/")
	require.NoError(t, err)
	require.Equal(t, []string{"nested/data-002.hyp"}, names)

	require.NoError(t, store.Delete(ctx, "data-001.hyp"))
	require.NoError(t, store.Delete(ctx, "data-001.hyp")) // idempotent

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"nested/data-002.hyp"}, names)
}

func TestLocalStore_NoPartialReads(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)

	ctx := context.Background()

	w, err := store.Create(ctx, "partial.hyp")
	require.NoError(t, err)

	_, err = w.Write([]byte("in flight"))
	require.NoError(t, err)

	// The blob must not be visible before Close.
	_, err = store.Open(ctx, "partial.hyp")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, w.Close())

	_, err = store.Open(ctx, "partial.hyp")
	require.NoError(t, err)
}
