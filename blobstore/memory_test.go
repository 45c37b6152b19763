package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Open(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	w, err := store.Create(ctx, "snapshots/a.hyp")
	require.NoError(t, err)

	_, err = w.Write([]byte("hello "))
	require.NoError(t, err)
	_, err = w.Write([]byte("hypergraph"))
	require.NoError(t, err)

	// Not visible until Close.
	_, err = store.Open(ctx, "snapshots/a.hyp")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, w.Close())

	rc, err := store.Open(ctx, "snapshots/a.hyp")
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "hello hypergraph", string(data))

	require.NoError(t, store.Put(ctx, "snapshots/b.hyp", []byte("second")))

	names, err := store.List(ctx, "snapshots/")
	require.NoError(t, err)
	require.Equal(t, []string{"snapshots/a.hyp", "snapshots/b.hyp"}, names)

	require.NoError(t, store.Delete(ctx, "snapshots/a.hyp"))

	names, err = store.List(ctx, "snapshots/")
	require.NoError(t, err)
	require.Equal(t, []string{"snapshots/b.hyp"}, names)
}

func TestThrottledStore_PassesDataThrough(t *testing.T) {
	store := NewThrottledStore(NewMemoryStore(), 1<<20)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a", []byte("payload")))

	w, err := store.Create(ctx, "b")
	require.NoError(t, err)
	_, err = w.Write([]byte("streamed"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rc, err := store.Open(ctx, "b")
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "streamed", string(data))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, names)
}

func TestThrottledStore_Unlimited(t *testing.T) {
	store := NewThrottledStore(NewMemoryStore(), 0)

	require.NoError(t, store.Put(context.Background(), "a", make([]byte, 1<<16)))
}
