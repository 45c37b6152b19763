package hypergo

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hypergo/blobstore"
	"github.com/hupe1980/hypergo/codec"
	"github.com/hupe1980/hypergo/hyper"
	"github.com/hupe1980/hypergo/persistence"
)

func TestHypergo_AddAndGet(t *testing.T) {
	h := New[string]()

	a, err := h.AddNode("a")
	require.NoError(t, err)

	b, err := h.AddNode("b")
	require.NoError(t, err)

	e, err := h.AddEdge(a, b, "ab")
	require.NoError(t, err)

	v, err := h.NodeValue(a)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = h.EdgeValue(e)
	require.NoError(t, err)
	assert.Equal(t, "ab", v)

	kind, err := h.ElementKind(e)
	require.NoError(t, err)
	assert.Equal(t, hyper.KindEdge, kind)

	conns, err := h.LinksOf(e)
	require.NoError(t, err)
	assert.Len(t, conns, 2)
}

func TestHypergo_NotFound(t *testing.T) {
	h := New[string]()

	missing := hyper.NewPath(42)

	t.Run("node value", func(t *testing.T) {
		_, err := h.NodeValue(missing)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		err := h.Remove(missing)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("find", func(t *testing.T) {
		_, err := h.FindNode("nope")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("neighbors", func(t *testing.T) {
		_, err := h.Neighbors(missing)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestHypergo_RemoveCascades(t *testing.T) {
	h := New[string]()

	a, err := h.AddNode("a")
	require.NoError(t, err)

	b, err := h.AddNode("b")
	require.NoError(t, err)

	e, err := h.AddEdge(a, b, "ab")
	require.NoError(t, err)

	_, err = h.RemoveNode(a)
	require.NoError(t, err)

	assert.False(t, h.Contains(a))
	assert.False(t, h.Contains(e), "starved hyperedge should be gone")
	assert.True(t, h.Contains(b))
}

func TestHypergo_Stats(t *testing.T) {
	h := New[string]()

	a, err := h.AddNode("a")
	require.NoError(t, err)

	b, err := h.AddNode("b")
	require.NoError(t, err)

	_, err = h.AddEdge(a, b, "ab")
	require.NoError(t, err)

	sub, err := h.AddGraph(nil)
	require.NoError(t, err)

	_, err = h.AddNodeIn("inner", sub)
	require.NoError(t, err)

	stats := h.Stats()
	assert.Equal(t, 3, stats.Nodes)
	assert.Equal(t, 1, stats.Edges)
	assert.Equal(t, 2, stats.Links, "anchor links")
	assert.Equal(t, 1, stats.Graphs)
	assert.Equal(t, 2, stats.Depth)
}

func TestHypergo_Extend(t *testing.T) {
	donor := New[string]()

	_, err := donor.AddNode("donor")
	require.NoError(t, err)

	h := New[string]()

	id, err := h.Extend(donor)
	require.NoError(t, err)

	v, err := h.NodeValue(id.Child(0))
	require.NoError(t, err)
	assert.Equal(t, "donor", v)

	// The donor keeps its own copy.
	assert.True(t, donor.Contains(hyper.NewPath(0)))
}

func TestHypergo_ExtendSelf(t *testing.T) {
	h := New[string]()

	a, err := h.AddNode("a")
	require.NoError(t, err)

	// Extending a store with itself must return, not wait on its own lock.
	done := make(chan struct{})

	var id hyper.Path

	go func() {
		defer close(done)

		id, err = h.Extend(h)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("self-extend did not return")
	}

	require.NoError(t, err)

	// The nested copy holds the store's contents as of the extend.
	v, err := h.NodeValue(id.Child(a.Last()))
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	require.NoError(t, h.Validate(context.Background()))

	// The store is not wedged afterwards.
	_, err = h.AddNode("b")
	require.NoError(t, err)
}

func TestHypergo_SnapshotRoundTrip(t *testing.T) {
	h := New[string](WithCodec(codec.JSON{}), WithCompression(persistence.CompressionLZ4))

	a, err := h.AddNode("a")
	require.NoError(t, err)

	b, err := h.AddNode("b")
	require.NoError(t, err)

	_, err = h.AddEdge(a, b, "ab")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, h.SaveSnapshot(context.Background(), &buf))

	// Loading does not depend on the writer's configuration.
	restored, err := LoadSnapshot[string](context.Background(), &buf)
	require.NoError(t, err)

	assert.Equal(t, h.IDs(), restored.IDs())

	v, err := restored.EdgeValue(hyper.NewPath(2))
	require.NoError(t, err)
	assert.Equal(t, "ab", v)

	require.NoError(t, restored.Validate(context.Background()))
}

func TestHypergo_StoreRoundTrip(t *testing.T) {
	store := blobstore.NewMemoryStore()

	h := New[int]()

	_, err := h.AddNode(7)
	require.NoError(t, err)

	require.NoError(t, h.SaveToStore(context.Background(), store, "snapshots/graph.hyp"))

	restored, err := LoadFromStore[int](context.Background(), store, "snapshots/graph.hyp")
	require.NoError(t, err)

	v, err := restored.NodeValue(hyper.NewPath(0))
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = LoadFromStore[int](context.Background(), store, "missing")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestHypergo_Clear(t *testing.T) {
	h := New[string]()

	a, err := h.AddNode("a")
	require.NoError(t, err)

	b, err := h.AddNode("b")
	require.NoError(t, err)

	_, err = h.AddEdge(a, b, "ab")
	require.NoError(t, err)

	require.NoError(t, h.Clear())
	assert.Equal(t, Stats{Depth: 1}, h.Stats())

	// Counters survive a clear, so ids are not reused.
	c, err := h.AddNode("c")
	require.NoError(t, err)
	assert.Equal(t, hyper.NewPath(5), c)
}
