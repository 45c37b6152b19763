package integration_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hypergo"
	"github.com/hupe1980/hypergo/blobstore"
	"github.com/hupe1980/hypergo/codec"
	"github.com/hupe1980/hypergo/hyper"
	"github.com/hupe1980/hypergo/persistence"
	"github.com/hupe1980/hypergo/testutil"
)

func TestFullLifecycle(t *testing.T) {
	h := hypergo.New[int]()

	rng := testutil.NewRNG(4711)

	out, err := testutil.Populate(rng, h.Graph(), testutil.Shape{
		Nodes:      32,
		Edges:      16,
		ExtraLinks: 8,
		Graphs:     2,
		Nested:     &testutil.Shape{Nodes: 4, Edges: 2},
	})
	require.NoError(t, err)
	require.NoError(t, h.Validate(context.Background()))

	// 1. Remove a node and confirm the cascade keeps the structure valid.
	victim := out.Nodes[0]
	_, err = h.RemoveNode(victim)
	require.NoError(t, err)
	assert.False(t, h.Contains(victim))
	require.NoError(t, h.Validate(context.Background()))

	// 2. Snapshot to a local store and reload.
	store := blobstore.NewLocalStore(t.TempDir())

	require.NoError(t, h.SaveToStore(context.Background(), store, filepath.Join("v1", "graph.hyp")))

	restored, err := hypergo.LoadFromStore[int](context.Background(), store, filepath.Join("v1", "graph.hyp"))
	require.NoError(t, err)
	assert.Equal(t, h.IDs(), restored.IDs())
	assert.Equal(t, h.Stats(), restored.Stats())
	require.NoError(t, restored.Validate(context.Background()))

	// 3. Ids survive the round trip, so removals keep cascading correctly.
	edge := out.Edges[len(out.Edges)-1]
	if restored.Contains(edge) {
		_, err = restored.RemoveEdge(edge)
		require.NoError(t, err)
		require.NoError(t, restored.Validate(context.Background()))
	}
}

func TestSnapshot_CodecAndCompressionMatrix(t *testing.T) {
	codecs := []codec.Codec{codec.JSON{}, codec.GoJSON{}}
	compressions := []persistence.Compression{
		persistence.CompressionNone,
		persistence.CompressionZstd,
		persistence.CompressionLZ4,
	}

	store := blobstore.NewThrottledStore(blobstore.NewMemoryStore(), 1<<20)

	for _, c := range codecs {
		for _, comp := range compressions {
			t.Run(c.Name()+"/"+string(comp), func(t *testing.T) {
				h := hypergo.New[int](hypergo.WithCodec(c), hypergo.WithCompression(comp))

				_, err := testutil.Populate(testutil.NewRNG(1), h.Graph(), testutil.Shape{Nodes: 8, Edges: 4})
				require.NoError(t, err)

				name := "matrix/" + c.Name() + "-" + string(comp)
				require.NoError(t, h.SaveToStore(context.Background(), store, name))

				restored, err := hypergo.LoadFromStore[int](context.Background(), store, name)
				require.NoError(t, err)
				assert.Equal(t, h.IDs(), restored.IDs())
			})
		}
	}

	names, err := store.List(context.Background(), "matrix/")
	require.NoError(t, err)
	assert.Len(t, names, len(codecs)*len(compressions))
}

func TestExtend_AcrossStores(t *testing.T) {
	donor := hypergo.New[int]()

	_, err := testutil.Populate(testutil.NewRNG(7), donor.Graph(), testutil.Shape{Nodes: 4, Edges: 2})
	require.NoError(t, err)

	h := hypergo.New[int]()

	id, err := h.Extend(donor)
	require.NoError(t, err)

	kind, err := h.ElementKind(id)
	require.NoError(t, err)
	assert.Equal(t, hyper.KindGraph, kind)

	require.NoError(t, h.Validate(context.Background()))

	donorStats := donor.Stats()
	stats := h.Stats()
	assert.Equal(t, donorStats.Nodes, stats.Nodes)
	assert.Equal(t, donorStats.Edges, stats.Edges)
	assert.Equal(t, donorStats.Links, stats.Links)
}
