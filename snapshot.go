package hypergo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/hypergo/blobstore"
	"github.com/hupe1980/hypergo/hyper"
	"github.com/hupe1980/hypergo/persistence"
)

// SaveSnapshot writes the whole hypergraph to w using the store's configured
// codec and compression. The snapshot is self-describing and can be loaded
// by a store configured differently.
func (h *Hypergo[T]) SaveSnapshot(ctx context.Context, w io.Writer) error {
	start := time.Now()

	h.mu.RLock()
	state := h.graph.State()
	h.mu.RUnlock()

	err := persistence.Save(w, state, h.opts.codec, h.opts.compression)

	h.metrics.RecordSnapshot("save", time.Since(start), err)
	h.logger.LogSnapshot(ctx, "save", err)

	return err
}

// SaveToStore writes a snapshot to the blob store under the given name.
func (h *Hypergo[T]) SaveToStore(ctx context.Context, store blobstore.Store, name string) error {
	blob, err := store.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("create snapshot blob %q: %w", name, err)
	}

	if err := h.SaveSnapshot(ctx, blob); err != nil {
		_ = blob.Close()
		return err
	}

	if err := blob.Sync(); err != nil {
		_ = blob.Close()
		return fmt.Errorf("sync snapshot blob %q: %w", name, err)
	}

	if err := blob.Close(); err != nil {
		return fmt.Errorf("close snapshot blob %q: %w", name, err)
	}

	return nil
}

// LoadSnapshot reads a snapshot written by SaveSnapshot and returns a store
// holding the restored hypergraph.
func LoadSnapshot[T comparable](ctx context.Context, r io.Reader, optFns ...Option) (*Hypergo[T], error) {
	start := time.Now()

	h := New[T](optFns...)

	var state hyper.State[T]

	err := persistence.Load(r, &state)
	if err == nil {
		var g *hyper.Graph[T]

		g, err = hyper.FromState(state)
		if err == nil {
			h.graph = g
		}
	}

	h.metrics.RecordSnapshot("load", time.Since(start), err)
	h.logger.LogSnapshot(ctx, "load", err)

	if err != nil {
		return nil, err
	}

	return h, nil
}

// LoadFromStore reads a snapshot from the blob store under the given name.
func LoadFromStore[T comparable](ctx context.Context, store blobstore.Store, name string, optFns ...Option) (*Hypergo[T], error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open snapshot blob %q: %w", name, err)
	}
	defer blob.Close()

	return LoadSnapshot[T](ctx, blob, optFns...)
}
