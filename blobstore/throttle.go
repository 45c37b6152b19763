package blobstore

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// ThrottledStore wraps a Store and bounds the bytes per second moved through
// it. Snapshot uploads from a live process can otherwise saturate the link
// the process serves traffic on.
type ThrottledStore struct {
	inner   Store
	limiter *rate.Limiter
}

// NewThrottledStore wraps a store with a byte-rate limit. A non-positive
// bytesPerSec leaves the store unthrottled.
func NewThrottledStore(inner Store, bytesPerSec int64) *ThrottledStore {
	s := &ThrottledStore{inner: inner}

	if bytesPerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), int(bytesPerSec))
	}

	return s
}

// wait reserves n bytes of budget, splitting requests larger than the
// limiter's burst.
func (s *ThrottledStore) wait(ctx context.Context, n int) error {
	if s.limiter == nil || n <= 0 {
		return nil
	}

	burst := s.limiter.Burst()

	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}

		if err := s.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}

		n -= chunk
	}

	return nil
}

// Open opens a blob for reading. Reads count against the byte budget.
func (s *ThrottledStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	return &throttledReader{store: s, ctx: ctx, inner: rc}, nil
}

// Create creates a new writable blob. Writes count against the byte budget.
func (s *ThrottledStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	w, err := s.inner.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	return &throttledWriter{store: s, ctx: ctx, inner: w}, nil
}

// Put writes a blob atomically after reserving its full size.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.wait(ctx, len(data)); err != nil {
		return err
	}

	return s.inner.Put(ctx, name, data)
}

// Delete removes a blob.
func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List returns the names of all blobs with the given prefix.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

type throttledReader struct {
	store *ThrottledStore
	ctx   context.Context
	inner io.ReadCloser
}

func (r *throttledReader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	if n > 0 {
		if werr := r.store.wait(r.ctx, n); werr != nil {
			return n, werr
		}
	}

	return n, err
}

func (r *throttledReader) Close() error { return r.inner.Close() }

type throttledWriter struct {
	store *ThrottledStore
	ctx   context.Context
	inner WritableBlob
}

func (w *throttledWriter) Write(p []byte) (int, error) {
	if err := w.store.wait(w.ctx, len(p)); err != nil {
		return 0, err
	}

	return w.inner.Write(p)
}

func (w *throttledWriter) Sync() error { return w.inner.Sync() }

func (w *throttledWriter) Close() error { return w.inner.Close() }
