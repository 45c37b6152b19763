// Package benchmark_test holds macro benchmarks run against the public API.
package benchmark_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/hypergo"
	"github.com/hupe1980/hypergo/hyper"
	"github.com/hupe1980/hypergo/persistence"
	"github.com/hupe1980/hypergo/testutil"
)

func buildGraph(b *testing.B, shape testutil.Shape) *hypergo.Hypergo[int] {
	b.Helper()

	h := hypergo.New[int]()

	if _, err := testutil.Populate(testutil.NewRNG(42), h.Graph(), shape); err != nil {
		b.Fatalf("populate: %v", err)
	}

	return h
}

func BenchmarkAddNode(b *testing.B) {
	h := hypergo.New[int]()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := h.AddNode(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAddEdge(b *testing.B) {
	h := hypergo.New[int]()

	a, err := h.AddNode(0)
	if err != nil {
		b.Fatal(err)
	}

	c, err := h.AddNode(1)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := h.AddEdge(a, c, i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRemoveNodeCascade(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		b.StopTimer()

		h := hypergo.New[int]()

		a, _ := h.AddNode(0)
		c, _ := h.AddNode(1)

		for j := 0; j < 16; j++ {
			if _, err := h.AddEdge(a, c, j); err != nil {
				b.Fatal(err)
			}
		}

		b.StartTimer()

		if _, err := h.RemoveNode(a); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIDs(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			h := buildGraph(b, testutil.Shape{Nodes: size, Edges: size / 4})

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = h.IDs()
			}
		})
	}
}

func BenchmarkNeighbors(b *testing.B) {
	h := hypergo.New[int]()

	hub, err := h.AddNode(0)
	if err != nil {
		b.Fatal(err)
	}

	for i := 1; i <= 64; i++ {
		spoke, err := h.AddNode(i)
		if err != nil {
			b.Fatal(err)
		}

		if _, err := h.AddEdge(hub, spoke, i); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		walker, err := h.Neighbors(hub)
		if err != nil {
			b.Fatal(err)
		}

		for {
			if _, ok := walker.Next(); !ok {
				break
			}
		}
	}
}

func BenchmarkFindNode(b *testing.B) {
	h := buildGraph(b, testutil.Shape{Nodes: 1000, Edges: 250})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := h.FindNode(999); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidate(b *testing.B) {
	h := buildGraph(b, testutil.Shape{Nodes: 1000, Edges: 250, Graphs: 4, Nested: &testutil.Shape{Nodes: 32, Edges: 8}})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := h.Validate(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSnapshot(b *testing.B) {
	ctx := context.Background()

	for _, comp := range []persistence.Compression{
		persistence.CompressionNone,
		persistence.CompressionZstd,
		persistence.CompressionLZ4,
	} {
		b.Run("save/"+string(comp), func(b *testing.B) {
			h := hypergo.New[int](hypergo.WithCompression(comp))

			if _, err := testutil.Populate(testutil.NewRNG(42), h.Graph(), testutil.Shape{Nodes: 1000, Edges: 250}); err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				var buf bytes.Buffer
				if err := h.SaveSnapshot(ctx, &buf); err != nil {
					b.Fatal(err)
				}

				b.SetBytes(int64(buf.Len()))
			}
		})
	}
}

func BenchmarkStateCapture(b *testing.B) {
	g := hyper.New[int]()

	if _, err := testutil.Populate(testutil.NewRNG(42), g, testutil.Shape{Nodes: 1000, Edges: 250}); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.State()
	}
}
