package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/hypergo/hyper"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Shape controls what Populate inserts at a single level.
type Shape struct {
	// Nodes is the number of nodes to insert.
	Nodes int
	// Edges is the number of hyperedges to insert. Each hyperedge joins
	// two distinct random nodes of the same level.
	Edges int
	// ExtraLinks is the number of additional node-to-edge links to insert
	// on top of the anchor links the hyperedges bring along.
	ExtraLinks int
	// Graphs is the number of nested hypergraphs to insert. Each nested
	// hypergraph is populated with Nested.
	Graphs int
	// Nested is the shape of each nested hypergraph. Nil means nested
	// hypergraphs stay empty.
	Nested *Shape
}

// Populated holds the ids Populate assigned, bucketed by kind.
type Populated struct {
	Nodes  []hyper.Path
	Edges  []hyper.Path
	Links  []hyper.Path
	Graphs []hyper.Path
}

// Populate fills g with random structure of the given shape. Node and edge
// values are sequential ints drawn from a per-call counter, so two calls
// with the same seed and shape build identical hypergraphs.
func Populate(rng *RNG, g *hyper.Graph[int], shape Shape) (*Populated, error) {
	next := 0

	return populateIn(rng, g, shape, hyper.EmptyPath(), &next)
}

func populateIn(rng *RNG, g *hyper.Graph[int], shape Shape, location hyper.Path, next *int) (*Populated, error) {
	out := &Populated{}

	for i := 0; i < shape.Nodes; i++ {
		id, err := g.AddNodeIn(take(next), location)
		if err != nil {
			return nil, fmt.Errorf("populate node: %w", err)
		}

		out.Nodes = append(out.Nodes, id)
	}

	for i := 0; i < shape.Edges; i++ {
		if len(out.Nodes) < 2 {
			return nil, fmt.Errorf("populate edge: shape needs at least 2 nodes, has %d", len(out.Nodes))
		}

		src, tgt := pick2(rng, out.Nodes)

		id, err := g.AddEdgeIn(src, tgt, take(next), location)
		if err != nil {
			return nil, fmt.Errorf("populate edge: %w", err)
		}

		out.Edges = append(out.Edges, id)
	}

	for i := 0; i < shape.ExtraLinks; i++ {
		if len(out.Nodes) == 0 || len(out.Edges) == 0 {
			return nil, fmt.Errorf("populate link: shape needs nodes and edges")
		}

		src := out.Nodes[rng.Intn(len(out.Nodes))]
		tgt := out.Edges[rng.Intn(len(out.Edges))]

		id, err := g.AddLinkIn(src, tgt, nil, location)
		if err != nil {
			return nil, fmt.Errorf("populate link: %w", err)
		}

		out.Links = append(out.Links, id)
	}

	for i := 0; i < shape.Graphs; i++ {
		id, err := g.AddGraphIn(nil, location)
		if err != nil {
			return nil, fmt.Errorf("populate graph: %w", err)
		}

		out.Graphs = append(out.Graphs, id)

		if shape.Nested != nil {
			if _, err := populateIn(rng, g, *shape.Nested, id, next); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func take(next *int) int {
	v := *next
	*next++

	return v
}

// pick2 returns two distinct random elements of ids.
func pick2(rng *RNG, ids []hyper.Path) (hyper.Path, hyper.Path) {
	i := rng.Intn(len(ids))

	j := rng.Intn(len(ids) - 1)
	if j >= i {
		j++
	}

	return ids[i], ids[j]
}

// Ptr returns a pointer to v. Handy for link and graph values in tests.
func Ptr[T any](v T) *T {
	return &v
}
