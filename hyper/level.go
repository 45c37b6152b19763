// Package hyper implements an in-memory recursive directed hyper-multigraph.
//
// A hypergraph stores four kinds of elements: nodes, hyperedges, links and
// nested hypergraphs. Every element is addressed by a Path, the sequence of
// local ids leading from the root hypergraph down to the element. Local ids
// are handed out by a per-level counter and are never reused, so paths stay
// stable across removals.
//
// A Graph value is safe for concurrent readers. Writers require external
// synchronization.
package hyper

import (
	"github.com/RoaringBitmap/roaring/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Class tells a root hypergraph apart from a nested one. Only the root of a
// hierarchy accepts structural mutations.
type Class uint8

// Constants representing the hypergraph classes.
const (
	ClassRoot Class = iota
	ClassSub
)

// IsRoot reports whether the class marks the root of a hierarchy.
func (c Class) IsRoot() bool { return c == ClassRoot }

// String returns a string representation of the Class.
func (c Class) String() string {
	switch c {
	case ClassRoot:
		return "Root"
	case ClassSub:
		return "Sub"
	default:
		return "Unknown"
	}
}

// Graph is one level of a hypergraph hierarchy. The root Graph is the public
// entry point; nested levels are reached through it by path.
//
// Each level keeps its four element classes in insertion-ordered maps keyed
// by local id, a monotonic id counter shared by all four, and a bitmap of
// the ids currently alive at the level.
type Graph[T comparable] struct {
	value  *T
	nodes  *orderedmap.OrderedMap[int, *nodeSlot[T]]
	edges  *orderedmap.OrderedMap[int, *edgeSlot[T]]
	links  *orderedmap.OrderedMap[int, *linkSlot[T]]
	graphs *orderedmap.OrderedMap[int, *graphSlot[T]]
	live   *roaring.Bitmap
	nextID int
	class  Class
}

// New creates an empty root hypergraph with no value.
func New[T comparable]() *Graph[T] {
	g := newLevel[T](nil)
	g.class = ClassRoot

	return g
}

// NewWithValue creates an empty root hypergraph carrying the given value.
func NewWithValue[T comparable](value *T) *Graph[T] {
	g := newLevel[T](value)
	g.class = ClassRoot

	return g
}

func newLevel[T comparable](value *T) *Graph[T] {
	return &Graph[T]{
		value:  value,
		nodes:  orderedmap.New[int, *nodeSlot[T]](),
		edges:  orderedmap.New[int, *edgeSlot[T]](),
		links:  orderedmap.New[int, *linkSlot[T]](),
		graphs: orderedmap.New[int, *graphSlot[T]](),
		live:   roaring.New(),
		class:  ClassSub,
	}
}

// takeID hands out the next local id at this level and marks it alive.
// Ids are never reused, even after removals.
func (g *Graph[T]) takeID() int {
	id := g.nextID
	g.nextID++
	g.live.Add(uint32(id))

	return id
}

// release marks a local id as no longer alive. The counter is not rewound.
func (g *Graph[T]) release(id int) {
	g.live.Remove(uint32(id))
}

// Class returns whether this hypergraph is the root of its hierarchy.
func (g *Graph[T]) Class() Class { return g.class }

// Value returns the hypergraph's own value, which may be nil.
func (g *Graph[T]) Value() *T { return g.value }

// NextLocalID returns the local id the level would assign next. It only
// grows; removals leave gaps in the id space.
func (g *Graph[T]) NextLocalID() int { return g.nextID }

// NodeCount returns the number of nodes at this level only.
func (g *Graph[T]) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of hyperedges at this level only.
func (g *Graph[T]) EdgeCount() int { return g.edges.Len() }

// LinkCount returns the number of links at this level only.
func (g *Graph[T]) LinkCount() int { return g.links.Len() }

// GraphCount returns the number of nested hypergraphs at this level only.
func (g *Graph[T]) GraphCount() int { return g.graphs.Len() }

// Len returns the number of elements alive at this level only.
func (g *Graph[T]) Len() int { return int(g.live.GetCardinality()) }

// Depth returns the height of the hierarchy below this level. A hypergraph
// without nested hypergraphs has depth 1.
func (g *Graph[T]) Depth() int {
	max := 0

	for pair := g.graphs.Oldest(); pair != nil; pair = pair.Next() {
		if d := pair.Value.graph.Depth(); d > max {
			max = d
		}
	}

	return max + 1
}

// IDBound returns the lowest path that is lexicographically above every id
// this hypergraph has ever assigned. It is the bound walked towards by
// IDWalker: a path that compares greater or equal is out of range.
func (g *Graph[T]) IDBound() Path {
	bound := Path{g.nextID}

	if newest := g.graphs.Newest(); newest != nil {
		bound = append(bound, newest.Value.graph.IDBound()...)
	}

	return bound
}

// clone deep-copies the level and everything nested below it.
func (g *Graph[T]) clone() *Graph[T] {
	c := newLevel[T](clonePtr(g.value))
	c.nextID = g.nextID
	c.live = g.live.Clone()
	c.class = g.class

	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		c.nodes.Set(pair.Key, &nodeSlot[T]{value: pair.Value.value, conns: cloneConns(pair.Value.conns)})
	}

	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		c.edges.Set(pair.Key, &edgeSlot[T]{value: pair.Value.value, conns: cloneConns(pair.Value.conns)})
	}

	for pair := g.links.Oldest(); pair != nil; pair = pair.Next() {
		c.links.Set(pair.Key, &linkSlot[T]{
			value:  clonePtr(pair.Value.value),
			source: pair.Value.source.Clone(),
			target: pair.Value.target.Clone(),
		})
	}

	for pair := g.graphs.Oldest(); pair != nil; pair = pair.Next() {
		c.graphs.Set(pair.Key, &graphSlot[T]{
			graph: pair.Value.graph.clone(),
			conns: cloneConns(pair.Value.conns),
		})
	}

	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

func cloneConns(conns []Connection) []Connection {
	if conns == nil {
		return nil
	}

	c := make([]Connection, len(conns))
	for i, conn := range conns {
		c[i] = Connection{Link: conn.Link.Clone(), Dir: conn.Dir}
	}

	return c
}
