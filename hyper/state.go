package hyper

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// State is a codec-friendly snapshot of one hypergraph level and everything
// nested below it. Insertion order of the per-kind entry lists is
// significant and is restored verbatim.
type State[T comparable] struct {
	Value  *T              `json:"value,omitempty"`
	NextID int             `json:"next_id"`
	Nodes  []NodeState[T]  `json:"nodes,omitempty"`
	Edges  []EdgeState[T]  `json:"edges,omitempty"`
	Links  []LinkState[T]  `json:"links,omitempty"`
	Graphs []GraphState[T] `json:"graphs,omitempty"`
}

// NodeState is the snapshot of one node.
type NodeState[T comparable] struct {
	ID    int          `json:"id"`
	Value T            `json:"value"`
	Links []Connection `json:"links,omitempty"`
}

// EdgeState is the snapshot of one hyperedge.
type EdgeState[T comparable] struct {
	ID    int          `json:"id"`
	Value T            `json:"value"`
	Links []Connection `json:"links,omitempty"`
}

// LinkState is the snapshot of one link.
type LinkState[T comparable] struct {
	ID     int  `json:"id"`
	Value  *T   `json:"value,omitempty"`
	Source Path `json:"source"`
	Target Path `json:"target"`
}

// GraphState is the snapshot of one nested hypergraph.
type GraphState[T comparable] struct {
	ID    int          `json:"id"`
	Graph State[T]     `json:"graph"`
	Links []Connection `json:"links,omitempty"`
}

// State captures the hypergraph into a snapshot that can be marshaled by any
// codec and restored with FromState.
func (g *Graph[T]) State() State[T] {
	s := State[T]{
		Value:  clonePtr(g.value),
		NextID: g.nextID,
	}

	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		s.Nodes = append(s.Nodes, NodeState[T]{
			ID:    pair.Key,
			Value: pair.Value.value,
			Links: cloneConns(pair.Value.conns),
		})
	}

	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		s.Edges = append(s.Edges, EdgeState[T]{
			ID:    pair.Key,
			Value: pair.Value.value,
			Links: cloneConns(pair.Value.conns),
		})
	}

	for pair := g.links.Oldest(); pair != nil; pair = pair.Next() {
		s.Links = append(s.Links, LinkState[T]{
			ID:     pair.Key,
			Value:  clonePtr(pair.Value.value),
			Source: pair.Value.source.Clone(),
			Target: pair.Value.target.Clone(),
		})
	}

	for pair := g.graphs.Oldest(); pair != nil; pair = pair.Next() {
		s.Graphs = append(s.Graphs, GraphState[T]{
			ID:    pair.Key,
			Graph: pair.Value.graph.State(),
			Links: cloneConns(pair.Value.conns),
		})
	}

	return s
}

// FromState rebuilds a root hypergraph from a snapshot.
func FromState[T comparable](s State[T]) (*Graph[T], error) {
	g, err := levelFromState(s)
	if err != nil {
		return nil, err
	}

	g.class = ClassRoot

	return g, nil
}

func levelFromState[T comparable](s State[T]) (*Graph[T], error) {
	g := newLevel[T](s.Value)
	g.nextID = s.NextID

	for _, n := range s.Nodes {
		if err := claimID(g.live, n.ID, s.NextID); err != nil {
			return nil, err
		}

		g.nodes.Set(n.ID, &nodeSlot[T]{value: n.Value, conns: n.Links})
	}

	for _, e := range s.Edges {
		if err := claimID(g.live, e.ID, s.NextID); err != nil {
			return nil, err
		}

		g.edges.Set(e.ID, &edgeSlot[T]{value: e.Value, conns: e.Links})
	}

	for _, l := range s.Links {
		if err := claimID(g.live, l.ID, s.NextID); err != nil {
			return nil, err
		}

		g.links.Set(l.ID, &linkSlot[T]{value: l.Value, source: l.Source, target: l.Target})
	}

	for _, n := range s.Graphs {
		if err := claimID(g.live, n.ID, s.NextID); err != nil {
			return nil, err
		}

		sub, err := levelFromState(n.Graph)
		if err != nil {
			return nil, err
		}

		g.graphs.Set(n.ID, &graphSlot[T]{graph: sub, conns: n.Links})
	}

	return g, nil
}

// claimID marks a restored local id as alive, rejecting duplicates and ids
// past the level's counter.
func claimID(live *roaring.Bitmap, id, nextID int) error {
	if id < 0 || id >= nextID {
		return fmt.Errorf("hyper: local id %d out of range, next id is %d", id, nextID)
	}

	if live.Contains(uint32(id)) {
		return fmt.Errorf("hyper: duplicate local id %d", id)
	}

	live.Add(uint32(id))

	return nil
}
