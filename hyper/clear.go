package hyper

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Clear removes every element from the hypergraph in one sweep. The id
// counters are kept, so cleared ids are not reassigned.
func (g *Graph[T]) Clear() error {
	if !g.class.IsRoot() {
		return ErrNotRoot
	}

	g.reset()

	return nil
}

// ClearNodes removes every node of the whole hierarchy, cascading into the
// links that touched them and any hyperedges those cascades starve.
func (g *Graph[T]) ClearNodes() error {
	return g.clearKind(KindNode)
}

// ClearEdges removes every hyperedge of the whole hierarchy together with
// their links.
func (g *Graph[T]) ClearEdges() error {
	return g.clearKind(KindEdge)
}

// ClearLinks removes every link of the whole hierarchy. Hyperedges lose
// their anchor links and are removed by the cascade as well.
func (g *Graph[T]) ClearLinks() error {
	return g.clearKind(KindLink)
}

// ClearGraphs removes every nested hypergraph of the whole hierarchy with
// all of their contents.
func (g *Graph[T]) ClearGraphs() error {
	return g.clearKind(KindGraph)
}

func (g *Graph[T]) clearKind(kind Kind) error {
	if !g.class.IsRoot() {
		return ErrNotRoot
	}

	// Snapshot first: removals cascade and mutate the id space under the walker.
	var victims []Path

	w := g.WalkIDs()
	for id, ok := w.Next(); ok; id, ok = w.Next() {
		if id.IsEmpty() {
			continue
		}

		if k, ok := g.kindAt(id); ok && k == kind {
			victims = append(victims, id)
		}
	}

	for _, id := range victims {
		if !g.Contains(id) {
			continue
		}

		if err := g.Remove(id); err != nil {
			return err
		}
	}

	return nil
}

func (g *Graph[T]) reset() {
	g.nodes = orderedmap.New[int, *nodeSlot[T]]()
	g.edges = orderedmap.New[int, *edgeSlot[T]]()
	g.links = orderedmap.New[int, *linkSlot[T]]()
	g.graphs = orderedmap.New[int, *graphSlot[T]]()
	g.live.Clear()
}
