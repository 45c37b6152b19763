package hyper

import "fmt"

// Remove deletes the element at id, whatever its kind, and everything the
// deletion cascades into. Removing the root hypergraph is not possible.
func (g *Graph[T]) Remove(id Path) error {
	if id.IsEmpty() {
		return ErrRootOwner
	}

	kind, ok := g.kindAt(id)
	if !ok {
		return &ErrNoElement{Path: id.Clone()}
	}

	switch kind {
	case KindNode:
		_, err := g.RemoveNode(id)

		return err
	case KindEdge:
		_, err := g.RemoveEdge(id)

		return err
	case KindLink:
		_, err := g.RemoveLink(id)

		return err
	default:
		_, err := g.RemoveGraph(id)

		return err
	}
}

// RemoveNode deletes the node at id and returns its value. Every link that
// touched the node is removed as well, which in turn removes hyperedges left
// with fewer than two connections.
func (g *Graph[T]) RemoveNode(id Path) (T, error) {
	var zero T

	lvl, err := g.levelOf(id)
	if err != nil {
		return zero, &ErrNoNode{Path: id.Clone()}
	}

	slot, ok := lvl.nodes.Get(id.Last())
	if !ok {
		return zero, &ErrNoNode{Path: id.Clone()}
	}

	lvl.nodes.Delete(id.Last())
	lvl.release(id.Last())

	if err := g.cascadeLinks(slot.conns); err != nil {
		return zero, err
	}

	return slot.value, nil
}

// RemoveEdge deletes the hyperedge at id and returns its value. All links
// connected to it, the anchor links included, are removed as well.
func (g *Graph[T]) RemoveEdge(id Path) (T, error) {
	var zero T

	lvl, err := g.levelOf(id)
	if err != nil {
		return zero, &ErrNoEdge{Path: id.Clone()}
	}

	slot, ok := lvl.edges.Get(id.Last())
	if !ok {
		return zero, &ErrNoEdge{Path: id.Clone()}
	}

	lvl.edges.Delete(id.Last())
	lvl.release(id.Last())

	if err := g.cascadeLinks(slot.conns); err != nil {
		return zero, err
	}

	return slot.value, nil
}

// RemoveLink deletes the link at id, detaches it from both endpoints and
// returns its value. A hyperedge endpoint left with fewer than two
// connections is removed in turn.
func (g *Graph[T]) RemoveLink(id Path) (*T, error) {
	lvl, err := g.levelOf(id)
	if err != nil {
		return nil, &ErrNoLink{Path: id.Clone()}
	}

	slot, ok := lvl.links.Get(id.Last())
	if !ok {
		return nil, &ErrNoLink{Path: id.Clone()}
	}

	lvl.links.Delete(id.Last())
	lvl.release(id.Last())

	if err := g.detach(id, slot.source); err != nil {
		return nil, err
	}

	if err := g.detach(id, slot.target); err != nil {
		return nil, err
	}

	return slot.value, nil
}

// RemoveGraph deletes the nested hypergraph at id and returns its value.
// Links that touched the hypergraph itself are removed first, then the
// hypergraph's contents are torn down element by element.
func (g *Graph[T]) RemoveGraph(id Path) (*T, error) {
	lvl, err := g.levelOf(id)
	if err != nil {
		return nil, &ErrNoGraph{Path: id.Clone()}
	}

	slot, ok := lvl.graphs.Get(id.Last())
	if !ok {
		return nil, &ErrNoGraph{Path: id.Clone()}
	}

	if err := g.cascadeLinks(slot.conns); err != nil {
		return nil, err
	}

	// Snapshot the contents before tearing them down: removals mutate the
	// maps the walker would otherwise iterate.
	var contents []Path

	for next, ok := slot.graph.NextID(EmptyPath()); ok; next, ok = slot.graph.NextID(next) {
		contents = append(contents, id.Join(next))
	}

	for _, child := range contents {
		if !g.Contains(child) {
			// Already gone through an earlier cascade.
			continue
		}

		if err := g.Remove(child); err != nil {
			return nil, err
		}
	}

	lvl.graphs.Delete(id.Last())
	lvl.release(id.Last())

	return slot.graph.value, nil
}

// cascadeLinks removes every link in a snapshot of an adjacency list. Links
// already consumed by a nested cascade are skipped.
func (g *Graph[T]) cascadeLinks(conns []Connection) error {
	snapshot := cloneConns(conns)

	for _, conn := range snapshot {
		if !g.ContainsLink(conn.Link) {
			continue
		}

		if _, err := g.RemoveLink(conn.Link); err != nil {
			return err
		}
	}

	return nil
}

// detach removes the entry for linkID from the adjacency list of endpoint.
// An endpoint that is already gone belongs to an ongoing cascade and is
// ignored. A hyperedge endpoint dropping below two connections is removed.
func (g *Graph[T]) detach(linkID, endpoint Path) error {
	conns, ok := g.adjacencyOf(endpoint)
	if !ok {
		return nil
	}

	idx := -1

	for i, conn := range *conns {
		if conn.Link.Equal(linkID) {
			idx = i

			break
		}
	}

	if idx < 0 {
		panic(fmt.Sprintf("hyper: link %v missing from adjacency list of %v", linkID, endpoint))
	}

	*conns = append((*conns)[:idx], (*conns)[idx+1:]...)

	if kind, _ := g.kindAt(endpoint); kind == KindEdge && len(*conns) < 2 {
		if _, err := g.RemoveEdge(endpoint); err != nil {
			return err
		}
	}

	return nil
}
