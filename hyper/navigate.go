package hyper

// levelAt resolves a path of nested hypergraph ids to the level it names.
// The empty path names g itself.
func (g *Graph[T]) levelAt(path Path) (*Graph[T], bool) {
	lvl := g

	for _, id := range path {
		slot, ok := lvl.graphs.Get(id)
		if !ok {
			return nil, false
		}

		lvl = slot.graph
	}

	return lvl, true
}

// levelOf resolves the level that owns the element at id.
func (g *Graph[T]) levelOf(id Path) (*Graph[T], error) {
	if id.IsEmpty() {
		return nil, ErrRootOwner
	}

	lvl, ok := g.levelAt(id.Parent())
	if !ok {
		return nil, &ErrNoGraph{Path: id.Parent().Clone()}
	}

	return lvl, nil
}

// kindAt resolves the element kind at id. The empty path is the root
// hypergraph.
func (g *Graph[T]) kindAt(id Path) (Kind, bool) {
	if id.IsEmpty() {
		return KindGraph, true
	}

	lvl, ok := g.levelAt(id.Parent())
	if !ok {
		return 0, false
	}

	last := id.Last()

	if _, ok := lvl.nodes.Get(last); ok {
		return KindNode, true
	}

	if _, ok := lvl.edges.Get(last); ok {
		return KindEdge, true
	}

	if _, ok := lvl.links.Get(last); ok {
		return KindLink, true
	}

	if _, ok := lvl.graphs.Get(last); ok {
		return KindGraph, true
	}

	return 0, false
}

// adjacencyOf returns a pointer to the adjacency list of the linkable
// element at id. Links have no adjacency list.
func (g *Graph[T]) adjacencyOf(id Path) (*[]Connection, bool) {
	if id.IsEmpty() {
		return nil, false
	}

	lvl, ok := g.levelAt(id.Parent())
	if !ok {
		return nil, false
	}

	last := id.Last()

	if slot, ok := lvl.nodes.Get(last); ok {
		return &slot.conns, true
	}

	if slot, ok := lvl.edges.Get(last); ok {
		return &slot.conns, true
	}

	if slot, ok := lvl.graphs.Get(last); ok {
		return &slot.conns, true
	}

	return nil, false
}

// Contains reports whether id names an element of this hypergraph. The
// empty path always does: it names the root.
func (g *Graph[T]) Contains(id Path) bool {
	if id.IsEmpty() {
		return true
	}

	lvl, ok := g.levelAt(id.Parent())
	if !ok {
		return false
	}

	return lvl.live.Contains(uint32(id.Last()))
}

// ContainsNode reports whether id names a node.
func (g *Graph[T]) ContainsNode(id Path) bool {
	kind, ok := g.kindAt(id)

	return ok && kind == KindNode
}

// ContainsEdge reports whether id names a hyperedge.
func (g *Graph[T]) ContainsEdge(id Path) bool {
	kind, ok := g.kindAt(id)

	return ok && kind == KindEdge
}

// ContainsLink reports whether id names a link.
func (g *Graph[T]) ContainsLink(id Path) bool {
	kind, ok := g.kindAt(id)

	return ok && kind == KindLink
}

// ContainsGraph reports whether id names a hypergraph, the root included.
func (g *Graph[T]) ContainsGraph(id Path) bool {
	kind, ok := g.kindAt(id)

	return ok && kind == KindGraph
}

// ContainsLinkable reports whether id names an element that can be a link
// endpoint. The root hypergraph cannot.
func (g *Graph[T]) ContainsLinkable(id Path) bool {
	if id.IsEmpty() {
		return false
	}

	kind, ok := g.kindAt(id)

	return ok && kind.Linkable()
}
