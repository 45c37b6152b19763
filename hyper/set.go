package hyper

// SetNodeValue replaces the value of the node at id and returns the old one.
func (g *Graph[T]) SetNodeValue(id Path, value T) (T, error) {
	var zero T

	lvl, err := g.levelOf(id)
	if err != nil {
		return zero, &ErrNoNode{Path: id.Clone()}
	}

	slot, ok := lvl.nodes.Get(id.Last())
	if !ok {
		return zero, &ErrNoNode{Path: id.Clone()}
	}

	old := slot.value
	slot.value = value

	return old, nil
}

// SetEdgeValue replaces the value of the hyperedge at id and returns the old
// one.
func (g *Graph[T]) SetEdgeValue(id Path, value T) (T, error) {
	var zero T

	lvl, err := g.levelOf(id)
	if err != nil {
		return zero, &ErrNoEdge{Path: id.Clone()}
	}

	slot, ok := lvl.edges.Get(id.Last())
	if !ok {
		return zero, &ErrNoEdge{Path: id.Clone()}
	}

	old := slot.value
	slot.value = value

	return old, nil
}

// SetLinkValue replaces the value of the link at id and returns the old one.
// Both the new and the old value may be nil.
func (g *Graph[T]) SetLinkValue(id Path, value *T) (*T, error) {
	slot, err := g.linkSlotAt(id)
	if err != nil {
		return nil, err
	}

	old := slot.value
	slot.value = value

	return old, nil
}

// SetGraphValue replaces the value of the hypergraph at id and returns the
// old one. The empty path names the root hypergraph.
func (g *Graph[T]) SetGraphValue(id Path, value *T) (*T, error) {
	if id.IsEmpty() {
		old := g.value
		g.value = value

		return old, nil
	}

	lvl, err := g.levelOf(id)
	if err != nil {
		return nil, &ErrNoGraph{Path: id.Clone()}
	}

	slot, ok := lvl.graphs.Get(id.Last())
	if !ok {
		return nil, &ErrNoGraph{Path: id.Clone()}
	}

	old := slot.graph.value
	slot.graph.value = value

	return old, nil
}
