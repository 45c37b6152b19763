package hyper

// FindNode returns the id of the first node holding the given value, in
// lexicographic id order across the whole hierarchy.
func (g *Graph[T]) FindNode(value T) (Path, error) {
	w := g.WalkIDs()

	for id, ok := w.Next(); ok; id, ok = w.Next() {
		if id.IsEmpty() {
			continue
		}

		lvl, err := g.levelOf(id)
		if err != nil {
			continue
		}

		if slot, ok := lvl.nodes.Get(id.Last()); ok && slot.value == value {
			return id, nil
		}
	}

	return nil, ErrNodeNotFound
}

// FindEdge returns the id of the first hyperedge holding the given value, in
// lexicographic id order across the whole hierarchy.
func (g *Graph[T]) FindEdge(value T) (Path, error) {
	w := g.WalkIDs()

	for id, ok := w.Next(); ok; id, ok = w.Next() {
		if id.IsEmpty() {
			continue
		}

		lvl, err := g.levelOf(id)
		if err != nil {
			continue
		}

		if slot, ok := lvl.edges.Get(id.Last()); ok && slot.value == value {
			return id, nil
		}
	}

	return nil, ErrEdgeNotFound
}

// FindLink returns the id of the first link holding the given value, in
// lexicographic id order across the whole hierarchy. A nil value matches
// valueless links, anchor links included.
func (g *Graph[T]) FindLink(value *T) (Path, error) {
	w := g.WalkIDs()

	for id, ok := w.Next(); ok; id, ok = w.Next() {
		if id.IsEmpty() {
			continue
		}

		lvl, err := g.levelOf(id)
		if err != nil {
			continue
		}

		if slot, ok := lvl.links.Get(id.Last()); ok && valuesEqual(slot.value, value) {
			return id, nil
		}
	}

	return nil, ErrLinkNotFound
}

// FindGraph returns the id of the first nested hypergraph holding the given
// value, in lexicographic id order across the whole hierarchy. The root is
// not considered.
func (g *Graph[T]) FindGraph(value *T) (Path, error) {
	w := g.WalkIDs()

	for id, ok := w.Next(); ok; id, ok = w.Next() {
		if id.IsEmpty() {
			continue
		}

		lvl, err := g.levelOf(id)
		if err != nil {
			continue
		}

		if slot, ok := lvl.graphs.Get(id.Last()); ok && valuesEqual(slot.graph.value, value) {
			return id, nil
		}
	}

	return nil, ErrGraphNotFound
}

// FindLinkID searches the single level at location for a link matching
// value, source and target exactly, and returns its id. Anchor links are
// valueless, so passing a nil value finds them by their endpoints.
func (g *Graph[T]) FindLinkID(source, target Path, value *T, location Path) (Path, error) {
	lvl, ok := g.levelAt(location)
	if !ok {
		return nil, &ErrNoGraph{Path: location.Clone()}
	}

	for pair := lvl.links.Oldest(); pair != nil; pair = pair.Next() {
		slot := pair.Value

		if valuesEqual(slot.value, value) && slot.source.Equal(source) && slot.target.Equal(target) {
			return location.Child(pair.Key), nil
		}
	}

	return nil, ErrLinkNotFound
}

// RemoveNodeByValue removes the first node holding the given value and
// returns its id.
func (g *Graph[T]) RemoveNodeByValue(value T) (Path, error) {
	id, err := g.FindNode(value)
	if err != nil {
		return nil, err
	}

	if _, err := g.RemoveNode(id); err != nil {
		return nil, err
	}

	return id, nil
}

// RemoveEdgeByValue removes the first hyperedge holding the given value and
// returns its id.
func (g *Graph[T]) RemoveEdgeByValue(value T) (Path, error) {
	id, err := g.FindEdge(value)
	if err != nil {
		return nil, err
	}

	if _, err := g.RemoveEdge(id); err != nil {
		return nil, err
	}

	return id, nil
}

// RemoveLinkByValue removes the first link holding the given value and
// returns its id.
func (g *Graph[T]) RemoveLinkByValue(value *T) (Path, error) {
	id, err := g.FindLink(value)
	if err != nil {
		return nil, err
	}

	if _, err := g.RemoveLink(id); err != nil {
		return nil, err
	}

	return id, nil
}

// RemoveGraphByValue removes the first nested hypergraph holding the given
// value and returns its id.
func (g *Graph[T]) RemoveGraphByValue(value *T) (Path, error) {
	id, err := g.FindGraph(value)
	if err != nil {
		return nil, err
	}

	if _, err := g.RemoveGraph(id); err != nil {
		return nil, err
	}

	return id, nil
}

// valuesEqual compares two optional values: both nil, or both set and equal.
func valuesEqual[T comparable](a, b *T) bool {
	if (a == nil) != (b == nil) {
		return false
	}

	return a == nil || *a == *b
}
