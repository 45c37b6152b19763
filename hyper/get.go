package hyper

// NodeValue returns a copy of the value of the node at id.
func (g *Graph[T]) NodeValue(id Path) (T, error) {
	var zero T

	lvl, err := g.levelOf(id)
	if err != nil {
		return zero, &ErrNoNode{Path: id.Clone()}
	}

	slot, ok := lvl.nodes.Get(id.Last())
	if !ok {
		return zero, &ErrNoNode{Path: id.Clone()}
	}

	return slot.value, nil
}

// EdgeValue returns a copy of the value of the hyperedge at id.
func (g *Graph[T]) EdgeValue(id Path) (T, error) {
	var zero T

	lvl, err := g.levelOf(id)
	if err != nil {
		return zero, &ErrNoEdge{Path: id.Clone()}
	}

	slot, ok := lvl.edges.Get(id.Last())
	if !ok {
		return zero, &ErrNoEdge{Path: id.Clone()}
	}

	return slot.value, nil
}

// LinkValue returns the value of the link at id, which may be nil.
func (g *Graph[T]) LinkValue(id Path) (*T, error) {
	slot, err := g.linkSlotAt(id)
	if err != nil {
		return nil, err
	}

	return slot.value, nil
}

// GraphValue returns the value of the hypergraph at id, which may be nil.
// The empty path names the root hypergraph.
func (g *Graph[T]) GraphValue(id Path) (*T, error) {
	if id.IsEmpty() {
		return g.value, nil
	}

	lvl, err := g.levelOf(id)
	if err != nil {
		return nil, &ErrNoGraph{Path: id.Clone()}
	}

	slot, ok := lvl.graphs.Get(id.Last())
	if !ok {
		return nil, &ErrNoGraph{Path: id.Clone()}
	}

	return slot.graph.value, nil
}

// ElementKind returns the kind of the element at id. The empty path is the
// root hypergraph.
func (g *Graph[T]) ElementKind(id Path) (Kind, error) {
	kind, ok := g.kindAt(id)
	if !ok {
		return 0, &ErrNoElement{Path: id.Clone()}
	}

	return kind, nil
}

// ElementValue returns a kind-tagged view of the element at id. For nodes
// and hyperedges, Value points at a copy of the stored value. For links, the
// endpoints are included.
func (g *Graph[T]) ElementValue(id Path) (Element[T], error) {
	kind, ok := g.kindAt(id)
	if !ok {
		return Element[T]{}, &ErrNoElement{Path: id.Clone()}
	}

	switch kind {
	case KindNode:
		v, err := g.NodeValue(id)
		if err != nil {
			return Element[T]{}, err
		}

		return Element[T]{Kind: KindNode, Value: &v}, nil

	case KindEdge:
		v, err := g.EdgeValue(id)
		if err != nil {
			return Element[T]{}, err
		}

		return Element[T]{Kind: KindEdge, Value: &v}, nil

	case KindLink:
		slot, err := g.linkSlotAt(id)
		if err != nil {
			return Element[T]{}, err
		}

		return Element[T]{
			Kind:   KindLink,
			Value:  clonePtr(slot.value),
			Source: slot.source.Clone(),
			Target: slot.target.Clone(),
		}, nil

	default:
		v, err := g.GraphValue(id)
		if err != nil {
			return Element[T]{}, err
		}

		return Element[T]{Kind: KindGraph, Value: clonePtr(v)}, nil
	}
}

// LinkEndpoints returns the source and target of the link at id.
func (g *Graph[T]) LinkEndpoints(id Path) (source, target Path, err error) {
	slot, err := g.linkSlotAt(id)
	if err != nil {
		return nil, nil, err
	}

	return slot.source.Clone(), slot.target.Clone(), nil
}

// LinksOf returns the adjacency list of the linkable element at id: every
// link touching the element with its orientation, in attachment order. The
// returned slice is owned by the hypergraph and must not be modified.
func (g *Graph[T]) LinksOf(id Path) ([]Connection, error) {
	conns, ok := g.adjacencyOf(id)
	if !ok {
		return nil, &ErrNoLinkable{Path: id.Clone()}
	}

	return *conns, nil
}

// GraphLevel returns counters for the hypergraph at id: its per-kind element
// counts and next local id.
func (g *Graph[T]) GraphLevel(id Path) (LevelInfo, error) {
	lvl, ok := g.levelAt(id)
	if !ok {
		return LevelInfo{}, &ErrNoGraph{Path: id.Clone()}
	}

	return LevelInfo{
		Nodes:       lvl.nodes.Len(),
		Edges:       lvl.edges.Len(),
		Links:       lvl.links.Len(),
		Graphs:      lvl.graphs.Len(),
		NextLocalID: lvl.nextID,
	}, nil
}

// LevelInfo summarizes one level of the hierarchy.
type LevelInfo struct {
	Nodes       int
	Edges       int
	Links       int
	Graphs      int
	NextLocalID int
}

func (g *Graph[T]) linkSlotAt(id Path) (*linkSlot[T], error) {
	lvl, err := g.levelOf(id)
	if err != nil {
		return nil, &ErrNoLink{Path: id.Clone()}
	}

	slot, ok := lvl.links.Get(id.Last())
	if !ok {
		return nil, &ErrNoLink{Path: id.Clone()}
	}

	return slot, nil
}
