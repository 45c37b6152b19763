package hyper

// AddNode inserts a node with the given value at the root level and returns
// its path.
func (g *Graph[T]) AddNode(value T) (Path, error) {
	return g.AddNodeIn(value, EmptyPath())
}

// AddNodeIn inserts a node with the given value into the hypergraph at
// location and returns its path.
func (g *Graph[T]) AddNodeIn(value T, location Path) (Path, error) {
	return g.addElementIn(pending[T]{kind: KindNode, value: value}, location)
}

// AddEdge inserts a hyperedge joining source and target at the root level.
// See AddEdgeIn.
func (g *Graph[T]) AddEdge(source, target Path, value T) (Path, error) {
	return g.AddEdgeIn(source, target, value, EmptyPath())
}

// AddEdgeIn inserts a hyperedge joining source and target into the
// hypergraph at location and returns the hyperedge's path.
//
// Alongside the hyperedge, two valueless anchor links are created at the
// same level: one from source to the hyperedge, one from the hyperedge to
// target. They receive the two local ids following the hyperedge's.
// Endpoints must be linkable, must not be hyperedges themselves, and both
// must live in hypergraphs at or below location.
func (g *Graph[T]) AddEdgeIn(source, target Path, value T, location Path) (Path, error) {
	return g.addElementIn(pending[T]{kind: KindEdge, value: value, source: source, target: target}, location)
}

// AddLink inserts a link from source to target at the root level. See
// AddLinkIn.
func (g *Graph[T]) AddLink(source, target Path, value *T) (Path, error) {
	return g.AddLinkIn(source, target, value, EmptyPath())
}

// AddLinkIn inserts a link from source to target into the hypergraph at
// location and returns the link's path. The value may be nil.
//
// Exactly one endpoint must be a hyperedge; the other must be a node or a
// nested hypergraph. Both endpoints must live in hypergraphs at or below
// location.
func (g *Graph[T]) AddLinkIn(source, target Path, value *T, location Path) (Path, error) {
	return g.addElementIn(pending[T]{kind: KindLink, opt: value, source: source, target: target}, location)
}

// AddGraph inserts an empty nested hypergraph at the root level and returns
// its path. The value may be nil.
func (g *Graph[T]) AddGraph(value *T) (Path, error) {
	return g.AddGraphIn(value, EmptyPath())
}

// AddGraphIn inserts an empty nested hypergraph into the hypergraph at
// location and returns its path. The value may be nil.
func (g *Graph[T]) AddGraphIn(value *T, location Path) (Path, error) {
	return g.addElementIn(pending[T]{kind: KindGraph, opt: value}, location)
}

// addElementIn validates el against the hypergraph and inserts it. The
// checks run in a fixed order so that callers get deterministic errors when
// several preconditions fail at once.
func (g *Graph[T]) addElementIn(el pending[T], location Path) (Path, error) {
	if !g.class.IsRoot() {
		return nil, ErrNotRoot
	}

	if !g.ContainsGraph(location) {
		return nil, &ErrNoGraph{Path: location.Clone()}
	}

	// Nodes and nested hypergraphs have no endpoints to check.
	if el.kind == KindNode || el.kind == KindGraph {
		return g.insert(el, location), nil
	}

	if el.source.IsEmpty() {
		return nil, ErrEmptySource
	}

	srcKind, ok := g.kindAt(el.source)

	switch {
	case !ok:
		return nil, &ErrNoSource{Path: el.source.Clone()}
	case srcKind == KindLink:
		return nil, &ErrLinkSource{Path: el.source.Clone()}
	case srcKind == KindEdge && el.kind == KindEdge:
		// Hyperedges connect to each other through links, never directly.
		return nil, &ErrUnlinkable{Source: el.source.Clone(), Target: el.target.Clone()}
	}

	if el.target.IsEmpty() {
		return nil, ErrEmptyTarget
	}

	tgtKind, ok := g.kindAt(el.target)

	switch {
	case !ok:
		return nil, &ErrNoTarget{Path: el.target.Clone()}
	case tgtKind == KindLink:
		return nil, &ErrLinkTarget{Path: el.target.Clone()}
	case tgtKind == KindEdge && el.kind == KindEdge:
		return nil, &ErrUnlinkable{Source: el.source.Clone(), Target: el.target.Clone()}
	}

	// A plain link must touch exactly one hyperedge.
	if el.kind == KindLink && (srcKind == KindEdge) == (tgtKind == KindEdge) {
		return nil, &ErrUnlinkable{Source: el.source.Clone(), Target: el.target.Clone()}
	}

	if !el.source.Parent().HasPrefix(location) || !el.target.Parent().HasPrefix(location) {
		return nil, &ErrIncoherentLink{
			Location: location.Clone(),
			Source:   el.source.Clone(),
			Target:   el.target.Clone(),
		}
	}

	return g.insert(el, location), nil
}

// insert places a validated element at location and wires adjacency lists.
func (g *Graph[T]) insert(el pending[T], location Path) Path {
	lvl, _ := g.levelAt(location)

	switch el.kind {
	case KindNode:
		id := lvl.takeID()
		lvl.nodes.Set(id, &nodeSlot[T]{value: el.value})

		return location.Child(id)

	case KindGraph:
		id := lvl.takeID()
		lvl.graphs.Set(id, &graphSlot[T]{graph: newLevel(el.opt)})

		return location.Child(id)

	case KindLink:
		id := lvl.takeID()
		path := location.Child(id)
		lvl.links.Set(id, &linkSlot[T]{value: el.opt, source: el.source.Clone(), target: el.target.Clone()})

		g.attach(el.source, Connection{Link: path, Dir: Outgoing})
		g.attach(el.target, Connection{Link: path, Dir: Incoming})

		return path

	case KindEdge:
		edgeID := lvl.takeID()
		edgePath := location.Child(edgeID)

		slot := &edgeSlot[T]{value: el.value}
		lvl.edges.Set(edgeID, slot)

		inID := lvl.takeID()
		inPath := location.Child(inID)
		lvl.links.Set(inID, &linkSlot[T]{source: el.source.Clone(), target: edgePath.Clone()})

		outID := lvl.takeID()
		outPath := location.Child(outID)
		lvl.links.Set(outID, &linkSlot[T]{source: edgePath.Clone(), target: el.target.Clone()})

		slot.conns = append(slot.conns,
			Connection{Link: inPath, Dir: Incoming},
			Connection{Link: outPath, Dir: Outgoing},
		)

		g.attach(el.source, Connection{Link: inPath, Dir: Outgoing})
		g.attach(el.target, Connection{Link: outPath, Dir: Incoming})

		return edgePath

	default:
		panic("hyper: unknown element kind")
	}
}

// attach appends a connection to the adjacency list of the element at id.
// The id has been validated as linkable by the caller.
func (g *Graph[T]) attach(id Path, conn Connection) {
	conns, ok := g.adjacencyOf(id)
	if !ok {
		panic("hyper: attach to non-linkable element " + id.String())
	}

	*conns = append(*conns, conn)
}
