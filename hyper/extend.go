package hyper

// Extend grafts a deep copy of another hypergraph into this one as a new
// nested hypergraph at the root level, and returns the new hypergraph's id.
// The other hypergraph is not modified.
func (g *Graph[T]) Extend(other *Graph[T]) (Path, error) {
	return g.ExtendIn(other, EmptyPath())
}

// ExtendIn grafts a deep copy of another hypergraph into the hypergraph at
// location. Every path stored inside the copy, adjacency entries and link
// endpoints alike, is rebased onto the new hypergraph's id, so the grafted
// subtree is internally consistent. Links of the original that reached
// outside of it cannot survive the graft and must not exist.
func (g *Graph[T]) ExtendIn(other *Graph[T], location Path) (Path, error) {
	if !g.class.IsRoot() {
		return nil, ErrNotRoot
	}

	id, err := g.AddGraphIn(clonePtr(other.value), location)
	if err != nil {
		return nil, err
	}

	graft := other.clone()
	graft.class = ClassSub
	graft.rebase(id)

	lvl, _ := g.levelAt(location)
	slot, _ := lvl.graphs.Get(id.Last())
	slot.graph = graft

	return id, nil
}

// rebase prefixes every path stored at this level and below. The contents
// were addressed relative to the old root; after rebase they are addressed
// from the root of the adopting hierarchy.
func (g *Graph[T]) rebase(prefix Path) {
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		rebaseConns(pair.Value.conns, prefix)
	}

	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		rebaseConns(pair.Value.conns, prefix)
	}

	for pair := g.links.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.source = prefix.Join(pair.Value.source)
		pair.Value.target = prefix.Join(pair.Value.target)
	}

	for pair := g.graphs.Oldest(); pair != nil; pair = pair.Next() {
		rebaseConns(pair.Value.conns, prefix)
		pair.Value.graph.rebase(prefix)
	}
}

func rebaseConns(conns []Connection, prefix Path) {
	for i := range conns {
		conns[i].Link = prefix.Join(conns[i].Link)
	}
}
