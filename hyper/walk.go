package hyper

// NextID returns the id that follows the given one in lexicographic order,
// skipping gaps left by removals and descending into nested hypergraphs
// pre-order. It reports false when id is the last one in the hypergraph.
//
// Starting from the empty path enumerates every element: the root comes
// first, followed by its elements in id order, with a nested hypergraph's
// contents visited right after the hypergraph itself.
func (g *Graph[T]) NextID(id Path) (Path, bool) {
	bound := g.IDBound()
	cur := id.Clone()

	for {
		if cur.Compare(bound) >= 0 {
			return nil, false
		}

		if cur.IsEmpty() {
			cur = Path{0}
		} else if kind, ok := g.kindAt(cur); ok {
			if kind == KindGraph {
				cur = append(cur, 0)
			} else {
				cur[len(cur)-1]++
			}
		} else {
			// The candidate was removed or never assigned. Step over it,
			// backtracking out of exhausted levels.
			cur[len(cur)-1]++

			for {
				owner, ok := g.levelAt(cur.Parent())
				if ok && cur.Last() < owner.nextID {
					break
				}

				cur = cur.Parent()
				if cur.IsEmpty() {
					return nil, false
				}

				cur[len(cur)-1]++
			}
		}

		if g.Contains(cur) {
			return cur, true
		}
	}
}

// NextNeighbor is the position-only step of a neighbor walk. It scans the
// adjacency list of source from cursor for the next link oriented dir, and
// returns the element at the link's far end together with the cursor to
// resume from. It reports false when the list is exhausted or source no
// longer exists; the returned cursor can still resume if links are attached
// later.
func (g *Graph[T]) NextNeighbor(source Path, dir Direction, cursor int) (Path, int, bool) {
	conns, ok := g.adjacencyOf(source)
	if !ok {
		return nil, cursor, false
	}

	for cursor < len(*conns) {
		conn := (*conns)[cursor]
		cursor++

		if conn.Dir != dir {
			continue
		}

		src, tgt, err := g.LinkEndpoints(conn.Link)
		if err != nil {
			continue
		}

		if dir == Outgoing {
			return tgt, cursor, true
		}

		return src, cursor, true
	}

	return nil, cursor, false
}

// IDWalker enumerates every element id of a hypergraph in lexicographic
// order, starting with the empty path of the root. It is a convenience over
// NextID: the walker holds only its position, so it stays valid across
// mutations and simply continues from where it stopped, seeing the
// hypergraph as it is at each step. The position alone is enough to persist
// and resume a walk through NextID directly.
type IDWalker[T comparable] struct {
	graph *Graph[T]
	pos   Path
	began bool
}

// WalkIDs returns a walker positioned before the root hypergraph.
func (g *Graph[T]) WalkIDs() *IDWalker[T] {
	return &IDWalker[T]{graph: g}
}

// Next advances the walker and returns the next id. The first call returns
// the empty path of the root. It reports false when the walk is exhausted;
// later calls may resume if elements past the position were added meanwhile.
func (w *IDWalker[T]) Next() (Path, bool) {
	if !w.began {
		w.began = true
		w.pos = EmptyPath()

		return w.pos.Clone(), true
	}

	next, ok := w.graph.NextID(w.pos)
	if !ok {
		return nil, false
	}

	w.pos = next

	return next.Clone(), true
}

// IDs returns every element id in lexicographic order, the root's empty
// path first.
func (g *Graph[T]) IDs() []Path {
	var ids []Path

	w := g.WalkIDs()
	for id, ok := w.Next(); ok; id, ok = w.Next() {
		ids = append(ids, id)
	}

	return ids
}

// NeighborWalker enumerates the neighbors of a linkable element in one
// direction: for each link of matching orientation it yields the element at
// the link's far end. It is a convenience over NextNeighbor: the walker
// holds only the source path, the direction and a cursor into the adjacency
// list, so links attached after its creation are still visited, the same
// neighbor is yielded once per connecting link, and a walk can be persisted
// and resumed through NextNeighbor directly.
type NeighborWalker[T comparable] struct {
	graph  *Graph[T]
	source Path
	dir    Direction
	cursor int
}

// Neighbors returns a walker over the elements reachable from id through
// outgoing links.
func (g *Graph[T]) Neighbors(id Path) (*NeighborWalker[T], error) {
	return g.NeighborsDirected(id, Outgoing)
}

// NeighborsDirected returns a walker over the neighbors of id in the given
// direction. The id must name a linkable element.
func (g *Graph[T]) NeighborsDirected(id Path, dir Direction) (*NeighborWalker[T], error) {
	if !g.ContainsLinkable(id) {
		return nil, &ErrNoLinkable{Path: id.Clone()}
	}

	return &NeighborWalker[T]{graph: g, source: id.Clone(), dir: dir}, nil
}

// Next advances the walker and returns the next neighbor's id. It reports
// false when the adjacency list is exhausted or the source element no longer
// exists.
func (w *NeighborWalker[T]) Next() (Path, bool) {
	id, cursor, ok := w.graph.NextNeighbor(w.source, w.dir, w.cursor)
	w.cursor = cursor

	return id, ok
}
