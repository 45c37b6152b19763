package hyper

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Validate audits the structural invariants of the hypergraph: every link
// joins two existing linkable elements and is recorded in both their
// adjacency lists, every adjacency entry points back at a live link, every
// hyperedge keeps at least two connections, and every link and hyperedge is
// stored at a level that contains both of its endpoints.
//
// The audit only reads the hypergraph, so checks for independent elements
// run concurrently. The first violation found is returned.
func (g *Graph[T]) Validate(ctx context.Context) error {
	var ids []Path

	w := g.WalkIDs()
	for id, ok := w.Next(); ok; id, ok = w.Next() {
		if !id.IsEmpty() {
			ids = append(ids, id)
		}
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(4)

	const chunkSize = 256

	for start := 0; start < len(ids); start += chunkSize {
		end := start + chunkSize
		if end > len(ids) {
			end = len(ids)
		}

		chunk := ids[start:end]

		group.Go(func() error {
			for _, id := range chunk {
				if err := ctx.Err(); err != nil {
					return err
				}

				if err := g.validateElement(id); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return group.Wait()
}

func (g *Graph[T]) validateElement(id Path) error {
	kind, ok := g.kindAt(id)
	if !ok {
		return fmt.Errorf("element %v vanished during validation", id)
	}

	switch kind {
	case KindLink:
		return g.validateLink(id)
	case KindEdge:
		return g.validateEdge(id)
	default:
		return g.validateAdjacency(id)
	}
}

func (g *Graph[T]) validateLink(id Path) error {
	slot, err := g.linkSlotAt(id)
	if err != nil {
		return err
	}

	for _, check := range []struct {
		endpoint Path
		dir      Direction
		role     string
	}{
		{slot.source, Outgoing, "source"},
		{slot.target, Incoming, "target"},
	} {
		kind, ok := g.kindAt(check.endpoint)
		if !ok {
			return fmt.Errorf("link %v: %s %v does not exist", id, check.role, check.endpoint)
		}

		if !kind.Linkable() {
			return fmt.Errorf("link %v: %s %v is a link", id, check.role, check.endpoint)
		}

		if !check.endpoint.Parent().HasPrefix(id.Parent()) {
			return fmt.Errorf("link %v: %s %v lives outside of the link's level", id, check.role, check.endpoint)
		}

		conns, _ := g.adjacencyOf(check.endpoint)
		if !hasConnection(*conns, id, check.dir) {
			return fmt.Errorf("link %v: missing from the adjacency list of %s %v", id, check.role, check.endpoint)
		}
	}

	return nil
}

func (g *Graph[T]) validateEdge(id Path) error {
	conns, ok := g.adjacencyOf(id)
	if !ok {
		return fmt.Errorf("hyperedge %v vanished during validation", id)
	}

	if len(*conns) < 2 {
		return fmt.Errorf("hyperedge %v has %d connections, need at least 2", id, len(*conns))
	}

	return g.validateAdjacency(id)
}

// validateAdjacency checks that every adjacency entry of the element at id
// refers to a live link that has the element as the matching endpoint.
func (g *Graph[T]) validateAdjacency(id Path) error {
	conns, ok := g.adjacencyOf(id)
	if !ok {
		return fmt.Errorf("element %v vanished during validation", id)
	}

	for _, conn := range *conns {
		slot, err := g.linkSlotAt(conn.Link)
		if err != nil {
			return fmt.Errorf("element %v: adjacency entry %v is not a link", id, conn.Link)
		}

		endpoint := slot.target
		if conn.Dir == Outgoing {
			endpoint = slot.source
		}

		if !endpoint.Equal(id) {
			return fmt.Errorf("element %v: link %v does not have it as %s endpoint", id, conn.Link, conn.Dir)
		}
	}

	return nil
}

func hasConnection(conns []Connection, link Path, dir Direction) bool {
	for _, conn := range conns {
		if conn.Dir == dir && conn.Link.Equal(link) {
			return true
		}
	}

	return false
}
