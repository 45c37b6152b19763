package hypergo

import (
	"context"
	"sync"
	"time"

	"github.com/hupe1980/hypergo/hyper"
)

// Hypergo is an embeddable hypergraph store. It wraps a hyper.Graph with a
// lock, structured logging, metrics and snapshot handling.
type Hypergo[T comparable] struct {
	mu      sync.RWMutex
	graph   *hyper.Graph[T]
	opts    options
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty hypergraph store.
func New[T comparable](optFns ...Option) *Hypergo[T] {
	return wrap(hyper.New[T](), optFns)
}

// NewWithValue creates an empty hypergraph store whose root carries a value.
func NewWithValue[T comparable](value *T, optFns ...Option) *Hypergo[T] {
	return wrap(hyper.NewWithValue(value), optFns)
}

func wrap[T comparable](g *hyper.Graph[T], optFns []Option) *Hypergo[T] {
	opts := applyOptions(optFns)

	return &Hypergo[T]{
		graph:   g,
		opts:    opts,
		logger:  opts.logger,
		metrics: opts.metrics,
	}
}

// Graph returns the underlying hypergraph. It is safe for concurrent
// readers; mutations through it bypass the store's lock and must be
// externally synchronized against every other call.
func (h *Hypergo[T]) Graph() *hyper.Graph[T] {
	return h.graph
}

// AddNode inserts a node at the root level and returns its path.
func (h *Hypergo[T]) AddNode(value T) (hyper.Path, error) {
	return h.AddNodeIn(value, hyper.EmptyPath())
}

// AddNodeIn inserts a node into the hypergraph at location.
func (h *Hypergo[T]) AddNodeIn(value T, location hyper.Path) (hyper.Path, error) {
	return h.add(hyper.KindNode, func() (hyper.Path, error) {
		return h.graph.AddNodeIn(value, location)
	})
}

// AddEdge inserts a hyperedge joining source and target at the root level.
// Two anchor links tying the hyperedge to its endpoints are created with it.
func (h *Hypergo[T]) AddEdge(source, target hyper.Path, value T) (hyper.Path, error) {
	return h.AddEdgeIn(source, target, value, hyper.EmptyPath())
}

// AddEdgeIn inserts a hyperedge into the hypergraph at location.
func (h *Hypergo[T]) AddEdgeIn(source, target hyper.Path, value T, location hyper.Path) (hyper.Path, error) {
	return h.add(hyper.KindEdge, func() (hyper.Path, error) {
		return h.graph.AddEdgeIn(source, target, value, location)
	})
}

// AddLink inserts a link from source to target at the root level. Exactly
// one endpoint must be a hyperedge.
func (h *Hypergo[T]) AddLink(source, target hyper.Path, value *T) (hyper.Path, error) {
	return h.AddLinkIn(source, target, value, hyper.EmptyPath())
}

// AddLinkIn inserts a link into the hypergraph at location.
func (h *Hypergo[T]) AddLinkIn(source, target hyper.Path, value *T, location hyper.Path) (hyper.Path, error) {
	return h.add(hyper.KindLink, func() (hyper.Path, error) {
		return h.graph.AddLinkIn(source, target, value, location)
	})
}

// AddGraph inserts an empty nested hypergraph at the root level.
func (h *Hypergo[T]) AddGraph(value *T) (hyper.Path, error) {
	return h.AddGraphIn(value, hyper.EmptyPath())
}

// AddGraphIn inserts an empty nested hypergraph into the hypergraph at
// location.
func (h *Hypergo[T]) AddGraphIn(value *T, location hyper.Path) (hyper.Path, error) {
	return h.add(hyper.KindGraph, func() (hyper.Path, error) {
		return h.graph.AddGraphIn(value, location)
	})
}

func (h *Hypergo[T]) add(kind hyper.Kind, fn func() (hyper.Path, error)) (hyper.Path, error) {
	start := time.Now()

	h.mu.Lock()
	id, err := fn()
	h.mu.Unlock()

	err = translateError(err)
	h.metrics.RecordAdd(kind, time.Since(start), err)
	h.logger.LogAdd(kind, id, err)

	return id, err
}

// Remove deletes the element at id, whatever its kind, together with
// everything the deletion cascades into.
func (h *Hypergo[T]) Remove(id hyper.Path) error {
	start := time.Now()

	h.mu.Lock()
	err := translateError(h.graph.Remove(id))
	h.mu.Unlock()

	h.metrics.RecordRemove(time.Since(start), err)
	h.logger.LogRemove(id, err)

	return err
}

// RemoveNode deletes the node at id and returns its value.
func (h *Hypergo[T]) RemoveNode(id hyper.Path) (T, error) {
	start := time.Now()

	h.mu.Lock()
	v, err := h.graph.RemoveNode(id)
	h.mu.Unlock()

	err = translateError(err)
	h.metrics.RecordRemove(time.Since(start), err)
	h.logger.LogRemove(id, err)

	return v, err
}

// RemoveEdge deletes the hyperedge at id and returns its value.
func (h *Hypergo[T]) RemoveEdge(id hyper.Path) (T, error) {
	start := time.Now()

	h.mu.Lock()
	v, err := h.graph.RemoveEdge(id)
	h.mu.Unlock()

	err = translateError(err)
	h.metrics.RecordRemove(time.Since(start), err)
	h.logger.LogRemove(id, err)

	return v, err
}

// RemoveLink deletes the link at id and returns its value.
func (h *Hypergo[T]) RemoveLink(id hyper.Path) (*T, error) {
	start := time.Now()

	h.mu.Lock()
	v, err := h.graph.RemoveLink(id)
	h.mu.Unlock()

	err = translateError(err)
	h.metrics.RecordRemove(time.Since(start), err)
	h.logger.LogRemove(id, err)

	return v, err
}

// RemoveGraph deletes the nested hypergraph at id, its contents included,
// and returns its value.
func (h *Hypergo[T]) RemoveGraph(id hyper.Path) (*T, error) {
	start := time.Now()

	h.mu.Lock()
	v, err := h.graph.RemoveGraph(id)
	h.mu.Unlock()

	err = translateError(err)
	h.metrics.RecordRemove(time.Since(start), err)
	h.logger.LogRemove(id, err)

	return v, err
}

// NodeValue returns the value of the node at id.
func (h *Hypergo[T]) NodeValue(id hyper.Path) (T, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	v, err := h.graph.NodeValue(id)

	return v, translateError(err)
}

// EdgeValue returns the value of the hyperedge at id.
func (h *Hypergo[T]) EdgeValue(id hyper.Path) (T, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	v, err := h.graph.EdgeValue(id)

	return v, translateError(err)
}

// LinkValue returns the value of the link at id, which may be nil.
func (h *Hypergo[T]) LinkValue(id hyper.Path) (*T, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	v, err := h.graph.LinkValue(id)

	return v, translateError(err)
}

// GraphValue returns the value of the hypergraph at id, which may be nil.
// The empty path names the root.
func (h *Hypergo[T]) GraphValue(id hyper.Path) (*T, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	v, err := h.graph.GraphValue(id)

	return v, translateError(err)
}

// ElementKind returns the kind of the element at id.
func (h *Hypergo[T]) ElementKind(id hyper.Path) (hyper.Kind, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	k, err := h.graph.ElementKind(id)

	return k, translateError(err)
}

// ElementValue returns a kind-tagged view of the element at id.
func (h *Hypergo[T]) ElementValue(id hyper.Path) (hyper.Element[T], error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	el, err := h.graph.ElementValue(id)

	return el, translateError(err)
}

// LinkEndpoints returns the source and target of the link at id.
func (h *Hypergo[T]) LinkEndpoints(id hyper.Path) (source, target hyper.Path, err error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	source, target, err = h.graph.LinkEndpoints(id)

	return source, target, translateError(err)
}

// LinksOf returns a copy of the adjacency list of the element at id.
func (h *Hypergo[T]) LinksOf(id hyper.Path) ([]hyper.Connection, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, err := h.graph.LinksOf(id)
	if err != nil {
		return nil, translateError(err)
	}

	out := make([]hyper.Connection, len(conns))
	copy(out, conns)

	return out, nil
}

// SetNodeValue replaces the value of the node at id and returns the old one.
func (h *Hypergo[T]) SetNodeValue(id hyper.Path, value T) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	old, err := h.graph.SetNodeValue(id, value)

	return old, translateError(err)
}

// SetEdgeValue replaces the value of the hyperedge at id and returns the old
// one.
func (h *Hypergo[T]) SetEdgeValue(id hyper.Path, value T) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	old, err := h.graph.SetEdgeValue(id, value)

	return old, translateError(err)
}

// SetLinkValue replaces the value of the link at id and returns the old one.
func (h *Hypergo[T]) SetLinkValue(id hyper.Path, value *T) (*T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	old, err := h.graph.SetLinkValue(id, value)

	return old, translateError(err)
}

// SetGraphValue replaces the value of the hypergraph at id and returns the
// old one.
func (h *Hypergo[T]) SetGraphValue(id hyper.Path, value *T) (*T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	old, err := h.graph.SetGraphValue(id, value)

	return old, translateError(err)
}

// Contains reports whether id names an element of the hypergraph.
func (h *Hypergo[T]) Contains(id hyper.Path) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.graph.Contains(id)
}

// IDs returns every element id in lexicographic order, the root's empty
// path first.
func (h *Hypergo[T]) IDs() []hyper.Path {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.graph.IDs()
}

// WalkIDs returns a resumable walker over every element id. The walker reads
// the live hypergraph; concurrent writers require external coordination.
func (h *Hypergo[T]) WalkIDs() *hyper.IDWalker[T] {
	return h.graph.WalkIDs()
}

// Neighbors returns a walker over the elements reachable from id through
// outgoing links.
func (h *Hypergo[T]) Neighbors(id hyper.Path) (*hyper.NeighborWalker[T], error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	w, err := h.graph.Neighbors(id)

	return w, translateError(err)
}

// NeighborsDirected returns a walker over the neighbors of id in the given
// direction.
func (h *Hypergo[T]) NeighborsDirected(id hyper.Path, dir hyper.Direction) (*hyper.NeighborWalker[T], error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	w, err := h.graph.NeighborsDirected(id, dir)

	return w, translateError(err)
}

// FindNode returns the id of the first node holding the given value.
func (h *Hypergo[T]) FindNode(value T) (hyper.Path, error) {
	return h.find(func() (hyper.Path, error) { return h.graph.FindNode(value) })
}

// FindEdge returns the id of the first hyperedge holding the given value.
func (h *Hypergo[T]) FindEdge(value T) (hyper.Path, error) {
	return h.find(func() (hyper.Path, error) { return h.graph.FindEdge(value) })
}

// FindLink returns the id of the first link holding the given value.
func (h *Hypergo[T]) FindLink(value *T) (hyper.Path, error) {
	return h.find(func() (hyper.Path, error) { return h.graph.FindLink(value) })
}

// FindGraph returns the id of the first nested hypergraph holding the given
// value.
func (h *Hypergo[T]) FindGraph(value *T) (hyper.Path, error) {
	return h.find(func() (hyper.Path, error) { return h.graph.FindGraph(value) })
}

// FindLinkID searches the level at location for a link matching value,
// source and target exactly.
func (h *Hypergo[T]) FindLinkID(source, target hyper.Path, value *T, location hyper.Path) (hyper.Path, error) {
	return h.find(func() (hyper.Path, error) {
		return h.graph.FindLinkID(source, target, value, location)
	})
}

func (h *Hypergo[T]) find(fn func() (hyper.Path, error)) (hyper.Path, error) {
	start := time.Now()

	h.mu.RLock()
	id, err := fn()
	h.mu.RUnlock()

	err = translateError(err)
	h.metrics.RecordFind(time.Since(start), err)

	return id, err
}

// Clear removes every element from the hypergraph.
func (h *Hypergo[T]) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.graph.Clear()
}

// ClearNodes removes every node, cascading into their links.
func (h *Hypergo[T]) ClearNodes() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.graph.ClearNodes()
}

// ClearEdges removes every hyperedge together with their links.
func (h *Hypergo[T]) ClearEdges() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.graph.ClearEdges()
}

// ClearLinks removes every link; starved hyperedges go with them.
func (h *Hypergo[T]) ClearLinks() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.graph.ClearLinks()
}

// ClearGraphs removes every nested hypergraph with all of their contents.
func (h *Hypergo[T]) ClearGraphs() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.graph.ClearGraphs()
}

// Extend grafts a deep copy of another store's hypergraph into this one as a
// nested hypergraph at the root level.
func (h *Hypergo[T]) Extend(other *Hypergo[T]) (hyper.Path, error) {
	return h.ExtendIn(other, hyper.EmptyPath())
}

// ExtendIn grafts a deep copy of another store's hypergraph into the
// hypergraph at location. Extending a store with itself nests a copy of its
// current contents.
func (h *Hypergo[T]) ExtendIn(other *Hypergo[T], location hyper.Path) (hyper.Path, error) {
	// Self-extend must not take the read lock: the write lock below would
	// wait on it forever.
	if other != h {
		other.mu.RLock()
		defer other.mu.RUnlock()
	}

	return h.add(hyper.KindGraph, func() (hyper.Path, error) {
		return h.graph.ExtendIn(other.graph, location)
	})
}

// Validate audits the hypergraph's structural invariants and returns the
// first violation found.
func (h *Hypergo[T]) Validate(ctx context.Context) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.graph.Validate(ctx)
}

// Stats summarizes the hypergraph across all levels.
type Stats struct {
	Nodes  int
	Edges  int
	Links  int
	Graphs int // nested hypergraphs, the root not included
	Depth  int
}

// Stats returns element counts over the whole hierarchy.
func (h *Hypergo[T]) Stats() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	stats := Stats{Depth: h.graph.Depth()}

	for _, id := range h.graph.IDs() {
		if id.IsEmpty() {
			continue
		}

		kind, err := h.graph.ElementKind(id)
		if err != nil {
			continue
		}

		switch kind {
		case hyper.KindNode:
			stats.Nodes++
		case hyper.KindEdge:
			stats.Edges++
		case hyper.KindLink:
			stats.Links++
		case hyper.KindGraph:
			stats.Graphs++
		}
	}

	return stats
}
