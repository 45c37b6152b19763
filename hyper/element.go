package hyper

// Kind discriminates the four element types a hypergraph stores.
type Kind uint8

// Constants representing the element kinds.
const (
	KindNode Kind = iota
	KindEdge
	KindLink
	KindGraph
)

// Linkable reports whether elements of this kind may serve as link endpoints.
// Links cannot be endpoints of other links.
func (k Kind) Linkable() bool { return k != KindLink }

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "Node"
	case KindEdge:
		return "Edge"
	case KindLink:
		return "Link"
	case KindGraph:
		return "Graph"
	default:
		return "Unknown"
	}
}

// Element is a kind-tagged view of a stored element, as returned by
// ElementValue. Value is nil for valueless links and hypergraphs; for nodes
// and hyperedges it points at a copy of the stored value. Source and Target
// are set for links only.
type Element[T comparable] struct {
	Kind   Kind
	Value  *T
	Source Path
	Target Path
}

// pending describes an element on its way into the store, before validation.
type pending[T comparable] struct {
	kind   Kind
	value  T  // node and edge payload
	opt    *T // link and graph payload, may be nil
	source Path
	target Path
}

// nodeSlot stores a node's value and adjacency list.
type nodeSlot[T comparable] struct {
	value T
	conns []Connection
}

// edgeSlot stores a hyperedge's value and adjacency list. The adjacency list
// holds at least the two anchor links created alongside the edge.
type edgeSlot[T comparable] struct {
	value T
	conns []Connection
}

// linkSlot stores a link's optional value and its two endpoints. Links keep
// no adjacency list; nothing can link to a link.
type linkSlot[T comparable] struct {
	value  *T
	source Path
	target Path
}

// graphSlot stores a nested hypergraph and the adjacency list of the slot
// itself, since nested hypergraphs are linkable like nodes.
type graphSlot[T comparable] struct {
	graph *Graph[T]
	conns []Connection
}
