package hyper

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is the global identifier of an element. Each segment is the local id
// of a nested hypergraph on the way down, and the last segment is the local
// id of the element itself. The empty path names the root hypergraph.
type Path []int

// EmptyPath returns a fresh identifier for the root hypergraph.
func EmptyPath() Path { return Path{} }

// NewPath builds a path from the given segments.
func NewPath(segments ...int) Path { return Path(segments) }

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}

	c := make(Path, len(p))
	copy(c, p)

	return c
}

// IsEmpty reports whether the path names the root hypergraph.
func (p Path) IsEmpty() bool { return len(p) == 0 }

// Equal reports whether two paths name the same element.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}

	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Parent returns the path of the hypergraph that owns p. The parent of the
// empty path is the empty path itself.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return p
	}

	return p[:len(p)-1]
}

// Last returns the final segment, the element's local id within its owner.
// It must not be called on the empty path.
func (p Path) Last() int { return p[len(p)-1] }

// Child returns a copy of p with the given local id appended.
func (p Path) Child(id int) Path {
	c := make(Path, len(p)+1)
	copy(c, p)
	c[len(p)] = id

	return c
}

// Join returns a copy of p with all segments of q appended.
func (p Path) Join(q Path) Path {
	c := make(Path, len(p)+len(q))
	copy(c, p)
	copy(c[len(p):], q)

	return c
}

// HasPrefix reports whether prefix is an ancestor of p or equal to it.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}

	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}

	return true
}

// Compare orders paths lexicographically by segments, with a proper prefix
// ordered before any of its extensions. It returns -1, 0 or +1.
func (p Path) Compare(q Path) int {
	n := len(p)
	if len(q) < n {
		n = len(q)
	}

	for i := 0; i < n; i++ {
		switch {
		case p[i] < q[i]:
			return -1
		case p[i] > q[i]:
			return 1
		}
	}

	switch {
	case len(p) < len(q):
		return -1
	case len(p) > len(q):
		return 1
	default:
		return 0
	}
}

// String renders the path as "[0 2 1]". The root hypergraph renders as "[]".
func (p Path) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, seg := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(strconv.Itoa(seg))
	}

	sb.WriteByte(']')

	return sb.String()
}

var _ fmt.Stringer = Path{}
