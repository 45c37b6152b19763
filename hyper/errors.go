package hyper

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySource is returned when a link or hyperedge is added with the
	// root hypergraph as source.
	ErrEmptySource = errors.New("the root hypergraph cannot be a source")

	// ErrEmptyTarget is returned when a link or hyperedge is added with the
	// root hypergraph as target.
	ErrEmptyTarget = errors.New("the root hypergraph cannot be a target")

	// ErrRootOwner is returned when an operation needs the owner of the root
	// hypergraph, which does not exist.
	ErrRootOwner = errors.New("the root hypergraph has no owner")

	// ErrNotRoot is returned when a structural mutation is attempted through
	// a hypergraph that is not the root of its hierarchy.
	ErrNotRoot = errors.New("structural mutations must go through the root hypergraph")

	// ErrNodeNotFound is returned by value searches that match no node.
	ErrNodeNotFound = errors.New("no node with the given value")

	// ErrEdgeNotFound is returned by value searches that match no hyperedge.
	ErrEdgeNotFound = errors.New("no hyperedge with the given value")

	// ErrLinkNotFound is returned by link searches that match no link.
	ErrLinkNotFound = errors.New("no link with the given value and endpoints")

	// ErrGraphNotFound is returned by value searches that match no nested
	// hypergraph.
	ErrGraphNotFound = errors.New("no hypergraph with the given value")
)

// ErrNoNode indicates that a path does not resolve to a node.
type ErrNoNode struct {
	Path Path
}

func (e *ErrNoNode) Error() string {
	return fmt.Sprintf("no node at %v", e.Path)
}

// ErrNoEdge indicates that a path does not resolve to a hyperedge.
type ErrNoEdge struct {
	Path Path
}

func (e *ErrNoEdge) Error() string {
	return fmt.Sprintf("no hyperedge at %v", e.Path)
}

// ErrNoLink indicates that a path does not resolve to a link.
type ErrNoLink struct {
	Path Path
}

func (e *ErrNoLink) Error() string {
	return fmt.Sprintf("no link at %v", e.Path)
}

// ErrNoGraph indicates that a path does not resolve to a hypergraph.
type ErrNoGraph struct {
	Path Path
}

func (e *ErrNoGraph) Error() string {
	return fmt.Sprintf("no hypergraph at %v", e.Path)
}

// ErrNoElement indicates that a path does not resolve to any element.
type ErrNoElement struct {
	Path Path
}

func (e *ErrNoElement) Error() string {
	return fmt.Sprintf("no element at %v", e.Path)
}

// ErrNoLinkable indicates that a path does not resolve to an element that
// can serve as a link endpoint.
type ErrNoLinkable struct {
	Path Path
}

func (e *ErrNoLinkable) Error() string {
	return fmt.Sprintf("no linkable element at %v", e.Path)
}

// ErrNoSource indicates that the source of a new link or hyperedge does not
// resolve to a linkable element.
//
// The underlying ErrNoLinkable can be accessed via errors.Unwrap.
type ErrNoSource struct {
	Path Path
}

func (e *ErrNoSource) Error() string {
	return fmt.Sprintf("no linkable source at %v", e.Path)
}

func (e *ErrNoSource) Unwrap() error { return &ErrNoLinkable{Path: e.Path} }

// ErrNoTarget indicates that the target of a new link or hyperedge does not
// resolve to a linkable element.
//
// The underlying ErrNoLinkable can be accessed via errors.Unwrap.
type ErrNoTarget struct {
	Path Path
}

func (e *ErrNoTarget) Error() string {
	return fmt.Sprintf("no linkable target at %v", e.Path)
}

func (e *ErrNoTarget) Unwrap() error { return &ErrNoLinkable{Path: e.Path} }

// ErrLinkSource indicates that a link was named as the source of a new link
// or hyperedge. Links cannot be endpoints.
type ErrLinkSource struct {
	Path Path
}

func (e *ErrLinkSource) Error() string {
	return fmt.Sprintf("a link cannot be a source: %v", e.Path)
}

// ErrLinkTarget indicates that a link was named as the target of a new link
// or hyperedge. Links cannot be endpoints.
type ErrLinkTarget struct {
	Path Path
}

func (e *ErrLinkTarget) Error() string {
	return fmt.Sprintf("a link cannot be a target: %v", e.Path)
}

// ErrUnlinkable indicates an endpoint combination a plain link may not join:
// two hyperedges, or no hyperedge at all. It is also returned when a new
// hyperedge names another hyperedge as an endpoint.
type ErrUnlinkable struct {
	Source Path
	Target Path
}

func (e *ErrUnlinkable) Error() string {
	return fmt.Sprintf("cannot link %v and %v", e.Source, e.Target)
}

// ErrIncoherentLink indicates that a link or hyperedge was placed in a
// hypergraph that is not an ancestor of both endpoint owners.
type ErrIncoherentLink struct {
	Location Path
	Source   Path
	Target   Path
}

func (e *ErrIncoherentLink) Error() string {
	return fmt.Sprintf("hypergraph %v does not contain both %v and %v", e.Location, e.Source, e.Target)
}
