package hypergo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hypergo/hyper"
)

var (
	// ErrNotFound is returned when an element is not found.
	ErrNotFound = errors.New("not found")
)

// translateError unifies the core's lookup failures under ErrNotFound while
// keeping the original error available via errors.Is/As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Not found unification.
	var noNode *hyper.ErrNoNode
	if errors.As(err, &noNode) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var noEdge *hyper.ErrNoEdge
	if errors.As(err, &noEdge) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var noLink *hyper.ErrNoLink
	if errors.As(err, &noLink) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var noGraph *hyper.ErrNoGraph
	if errors.As(err, &noGraph) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var noElement *hyper.ErrNoElement
	if errors.As(err, &noElement) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var noLinkable *hyper.ErrNoLinkable
	if errors.As(err, &noLinkable) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	for _, sentinel := range []error{
		hyper.ErrNodeNotFound,
		hyper.ErrEdgeNotFound,
		hyper.ErrLinkNotFound,
		hyper.ErrGraphNotFound,
	} {
		if errors.Is(err, sentinel) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
	}

	return err
}
