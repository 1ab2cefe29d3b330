package dfs

import "fmt"

// walker encapsulates state during Walk.
type walker[T comparable] struct {
	next NeighborFunc[T]
	opts Options[T]
	res  *Result[T]
}

// Walk performs a depth-first traversal from src, descending into each
// neighbor in the order next returns it. On a hook error the walk stops,
// Order is cleared and the wrapped error is returned along with the
// partial Depth and Parent maps.
func Walk[T comparable](src T, next NeighborFunc[T], opts ...Option[T]) (*Result[T], error) {
	o := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker[T]{
		next: next,
		opts: o,
		res: &Result[T]{
			Depth:  make(map[T]int),
			Parent: make(map[T]T),
		},
	}
	if err := w.traverse(src, 0); err != nil {
		w.res.Order = nil
		return w.res, err
	}

	return w.res, nil
}

// traverse visits v at depth, recursing into undiscovered neighbors.
func (w *walker[T]) traverse(v T, depth int) error {
	w.res.Depth[v] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	for _, nbr := range w.next(v) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			w.res.SkippedNeighbors++
			continue
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nbr] = v
		if err := w.traverse(nbr, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}

// PostOrder returns the vertices reachable from src in the order Walk
// finishes them. Options without hooks never fail, so no error is returned;
// hooks returning errors should go through Walk instead.
func PostOrder[T comparable](src T, next NeighborFunc[T], opts ...Option[T]) []T {
	res, err := Walk(src, next, opts...)
	if err != nil {
		return nil
	}

	return res.Order
}
