package dfs

import "fmt"

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[T comparable] struct {
	next  NeighborFunc[T]
	state map[T]int
	order []T // post-order
}

// TopologicalOrder returns the vertices reachable from src ordered so that
// for every edge u→v, u appears before v. src is always first.
// If a cycle is reachable, it returns ErrCycleDetected.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalOrder[T comparable](src T, next NeighborFunc[T]) ([]T, error) {
	t := &topoSorter[T]{
		next:  next,
		state: make(map[T]int),
	}
	if err := t.visit(src); err != nil {
		return nil, err
	}
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// visit performs a DFS from v, marking states and detecting back edges.
func (t *topoSorter[T]) visit(v T) error {
	switch t.state[v] {
	case Gray:
		return fmt.Errorf("%w: back edge into %v", ErrCycleDetected, v)
	case Black:
		return nil
	}
	t.state[v] = Gray

	for _, nbr := range t.next(v) {
		if err := t.visit(nbr); err != nil {
			return err
		}
	}

	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}
