package dfs

// HasCycle reports whether a directed cycle is reachable from src.
func HasCycle[T comparable](src T, next NeighborFunc[T]) bool {
	_, ok := FindCycle(src, next)
	return ok
}

// FindCycle returns one directed cycle reachable from src as a closed walk
// [v0, v1, ..., v0]. A self-loop yields [v, v]. ok is false if every vertex
// reachable from src lies on no cycle.
//
// Complexity: O(V + E) time, O(V) memory for the state map and path stack.
func FindCycle[T comparable](src T, next NeighborFunc[T]) ([]T, bool) {
	f := &cycleFinder[T]{
		next:  next,
		state: make(map[T]int),
	}
	if !f.visit(src) {
		return nil, false
	}
	return f.cycle, true
}

// cycleFinder holds three-color state for FindCycle.
type cycleFinder[T comparable] struct {
	next  NeighborFunc[T]
	state map[T]int
	path  []T // current DFS stack
	cycle []T
}

// visit returns true once a back edge has been found and recorded.
func (f *cycleFinder[T]) visit(v T) bool {
	f.state[v] = Gray
	f.path = append(f.path, v)

	for _, nbr := range f.next(v) {
		switch f.state[nbr] {
		case White:
			if f.visit(nbr) {
				return true
			}
		case Gray:
			f.record(nbr)
			return true
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[v] = Black

	return false
}

// record closes the cycle that starts at start on the current path.
func (f *cycleFinder[T]) record(start T) {
	idx := 0
	for i, v := range f.path {
		if v == start {
			idx = i
			break
		}
	}
	f.cycle = append(append([]T(nil), f.path[idx:]...), start)
}
