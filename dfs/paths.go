package dfs

// CountPaths counts the distinct walks from src to target vertices in a
// tree or DAG.
//
// Each neighbor that satisfies isTarget contributes one walk and is not
// expanded further; every other neighbor contributes the walks below it.
// src itself is never counted. No visited set is kept, so a vertex reached
// along several walks is explored once per walk and the running time is
// exponential in the worst case. On a graph with a cycle reachable from src
// that avoids all targets the recursion does not terminate; check with
// HasCycle first when in doubt, or use CountPathsMemo.
//
// Wrap next with memo.Memoizer when neighbor computation is expensive.
func CountPaths[T comparable](src T, isTarget Predicate[T], next NeighborFunc[T]) int {
	count := 0
	for _, nbr := range next(src) {
		if isTarget(nbr) {
			count++
		} else {
			count += CountPaths(nbr, isTarget, next)
		}
	}

	return count
}

// CountPathsMemo computes the same quantity as CountPaths on a DAG, caching
// the count below each vertex for the duration of the call. It runs in
// O(V + E). It panics if it meets a cycle, since the count is unbounded.
func CountPathsMemo[T comparable](src T, isTarget Predicate[T], next NeighborFunc[T]) int {
	c := &pathCounter[T]{
		isTarget: isTarget,
		next:     next,
		counts:   make(map[T]int),
		state:    make(map[T]int),
	}
	return c.count(src)
}

// pathCounter holds the per-call cache for CountPathsMemo.
type pathCounter[T comparable] struct {
	isTarget Predicate[T]
	next     NeighborFunc[T]
	counts   map[T]int
	state    map[T]int
}

func (c *pathCounter[T]) count(v T) int {
	switch c.state[v] {
	case Black:
		return c.counts[v]
	case Gray:
		panic(ErrCycleDetected)
	}
	c.state[v] = Gray

	total := 0
	for _, nbr := range c.next(v) {
		if c.isTarget(nbr) {
			total++
		} else {
			total += c.count(nbr)
		}
	}

	c.counts[v] = total
	c.state[v] = Black

	return total
}
