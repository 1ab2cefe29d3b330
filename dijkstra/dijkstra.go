// Package dijkstra implements Dijkstra's shortest-path algorithm on
// implicit graphs with non-negative integer edge costs.
//
// Notes on implementation choices:
//
//   - A "lazy" decrease-key strategy: improved distances push a new heap
//     entry and stale entries are skipped when popped.
//   - A settled set prevents re-expanding finalized vertices.
//   - A neighbor is relaxed only when the new cost strictly improves on the
//     best known one, so ties keep the first predecessor found. Which of
//     several equal-cost vertices is popped first is unspecified.
package dijkstra

import "container/heap"

// runner holds the mutable state for a single Dijkstra execution.
type runner[T comparable] struct {
	next    EdgeFunc[T]
	options Options[T]
	best    map[T]int // tentative distances
	settled map[T]struct{}
	pq      nodePQ[T]
	res     *Result[T]
}

// newRunner seeds a runner with src at distance zero.
func newRunner[T comparable](src T, next EdgeFunc[T], opts []Option[T]) *runner[T] {
	cfg := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[T]{
		next:    next,
		options: cfg,
		best:    map[T]int{src: 0},
		settled: make(map[T]struct{}),
		res: &Result[T]{
			Source: src,
			Dist:   make(map[T]int),
			Prev:   make(map[T]T),
		},
	}
	heap.Push(&r.pq, &nodeItem[T]{id: src, dist: 0})

	return r
}

// Run computes cheapest distances from src over the graph described by
// next. Without StopAt it settles every reachable vertex within
// MaxDistance, so it terminates only on graphs whose reachable part is
// finite.
func Run[T comparable](src T, next EdgeFunc[T], opts ...Option[T]) *Result[T] {
	r := newRunner(src, next, opts)
	r.process()

	return r.res
}

// process is the core loop: pop the closest vertex, settle it, relax its
// edges. It ends when the heap is empty, the closest vertex lies beyond
// MaxDistance, or a StopAt target is settled.
func (r *runner[T]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[T])
		u, d := item.id, item.dist

		if _, done := r.settled[u]; done {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}

		r.settled[u] = struct{}{}
		r.res.Dist[u] = d

		if r.options.StopAt != nil && r.options.StopAt(u) {
			r.res.Target = u
			r.res.Found = true
			return
		}

		r.relax(u, d)
	}
}

// relax offers every outgoing edge of u, settled at distance d, to the heap.
func (r *runner[T]) relax(u T, d int) {
	for _, e := range r.next(u) {
		if e.Cost < 0 || e.Cost >= r.options.InfEdgeThreshold {
			continue
		}
		if _, done := r.settled[e.To]; done {
			continue
		}

		newDist := d + e.Cost
		if newDist > r.options.MaxDistance {
			continue
		}
		if cur, seen := r.best[e.To]; seen && newDist >= cur {
			continue
		}

		r.best[e.To] = newDist
		r.res.Prev[e.To] = u
		heap.Push(&r.pq, &nodeItem[T]{id: e.To, dist: newDist})
	}
}

// Distances returns the cheapest cost from src to every reachable vertex.
func Distances[T comparable](src T, next EdgeFunc[T], opts ...Option[T]) map[T]int {
	return Run(src, next, opts...).Dist
}

// CheapestPathCost returns the minimal cost from src to tgt.
// ok is false if tgt is unreachable.
func CheapestPathCost[T comparable](src, tgt T, next EdgeFunc[T]) (int, bool) {
	return CheapestPathCostFunc(src, equals(tgt), next)
}

// CheapestPathCostFunc returns the minimal cost from src to any vertex
// satisfying isTarget; 0 if src itself qualifies.
func CheapestPathCostFunc[T comparable](src T, isTarget Predicate[T], next EdgeFunc[T]) (int, bool) {
	res := Run(src, next, WithStopAt(isTarget))
	if !res.Found {
		return 0, false
	}
	return res.Dist[res.Target], true
}

// CheapestPath returns a cheapest path from src to tgt, both included, and
// its cost.
func CheapestPath[T comparable](src, tgt T, next EdgeFunc[T]) ([]T, int, bool) {
	return CheapestPathFunc(src, equals(tgt), next)
}

// CheapestPathFunc returns a cheapest path from src to the cheapest vertex
// satisfying isTarget, and its cost.
func CheapestPathFunc[T comparable](src T, isTarget Predicate[T], next EdgeFunc[T]) ([]T, int, bool) {
	res := Run(src, next, WithStopAt(isTarget))
	if !res.Found {
		return nil, 0, false
	}
	path, _ := res.PathTo(res.Target)

	return path, res.Dist[res.Target], true
}

// equals builds a predicate matching exactly tgt.
func equals[T comparable](tgt T) Predicate[T] {
	return func(v T) bool { return v == tgt }
}

// nodeItem represents a vertex and a tentative distance from the source.
type nodeItem[T comparable] struct {
	id   T
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ[T comparable] []*nodeItem[T]

// Len returns the number of items in the heap.
func (pq nodePQ[T]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[T]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ[T]) Push(x any) { *pq = append(*pq, x.(*nodeItem[T])) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
