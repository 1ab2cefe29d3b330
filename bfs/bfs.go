package bfs

// queueItem pairs a vertex with its BFS depth.
type queueItem[T comparable] struct {
	v     T
	depth int
}

// walker encapsulates mutable Traverse state.
type walker[T comparable] struct {
	next  NeighborFunc[T]
	opts  Options[T]
	queue []queueItem[T]
	res   *Result[T]
}

// Traverse runs a full breadth-first search from src and records visit
// order, depths and parent links, honoring any Options.
func Traverse[T comparable](src T, next NeighborFunc[T], opts ...Option[T]) *Result[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker[T]{
		next: next,
		opts: o,
		res: &Result[T]{
			Start:  src,
			Depth:  make(map[T]int),
			Parent: make(map[T]T),
		},
	}
	w.enqueue(src, 0)
	w.loop()

	return w.res
}

// enqueue records v at depth d and appends it to the queue.
func (w *walker[T]) enqueue(v T, d int) {
	w.res.Depth[v] = d
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem[T]{v: v, depth: d})
}

// loop processes the queue until empty.
func (w *walker[T]) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		w.opts.OnVisit(item.v, item.depth)

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.next(item.v) {
			if !w.opts.FilterNeighbor(item.v, nbr) {
				continue
			}
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.res.Parent[nbr] = item.v
			w.enqueue(nbr, nextDepth)
		}
	}
}

// CountReachable counts src (if it is a target) plus every distinct vertex
// reachable from src that satisfies isTarget. Each vertex is expanded once.
func CountReachable[T comparable](src T, isTarget Predicate[T], next NeighborFunc[T]) int {
	count := 0
	if isTarget(src) {
		count++
	}

	visited := map[T]struct{}{src: {}}
	queue := []T{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, nbr := range next(u) {
			if _, seen := visited[nbr]; seen {
				continue
			}
			visited[nbr] = struct{}{}
			queue = append(queue, nbr)
			if isTarget(nbr) {
				count++
			}
		}
	}

	return count
}

// PathExists reports whether some vertex satisfying isTarget is reachable
// from src. It returns true immediately if src itself qualifies.
func PathExists[T comparable](src T, isTarget Predicate[T], next NeighborFunc[T]) bool {
	_, ok := search(src, isTarget, next, false)
	return ok
}

// PathExistsTo reports whether tgt is reachable from src.
func PathExistsTo[T comparable](src, tgt T, next NeighborFunc[T]) bool {
	return PathExists(src, equals(tgt), next)
}

// ShortestPath returns a minimum edge-count path from src to tgt,
// both endpoints included. ok is false if tgt is unreachable.
func ShortestPath[T comparable](src, tgt T, next NeighborFunc[T]) ([]T, bool) {
	return ShortestPathFunc(src, equals(tgt), next)
}

// ShortestPathFunc returns a minimum edge-count path from src to the first
// discovered vertex satisfying isTarget. Among equally short paths the one
// found first wins.
func ShortestPathFunc[T comparable](src T, isTarget Predicate[T], next NeighborFunc[T]) ([]T, bool) {
	st, ok := search(src, isTarget, next, true)
	if !ok {
		return nil, false
	}

	path := make([]T, 0, st.depth+1)
	for cur := st.found; ; {
		path = append(path, cur)
		prev, has := st.parent[cur]
		if !has {
			break
		}
		cur = prev
	}
	reverse(path)

	return path, true
}

// ShortestPathLength returns the number of edges on a shortest path from
// src to tgt.
func ShortestPathLength[T comparable](src, tgt T, next NeighborFunc[T]) (int, bool) {
	return ShortestPathLengthFunc(src, equals(tgt), next)
}

// ShortestPathLengthFunc returns the number of edges from src to the
// nearest vertex satisfying isTarget.
func ShortestPathLengthFunc[T comparable](src T, isTarget Predicate[T], next NeighborFunc[T]) (int, bool) {
	st, ok := search(src, isTarget, next, false)
	if !ok {
		return 0, false
	}
	return st.depth, true
}

// Distances returns the hop count from src to every reachable vertex,
// src included at distance 0.
func Distances[T comparable](src T, next NeighborFunc[T]) map[T]int {
	return Traverse(src, next).Depth
}

// searchState is what an early-exit search leaves behind.
type searchState[T comparable] struct {
	found  T
	depth  int
	parent map[T]T // nil unless requested
}

// search runs BFS from src until a vertex satisfying isTarget is
// discovered. Targets are tested when discovered rather than when expanded,
// which still yields a minimum depth because discovery order is by depth.
func search[T comparable](src T, isTarget Predicate[T], next NeighborFunc[T], withParents bool) (searchState[T], bool) {
	st := searchState[T]{found: src}
	if withParents {
		st.parent = make(map[T]T)
	}
	if isTarget(src) {
		return st, true
	}

	visited := map[T]struct{}{src: {}}
	queue := []queueItem[T]{{v: src, depth: 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		for _, nbr := range next(item.v) {
			if _, seen := visited[nbr]; seen {
				continue
			}
			visited[nbr] = struct{}{}
			if withParents {
				st.parent[nbr] = item.v
			}
			if isTarget(nbr) {
				st.found = nbr
				st.depth = item.depth + 1
				return st, true
			}
			queue = append(queue, queueItem[T]{v: nbr, depth: item.depth + 1})
		}
	}

	return st, false
}

// equals builds a predicate matching exactly tgt.
func equals[T comparable](tgt T) Predicate[T] {
	return func(v T) bool { return v == tgt }
}
