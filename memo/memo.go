// Package memo caches the results of a pure function keyed by its input.
//
// The wrapped function is evaluated at most once per distinct input for the
// lifetime of the Memoizer. There is no invalidation, so the function must
// be referentially transparent. A common use is wrapping an expensive
// successor function before handing it to bfs, dfs or dijkstra:
//
//	next := memo.New(expensiveNeighbors).Func()
//	n := bfs.CountReachable(src, isTarget, next)
//
// A Memoizer is not safe for concurrent use.
package memo

// Memoizer wraps fn and remembers every output it produced.
type Memoizer[I comparable, O any] struct {
	fn    func(I) O
	cache map[I]O
}

// New returns a Memoizer around fn. fn must not be nil.
func New[I comparable, O any](fn func(I) O) *Memoizer[I, O] {
	return &Memoizer[I, O]{
		fn:    fn,
		cache: make(map[I]O),
	}
}

// Call returns fn(in), invoking fn only on the first call for in.
// Cached outputs are returned as stored; callers that mutate a returned
// slice or map mutate the cached value.
func (m *Memoizer[I, O]) Call(in I) O {
	if out, ok := m.cache[in]; ok {
		return out
	}
	out := m.fn(in)
	m.cache[in] = out

	return out
}

// Func returns Call as a plain function value.
func (m *Memoizer[I, O]) Func() func(I) O { return m.Call }

// Len returns the number of cached inputs.
func (m *Memoizer[I, O]) Len() int { return len(m.cache) }
