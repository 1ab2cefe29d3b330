package bfs

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is raised (via panic) when an invalid Option is built.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// NeighborFunc enumerates the successors of a vertex. Duplicates are
// allowed; every search deduplicates through its own visited set.
type NeighborFunc[T comparable] func(T) []T

// Predicate selects target vertices.
type Predicate[T comparable] func(T) bool

// Option configures Traverse via functional arguments.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks to customize Traverse.
type Options[T comparable] struct {
	// OnEnqueue is called when a vertex is first discovered, with its depth.
	OnEnqueue func(v T, depth int)

	// OnVisit is called when a vertex is dequeued and expanded.
	OnVisit func(v T, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor T) bool
}

// DefaultOptions returns Options with no-op hooks, no depth limit and no
// filtering.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		OnEnqueue:      func(T, int) {},
		OnVisit:        func(T, int) {},
		MaxDepth:       0,
		FilterNeighbor: func(_, _ T) bool { return true },
	}
}

// WithOnEnqueue registers a callback run when a vertex is discovered.
func WithOnEnqueue[T comparable](fn func(v T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run when a vertex is expanded.
func WithOnVisit[T comparable](fn func(v T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: no depth limit
//	d < 0:  panics with ErrOptionViolation
func WithMaxDepth[T comparable](d int) Option[T] {
	if d < 0 {
		panic(fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d))
	}
	return func(o *Options[T]) {
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[T comparable](fn func(curr, neighbor T) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of Traverse:
//   - Order: vertices in visit sequence.
//   - Depth: distance in edges from the start.
//   - Parent: predecessor in the BFS tree; the start has no entry.
type Result[T comparable] struct {
	Start  T
	Order  []T
	Depth  map[T]int
	Parent map[T]T
}

// PathTo reconstructs the path from the start vertex to dest.
// ok is false if dest was not reached.
func (r *Result[T]) PathTo(dest T) ([]T, bool) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, false
	}
	path := make([]T, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	reverse(path)

	return path, true
}

// reverse flips s in place.
func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
