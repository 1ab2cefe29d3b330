// Package dfs defines types and options for depth-first walks over implicit
// graphs, including pre-/post-order hooks, depth limiting and neighbor
// filtering.
package dfs

import "errors"

// Vertex states used by the three-color walks.
const (
	White = iota // not visited yet
	Gray         // on the current recursion stack
	Black        // fully explored
)

var (
	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalOrder.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// NeighborFunc enumerates the successors of a vertex.
type NeighborFunc[T comparable] func(T) []T

// Predicate selects target vertices.
type Predicate[T comparable] func(T) bool

// Option configures Walk.
type Option[T comparable] func(*Options[T])

// Options holds configurable parameters for Walk.
type Options[T comparable] struct {
	// OnVisit, if non-nil, runs when a vertex is discovered (pre-order).
	// Returning an error aborts the walk.
	OnVisit func(v T) error

	// OnExit, if non-nil, runs after all descendants of a vertex have been
	// explored (post-order). Returning an error aborts the walk.
	OnExit func(v T) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only the
	// start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is asked before descending into a
	// neighbor. Skipped neighbors are counted in Result.SkippedNeighbors.
	FilterNeighbor func(v T) bool
}

// DefaultOptions returns Options with no hooks, no depth limit and no
// filtering.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{MaxDepth: -1}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[T comparable](fn func(v T) error) Option[T] {
	return func(o *Options[T]) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[T comparable](fn func(v T) error) Option[T] {
	return func(o *Options[T]) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit. 0 visits only the start.
func WithMaxDepth[T comparable](limit int) Option[T] {
	return func(o *Options[T]) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor[T comparable](fn func(v T) bool) Option[T] {
	return func(o *Options[T]) { o.FilterNeighbor = fn }
}

// Result captures the outcome of Walk.
type Result[T comparable] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []T

	// Depth maps each vertex to its depth in the DFS tree.
	Depth map[T]int

	// Parent maps each vertex to the vertex it was discovered from.
	// The start vertex has no entry.
	Parent map[T]T

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
