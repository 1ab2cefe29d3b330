// Package dijkstra defines adjacency types and configuration options for
// Dijkstra's shortest-path algorithm on implicit weighted graphs.
//
// Options:
//
//	- MaxDistance:      vertices farther than this are never settled.
//	- InfEdgeThreshold: edges with cost >= this threshold are impassable.
//	- StopAt:           stop as soon as a vertex satisfying the predicate
//	                    is settled.
//
// Errors (sentinel, raised as panic values by option constructors):
//
//	- ErrBadMaxDistance  if MaxDistance < 0.
//	- ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors for invalid options.
var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// a negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Edge is one weighted successor: moving to To costs Cost.
// Cost must be non-negative; negative-cost edges are ignored.
type Edge[T comparable] struct {
	Cost int
	To   T
}

// EdgeFunc enumerates the weighted successors of a vertex.
type EdgeFunc[T comparable] func(T) []Edge[T]

// Predicate selects target vertices.
type Predicate[T comparable] func(T) bool

// Options configures Run.
//
//   - MaxDistance: cap on settled distances. Default math.MaxInt (no cap).
//   - InfEdgeThreshold: edges with Cost >= threshold are skipped.
//     Default math.MaxInt (no obstacles).
//   - StopAt: if non-nil, Run returns once a matching vertex is settled.
type Options[T comparable] struct {
	MaxDistance      int
	InfEdgeThreshold int
	StopAt           Predicate[T]
}

// Option represents a functional option for configuring Run.
type Option[T comparable] func(*Options[T])

// DefaultOptions returns Options with no distance cap, no impassable edges
// and no early stop.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		MaxDistance:      math.MaxInt,
		InfEdgeThreshold: math.MaxInt,
	}
}

// WithMaxDistance stops the search once the closest unsettled vertex is
// farther than max. A negative max panics with ErrBadMaxDistance.
func WithMaxDistance[T comparable](max int) Option[T] {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options[T]) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with cost >= threshold as impassable.
// A threshold <= 0 panics with ErrBadInfThreshold.
func WithInfEdgeThreshold[T comparable](threshold int) Option[T] {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options[T]) {
		o.InfEdgeThreshold = threshold
	}
}

// WithStopAt ends the search when the first vertex satisfying isTarget is
// settled. That vertex is the cheapest target.
func WithStopAt[T comparable](isTarget Predicate[T]) Option[T] {
	return func(o *Options[T]) {
		o.StopAt = isTarget
	}
}

// Result is the outcome of Run.
//   - Dist:   final distance of every settled vertex.
//   - Prev:   predecessor on a cheapest path; the source has no entry.
//   - Target: the vertex that satisfied StopAt, if Found.
type Result[T comparable] struct {
	Source T
	Dist   map[T]int
	Prev   map[T]T
	Target T
	Found  bool
}

// PathTo reconstructs a cheapest path from the source to dest.
// ok is false if dest was not settled.
func (r *Result[T]) PathTo(dest T) ([]T, bool) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, false
	}
	var path []T
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
