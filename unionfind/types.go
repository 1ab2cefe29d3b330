package unionfind

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Forest.
var (
	// ErrInvalidArgument indicates that a child and its parent are the same value.
	ErrInvalidArgument = errors.New("unionfind: invalid argument")

	// ErrCycle indicates that a re-parenting link would close a cycle.
	ErrCycle = fmt.Errorf("%w: link would create a cycle", ErrInvalidArgument)
)

// noParent marks a root node.
const noParent = -1

// node is one slot of the forest, indexed by the interned id of its value.
type node[W any] struct {
	parent int // id of the parent, or noParent for a root
	weight W
}

// Member is one element of a component returned by Flatten.
type Member[K comparable, W any] struct {
	Value  K
	Weight W
}

// Component summarises one connected component returned by Sizes.
type Component[K comparable] struct {
	Root K // representative value
	Size int
}
