package unionfind

import (
	"fmt"

	"github.com/katalvlaran/pathkit/idmap"
)

// Forest is a disjoint-set forest over values of type K with a payload of
// type W per node. The zero value is not usable; use New or WithCapacity.
type Forest[K comparable, W any] struct {
	dict     *idmap.Map[K]
	up       []node[W]
	numRoots int
}

// New returns an empty Forest.
func New[K comparable, W any]() *Forest[K, W] {
	return &Forest[K, W]{
		dict: idmap.New[K](),
		up:   make([]node[W], 0),
	}
}

// WithCapacity returns an empty Forest pre-sized for n nodes.
func WithCapacity[K comparable, W any](n int) *Forest[K, W] {
	if n < 0 {
		n = 0
	}
	return &Forest[K, W]{
		dict: idmap.WithCapacity[K](n),
		up:   make([]node[W], 0, n),
	}
}

// Len returns the number of nodes ever inserted.
func (f *Forest[K, W]) Len() int { return len(f.up) }

// NumRoots returns the number of nodes without a parent.
func (f *Forest[K, W]) NumRoots() int { return f.numRoots }

// IsEmpty reports whether the forest has no nodes.
func (f *Forest[K, W]) IsEmpty() bool { return len(f.up) == 0 }

// Contains reports whether v is a node of the forest.
func (f *Forest[K, W]) Contains(v K) bool { return f.dict.ContainsValue(v) }

// IsRoot reports whether v is a root. known is false if v is not a node.
func (f *Forest[K, W]) IsRoot(v K) (isRoot, known bool) {
	id, ok := f.dict.ID(v)
	if !ok {
		return false, false
	}
	return f.up[id].parent == noParent, true
}

// Parent returns the current parent of v without compressing anything.
// ok is false if v is unknown or a root.
func (f *Forest[K, W]) Parent(v K) (parent K, ok bool) {
	id, known := f.dict.ID(v)
	if !known || f.up[id].parent == noParent {
		return parent, false
	}
	return f.value(f.up[id].parent), true
}

// Weight returns the payload stored with v.
func (f *Forest[K, W]) Weight(v K) (w W, ok bool) {
	id, known := f.dict.ID(v)
	if !known {
		return w, false
	}
	return f.up[id].weight, true
}

// InsertRoot is InsertRootWeighted with the zero payload.
func (f *Forest[K, W]) InsertRoot(v K) bool {
	var zero W
	return f.InsertRootWeighted(v, zero)
}

// InsertRootWeighted makes v a root. A new node is created with payload w;
// an existing non-root node is detached from its parent and keeps its
// payload. Returns true if the node was newly created.
func (f *Forest[K, W]) InsertRootWeighted(v K, w W) bool {
	res := f.dict.InsertResult(v)
	if res.WasContained() {
		if f.up[res.ID].parent != noParent {
			f.up[res.ID].parent = noParent
			f.numRoots++
		}
		return false
	}
	f.up = append(f.up, node[W]{parent: noParent, weight: w})
	f.numRoots++

	return true
}

// Insert is InsertWeighted with zero payloads.
func (f *Forest[K, W]) Insert(child, parent K) error {
	var zero W
	return f.InsertWeighted(child, zero, parent, zero)
}

// InsertWeighted links child under parent.
//
//   - child == parent: ErrInvalidArgument.
//   - child exists: its parent pointer and payload are overwritten with
//     parent and cw. If that would put child below its own descendant the
//     call fails with ErrCycle and nothing changes.
//   - child is new: it is created under parent with payload cw.
//   - parent is new: it is created as a root with payload pw; an existing
//     parent keeps its payload.
func (f *Forest[K, W]) InsertWeighted(child K, cw W, parent K, pw W) error {
	if child == parent {
		return fmt.Errorf("%w: child and parent are both %v", ErrInvalidArgument, child)
	}
	if cid, ok := f.dict.ID(child); ok {
		if pid, ok := f.dict.ID(parent); ok && f.isAncestor(cid, pid) {
			return fmt.Errorf("%w: %v under %v", ErrCycle, child, parent)
		}
	}

	cres := f.dict.InsertResult(child)
	pres := f.dict.InsertResult(parent)

	if cres.WasContained() {
		if f.up[cres.ID].parent == noParent {
			f.numRoots--
		}
		f.up[cres.ID] = node[W]{parent: pres.ID, weight: cw}
	} else {
		f.up = append(f.up, node[W]{parent: pres.ID, weight: cw})
	}

	if pres.Inserted {
		f.up = append(f.up, node[W]{parent: noParent, weight: pw})
		f.numRoots++
	}

	return nil
}

// Find returns the representative of v's component, compressing the path
// from v to it. ok is false if v is unknown.
func (f *Forest[K, W]) Find(v K) (root K, ok bool) {
	id, known := f.dict.ID(v)
	if !known {
		return root, false
	}
	return f.value(f.findID(id)), true
}

// FindNoCollapse is Find without path compression.
func (f *Forest[K, W]) FindNoCollapse(v K) (root K, ok bool) {
	id, known := f.dict.ID(v)
	if !known {
		return root, false
	}
	return f.value(f.rootOf(id)), true
}

// Union merges the components of a and b by attaching the root of a under
// the root of b. It returns true iff both values are nodes, whether or not
// they were already in the same component.
func (f *Forest[K, W]) Union(a, b K) bool {
	ia, ok := f.dict.ID(a)
	if !ok {
		return false
	}
	ib, ok := f.dict.ID(b)
	if !ok {
		return false
	}

	ra, rb := f.findID(ia), f.findID(ib)
	if ra != rb {
		f.up[ra].parent = rb
		f.numRoots--
	}

	return true
}

// Flatten partitions all nodes into components. Each inner slice holds the
// members of one component with their payloads. Components are ordered by
// their earliest-inserted member and members appear in insertion order.
func (f *Forest[K, W]) Flatten() [][]Member[K, W] {
	roots, groups := f.group()
	out := make([][]Member[K, W], 0, len(roots))
	for _, r := range roots {
		ids := groups[r]
		members := make([]Member[K, W], len(ids))
		for i, id := range ids {
			members[i] = Member[K, W]{Value: f.value(id), Weight: f.up[id].weight}
		}
		out = append(out, members)
	}

	return out
}

// Sizes partitions all nodes like Flatten and reports each component's
// representative and member count.
func (f *Forest[K, W]) Sizes() []Component[K] {
	roots, groups := f.group()
	out := make([]Component[K], 0, len(roots))
	for _, r := range roots {
		out = append(out, Component[K]{Root: f.value(r), Size: len(groups[r])})
	}

	return out
}

// group compresses every node and buckets ids by root id.
// roots lists root ids in first-seen order.
func (f *Forest[K, W]) group() (roots []int, groups map[int][]int) {
	groups = make(map[int][]int, f.numRoots)
	roots = make([]int, 0, f.numRoots)
	for id := range f.up {
		r := f.findID(id)
		if _, seen := groups[r]; !seen {
			roots = append(roots, r)
		}
		groups[r] = append(groups[r], id)
	}

	return roots, groups
}

// findID returns the root id of id and points every node on the way at it.
func (f *Forest[K, W]) findID(id int) int {
	root := f.rootOf(id)
	for id != root {
		next := f.up[id].parent
		f.up[id].parent = root
		id = next
	}

	return root
}

// rootOf walks parent pointers from id to its root without modifying them.
// A chain longer than the node count means the forest is corrupt.
func (f *Forest[K, W]) rootOf(id int) int {
	for steps := 0; f.up[id].parent != noParent; steps++ {
		if steps > len(f.up) {
			panic(fmt.Sprintf("unionfind: parent chain from id %d does not terminate", id))
		}
		id = f.up[id].parent
	}

	return id
}

// isAncestor reports whether anc lies on the parent chain of id (id included).
func (f *Forest[K, W]) isAncestor(anc, id int) bool {
	for steps := 0; ; steps++ {
		if id == anc {
			return true
		}
		if f.up[id].parent == noParent {
			return false
		}
		if steps > len(f.up) {
			panic(fmt.Sprintf("unionfind: parent chain from id %d does not terminate", id))
		}
		id = f.up[id].parent
	}
}

// value translates an id that is known to be valid back to its value.
func (f *Forest[K, W]) value(id int) K {
	v, ok := f.dict.Value(id)
	if !ok {
		panic(fmt.Sprintf("unionfind: node id %d has no interned value", id))
	}
	return v
}
