// Package unionfind implements a disjoint-set forest ("up tree") over
// arbitrary comparable values, with a payload attached to every node.
//
// Nodes are interned through idmap, so the forest itself works on dense
// integer ids: every node stores the id of its parent (or none, for a root)
// and its payload. Values of type K are translated at the API boundary.
//
// Linking policy
//
//   - Insert(child, parent) links child under parent. If child already
//     exists its parent pointer is overwritten: the latest link wins and the
//     former subtree of child moves with it. A new parent becomes a root.
//   - InsertRoot(v) creates v as a root or promotes an existing node to a
//     root by detaching it from its parent.
//   - Union(a, b) attaches the root of a under the root of b. There is no
//     union-by-rank or union-by-size; callers that depend on which node ends
//     up as representative rely on this order.
//
// Path compression happens lazily in Find, Flatten and Sizes: every node
// visited on the way to a root is re-pointed directly at it. FindNoCollapse
// answers the same question without touching the forest.
//
// Errors
//
//   - ErrInvalidArgument if Insert is asked to link a node to itself.
//   - ErrCycle (wraps ErrInvalidArgument) if re-parenting an existing node
//     would place it below one of its own descendants.
//
// Unknown values never cause an error: lookups report ok == false and Union
// reports false.
//
// Complexity: Insert, InsertRoot O(1) amortized (plus O(depth) for the
// cycle check when re-parenting); Find O(depth) then amortized near-constant
// after compression; Flatten and Sizes O(N·depth).
//
// A Forest is not safe for concurrent use.
package unionfind
