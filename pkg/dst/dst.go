// Package dst declares the adapter surface a Dynamic Segment Tree would
// sit behind: an ordered set of breakpoints, backed interchangeably by
// either the red-black or zip core, each breakpoint carrying a
// caller-defined delta that a full DST would fold into a running
// aggregate as the structure is walked.
//
// Only the adapter contract is implemented here, not the aggregate
// itself -- iteration over DST aggregates is an explicit non-goal of
// this module, and the underlying zip core is scaffolding-only (see
// [ziptree]). Query against the aggregate at a point is therefore not
// part of this interface; a caller wanting that behavior layers it on
// top of Adapter using the breakpoints it already yields in order.
package dst

import (
	"github.com/knotwork/knotwork/pkg/rbtree"
)

// Adapter is the ordered-breakpoint substrate a DST is built on, common
// to both the red-black and zip backings.
type Adapter[T rbtree.Embedder[T]] interface {
	// Insert links a breakpoint node, reporting whether it was linked --
	// false under a Unique-style core when an equal key already exists.
	Insert(node T) bool

	// Remove unlinks a breakpoint node. node must currently be linked.
	Remove(node T)

	// Len reports the number of linked breakpoints.
	Len() int
}

// RBAdapter is the red-black-backed Adapter (RBDSTInterface in the
// original). It is a thin wrapper: all ordering and balancing is the
// plain [rbtree.Tree] underneath, with DST-specific aggregate folding
// left to the caller.
type RBAdapter[T rbtree.Embedder[T], O rbtree.Options, Tr rbtree.Traits[T]] struct {
	tree *rbtree.Tree[T, O, Tr]
}

// NewRBAdapter wraps an existing red-black tree of breakpoints as an
// Adapter.
func NewRBAdapter[T rbtree.Embedder[T], O rbtree.Options, Tr rbtree.Traits[T]](
	tree *rbtree.Tree[T, O, Tr],
) *RBAdapter[T, O, Tr] {
	return &RBAdapter[T, O, Tr]{tree: tree}
}

// Insert implements Adapter.
func (a *RBAdapter[T, O, Tr]) Insert(node T) bool { return a.tree.Insert(node) }

// Remove implements Adapter.
func (a *RBAdapter[T, O, Tr]) Remove(node T) { a.tree.Remove(node) }

// Len implements Adapter.
func (a *RBAdapter[T, O, Tr]) Len() int { return a.tree.Len() }
