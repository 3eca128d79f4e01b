package interval

import (
	"cmp"

	"github.com/knotwork/knotwork/pkg/rbtree"
)

// QueryIterator is a lazy forward sequence over the intervals stored in a
// Tree that overlap a fixed query interval. It holds no more state than
// the current candidate node and the query bounds, and advances by
// descending and ascending the tree directly -- it never builds a result
// slice or a call stack.
//
// The zero value is not usable; construct with [Tree.Query].
type QueryIterator[T Embedder[T, E], E cmp.Ordered] struct {
	n      T
	qLower E
	qUpper E
}

// Query returns a QueryIterator over all stored intervals overlapping the
// half-open interval [lower, upper).
func (t *Tree[T, E]) Query(lower, upper E) *QueryIterator[T, E] {
	it := &QueryIterator[T, E]{qLower: lower, qUpper: upper}

	root := t.inner.Root()
	if !rbtree.IsNil[T](root) {
		if mu, _ := maxUpperOf[T, E](root); mu > lower {
			it.n = descendLeftmost[T, E](root, lower)
		}
	}

	it.settle()

	return it
}

// Node returns the current overlapping interval, or the zero value once
// the sequence is exhausted.
func (it *QueryIterator[T, E]) Node() T { return it.n }

// Valid reports whether the iterator is positioned at an overlapping
// interval.
func (it *QueryIterator[T, E]) Valid() bool { return !rbtree.IsNil[T](it.n) }

// Next advances to the next overlapping interval in in-order of lower
// endpoint, or exhausts the iterator.
func (it *QueryIterator[T, E]) Next() {
	it.n = it.step(it.n)
	it.settle()
}

// settle advances past any number of non-overlapping candidates -- nodes
// whose subtree could still hold a match per the max-upper invariant, but
// which themselves don't overlap the query -- until it lands on an
// overlapping node or is exhausted.
func (it *QueryIterator[T, E]) settle() {
	for !rbtree.IsNil[T](it.n) && !Overlaps(lowerOf[T, E](it.n), upperOf[T, E](it.n), it.qLower, it.qUpper) {
		it.n = it.step(it.n)
	}
}

// step moves from n, whose own left subtree has already been fully
// explored (n was reached either by descendLeftmost or by ascending past
// a left child), to the next candidate in the pruned in-order walk: n's
// right subtree if it could hold a match, otherwise the nearest ancestor
// whose subtree is not yet exhausted.
func (it *QueryIterator[T, E]) step(n T) T {
	if right := rbtree.Right[T](n); !rbtree.IsNil[T](right) && lowerOf[T, E](n) < it.qUpper {
		return descendLeftmost[T, E](right, it.qLower)
	}

	cur := n

	for {
		parent := rbtree.Parent[T](cur)
		if rbtree.IsNil[T](parent) {
			return zeroOf[T, E]()
		}

		if rbtree.Right[T](parent) == cur {
			// Ascended from a right child: parent's subtree is exhausted.
			cur = parent

			continue
		}

		if lowerOf[T, E](parent) >= it.qUpper {
			// Parent's own lower is already past the query window, and
			// everything in its (already-exhausted-from-the-left) left
			// subtree sorts no later, so nothing here can overlap either.
			cur = parent

			continue
		}

		return parent
	}
}

// descendLeftmost walks from n into its left child repeatedly as long as
// the child's subtree could still hold a match, stopping at the first
// node whose left child is absent or pruned.
func descendLeftmost[T Embedder[T, E], E cmp.Ordered](n T, qLower E) T {
	for {
		left := rbtree.Left[T](n)
		if rbtree.IsNil[T](left) {
			return n
		}

		if lm, _ := maxUpperOf[T, E](left); lm <= qLower {
			return n
		}

		n = left
	}
}
