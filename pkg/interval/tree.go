package interval

import (
	"cmp"

	"github.com/knotwork/knotwork/pkg/rbtree"
)

// Tree is an interval tree over entities of pointer type T with endpoint
// type E. Intervals are half-open [Lower, Upper) and may repeat -- two
// entities with identical bounds are both admitted, the later one sorting
// before the earlier, as Insert places equal keys in any rbtree.Default
// tree.
//
// The zero value is not usable; construct with [New].
type Tree[T Embedder[T, E], E cmp.Ordered] struct {
	inner *rbtree.Tree[T, rbtree.Default, maxUpperTraits[T, E]]
}

// New constructs an empty Tree.
func New[T Embedder[T, E], E cmp.Ordered]() *Tree[T, E] {
	return &Tree[T, E]{inner: rbtree.New[T, rbtree.Default, maxUpperTraits[T, E]](Less[T, E])}
}

// Empty reports whether the tree holds no intervals.
func (t *Tree[T, E]) Empty() bool { return t.inner.Empty() }

// Len returns the number of linked intervals.
func (t *Tree[T, E]) Len() int { return t.inner.Len() }

// Insert sets node's Lower/Upper fields to lower and upper and links it
// into the tree. lower must not exceed upper.
func (t *Tree[T, E]) Insert(node T, lower, upper E) {
	h := ivHeader[T, E](node)
	h.Lower = lower
	h.Upper = upper

	t.inner.Insert(node)
}

// Remove unlinks node, which must currently be linked into this tree.
func (t *Tree[T, E]) Remove(node T) {
	t.inner.Remove(node)
}

// Begin returns an iterator at the interval sorting first by (lower, upper).
func (t *Tree[T, E]) Begin() rbtree.Iterator[T, rbtree.Default, maxUpperTraits[T, E]] {
	return t.inner.Begin()
}

// VerifyIntegrity checks both the underlying red-black invariants and the
// max-upper augmentation at every node.
func (t *Tree[T, E]) VerifyIntegrity() bool {
	if !t.inner.VerifyIntegrity() {
		return false
	}

	return verifyMaxUpper[T, E](t.inner.Root())
}
