package interval

import (
	"cmp"

	"github.com/knotwork/knotwork/pkg/rbtree"
)

// maxUpperTraits installs the interval tree's augmentation onto a plain
// rbtree.Tree: it keeps Header.maxUpper equal to the largest upper
// endpoint anywhere in the subtree, recomputed incrementally at each of
// the five structural events rbtree.Traits exposes.
type maxUpperTraits[T Embedder[T, E], E cmp.Ordered] struct{}

func recompute[T Embedder[T, E], E cmp.Ordered](n T) {
	if isNil[T, E](n) {
		return
	}

	best := upperOf[T, E](n)

	if l := rbtree.Left[T](n); !rbtree.IsNil[T](l) {
		if v, _ := maxUpperOf[T, E](l); v > best {
			best = v
		}
	}

	if r := rbtree.Right[T](n); !rbtree.IsNil[T](r) {
		if v, _ := maxUpperOf[T, E](r); v > best {
			best = v
		}
	}

	ivHeader[T, E](n).maxUpper = best
}

// recomputeUpward recomputes n from scratch, then walks toward the root
// recomputing each ancestor in turn, stopping as soon as a recompute
// leaves a node's value unchanged -- everything further up already
// accounts for that node's (unchanged) contribution.
func recomputeUpward[T Embedder[T, E], E cmp.Ordered](n T) {
	for !isNil[T, E](n) {
		old, _ := maxUpperOf[T, E](n)
		recompute[T, E](n)
		updated, _ := maxUpperOf[T, E](n)

		if updated == old {
			return
		}

		n = rbtree.Parent[T](n)
	}
}

// LeafInserted implements rbtree.Traits.
func (maxUpperTraits[T, E]) LeafInserted(n T) {
	ivHeader[T, E](n).maxUpper = upperOf[T, E](n)

	upper := upperOf[T, E](n)

	for p := rbtree.Parent[T](n); !rbtree.IsNil[T](p); p = rbtree.Parent[T](p) {
		cur, _ := maxUpperOf[T, E](p)
		if upper <= cur {
			break
		}

		ivHeader[T, E](p).maxUpper = upper
	}
}

// RotatedLeft implements rbtree.Traits. n is the former parent, now the
// left child of what used to be its right child; both need their
// max-upper recomputed from their (now different) children.
func (t maxUpperTraits[T, E]) RotatedLeft(n T) {
	recompute[T, E](n)
	recompute[T, E](rbtree.Parent[T](n))
}

// RotatedRight implements rbtree.Traits, symmetric to RotatedLeft.
func (t maxUpperTraits[T, E]) RotatedRight(n T) {
	recompute[T, E](n)
	recompute[T, E](rbtree.Parent[T](n))
}

// DeletedBelow implements rbtree.Traits.
func (t maxUpperTraits[T, E]) DeletedBelow(n T) {
	recomputeUpward[T, E](n)
}

// Swapped implements rbtree.Traits.
func (t maxUpperTraits[T, E]) Swapped(a, b T) {
	recomputeUpward[T, E](a)
	recomputeUpward[T, E](b)
}
