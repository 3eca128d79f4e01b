// Package interval implements an interval tree: a red-black tree ordered by
// (lower, upper) and augmented with a per-node "maximum upper endpoint over
// the subtree" field, which lets an overlap query prune whole subtrees that
// cannot contain a match. It is built directly on [rbtree.Tree] via the
// [rbtree.Traits] hook mechanism rather than reimplementing balancing.
package interval

import (
	"cmp"

	"github.com/knotwork/knotwork/pkg/rbtree"
)

// Header is the intrusive node header a caller embeds in its own entity to
// link it into a [Tree]. T is the pointer-to-entity type; E is the
// endpoint type, e.g. int or time.Time's underlying int64.
type Header[T any, E cmp.Ordered] struct {
	rb       rbtree.Header[T]
	Lower    E
	Upper    E
	maxUpper E
}

// Embedder is implemented by the pointer-to-entity type that embeds a
// Header[T, E] and can therefore be linked into a Tree[T, E].
type Embedder[T any, E cmp.Ordered] interface {
	rbtree.Embedder[T]
	IVHeader() *Header[T, E]
}

// RBHeader satisfies rbtree.Embedder. An entity that embeds Header[T, E]
// anonymously gets this promoted automatically and need not write it.
func (h *Header[T, E]) RBHeader() *rbtree.Header[T] { return &h.rb }

// IVHeader satisfies Embedder, promoted the same way as RBHeader.
func (h *Header[T, E]) IVHeader() *Header[T, E] { return h }

func zeroOf[T Embedder[T, E], E cmp.Ordered]() T {
	var zero T

	return zero
}

func isNil[T Embedder[T, E], E cmp.Ordered](n T) bool {
	return n == zeroOf[T, E]()
}

func ivHeader[T Embedder[T, E], E cmp.Ordered](n T) *Header[T, E] {
	if isNil[T, E](n) {
		return nil
	}

	return n.IVHeader()
}

func lowerOf[T Embedder[T, E], E cmp.Ordered](n T) E { return ivHeader[T, E](n).Lower }
func upperOf[T Embedder[T, E], E cmp.Ordered](n T) E { return ivHeader[T, E](n).Upper }

func maxUpperOf[T Embedder[T, E], E cmp.Ordered](n T) (E, bool) {
	if isNil[T, E](n) {
		var zero E

		return zero, false
	}

	return ivHeader[T, E](n).maxUpper, true
}

// Less orders nodes by lower endpoint, breaking ties by upper endpoint, as
// required for the max-upper augmentation's upward-propagation hooks to
// terminate correctly.
func Less[T Embedder[T, E], E cmp.Ordered](a, b T) bool {
	al, bl := lowerOf[T, E](a), lowerOf[T, E](b)
	if al != bl {
		return al < bl
	}

	return upperOf[T, E](a) < upperOf[T, E](b)
}

// Overlaps reports whether the half-open interval [aLower, aUpper) overlaps
// [bLower, bUpper).
func Overlaps[E cmp.Ordered](aLower, aUpper, bLower, bUpper E) bool {
	return aLower < bUpper && bLower < aUpper
}
