package interval

import (
	"cmp"

	"github.com/knotwork/knotwork/pkg/rbtree"
)

// verifyMaxUpper recursively checks that every node's cached maxUpper
// equals the true maximum upper endpoint over its subtree.
func verifyMaxUpper[T Embedder[T, E], E cmp.Ordered](n T) bool {
	if rbtree.IsNil[T](n) {
		return true
	}

	want := upperOf[T, E](n)

	if l := rbtree.Left[T](n); !rbtree.IsNil[T](l) {
		if v, _ := maxUpperOf[T, E](l); v > want {
			want = v
		}
	}

	if r := rbtree.Right[T](n); !rbtree.IsNil[T](r) {
		if v, _ := maxUpperOf[T, E](r); v > want {
			want = v
		}
	}

	got, _ := maxUpperOf[T, E](n)
	if got != want {
		return false
	}

	return verifyMaxUpper[T, E](rbtree.Left[T](n)) && verifyMaxUpper[T, E](rbtree.Right[T](n))
}
