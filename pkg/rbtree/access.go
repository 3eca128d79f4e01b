package rbtree

// Public structural accessors. These exist so that a [Traits] implementation
// living outside this package -- e.g. an interval tree's max-upper
// augmentation -- can walk the structure a hook fires on without this
// package exposing its node-header layout.

// Left returns n's left child, or the zero value if n is nil or has none.
func Left[T Embedder[T]](n T) T { return leftOf(n) }

// Right returns n's right child, or the zero value if n is nil or has none.
func Right[T Embedder[T]](n T) T { return rightOf(n) }

// Parent returns n's parent, or the zero value if n is nil or is the root.
func Parent[T Embedder[T]](n T) T { return parentOf(n) }

// IsNil reports whether n is the zero value of T.
func IsNil[T Embedder[T]](n T) bool { return isNil(n) }
