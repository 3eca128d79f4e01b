package rbtree

// direction selects which way Iterator.Next steps: stepForward for an
// ascending walk, stepBack for a descending one. It stands in for the
// source's two iterator template specializations distinguished by a bool
// parameter.
type direction bool

const (
	forward direction = false
	reverse direction = true
)

// Iterator is a position within a Tree's in-order sequence. The zero value
// of the node field (reachable via Next past the last element) represents
// end/rend; Valid reports whether the position is dereferenceable.
type Iterator[T Embedder[T], O Options, Tr Traits[T]] struct {
	tree *Tree[T, O, Tr]
	node T
	dir  direction
}

// Node returns the node at the iterator's current position. It is the zero
// value at end/rend.
func (it Iterator[T, O, Tr]) Node() T { return it.node }

// Valid reports whether the iterator is positioned at a real node.
func (it Iterator[T, O, Tr]) Valid() bool { return !isNil(it.node) }

// Next advances the iterator one step in its direction of travel.
func (it *Iterator[T, O, Tr]) Next() {
	if it.dir == reverse {
		it.node = stepBack(it.node)
	} else {
		it.node = stepForward(it.node)
	}
}

// Prev moves the iterator one step against its direction of travel.
func (it *Iterator[T, O, Tr]) Prev() {
	if it.dir == reverse {
		it.node = stepForward(it.node)
	} else {
		it.node = stepBack(it.node)
	}
}

// stepForward returns the in-order successor of n, or the zero value if n
// is the last node.
func stepForward[T Embedder[T]](n T) T {
	if !isNil(rightOf(n)) {
		n = rightOf(n)
		for !isNil(leftOf(n)) {
			n = leftOf(n)
		}

		return n
	}

	for !isNil(parentOf(n)) && rightOf(parentOf(n)) == n {
		n = parentOf(n)
	}

	return parentOf(n)
}

// stepBack returns the in-order predecessor of n, or the zero value if n is
// the first node.
func stepBack[T Embedder[T]](n T) T {
	if !isNil(leftOf(n)) {
		n = leftOf(n)
		for !isNil(rightOf(n)) {
			n = rightOf(n)
		}

		return n
	}

	for !isNil(parentOf(n)) && leftOf(parentOf(n)) == n {
		n = parentOf(n)
	}

	return parentOf(n)
}

// Begin returns an iterator at the smallest element.
func (t *Tree[T, O, Tr]) Begin() Iterator[T, O, Tr] {
	n := t.root
	for !isNil(n) && !isNil(leftOf(n)) {
		n = leftOf(n)
	}

	return Iterator[T, O, Tr]{tree: t, node: n, dir: forward}
}

// End returns the past-the-end forward iterator.
func (t *Tree[T, O, Tr]) End() Iterator[T, O, Tr] {
	return Iterator[T, O, Tr]{tree: t, dir: forward}
}

// RBegin returns an iterator at the largest element, stepping toward
// smaller elements as it advances.
func (t *Tree[T, O, Tr]) RBegin() Iterator[T, O, Tr] {
	n := t.root
	for !isNil(n) && !isNil(rightOf(n)) {
		n = rightOf(n)
	}

	return Iterator[T, O, Tr]{tree: t, node: n, dir: reverse}
}

// REnd returns the past-the-end reverse iterator.
func (t *Tree[T, O, Tr]) REnd() Iterator[T, O, Tr] {
	return Iterator[T, O, Tr]{tree: t, dir: reverse}
}

// CBegin, CEnd, CRBegin and CREnd mirror Begin/End/RBegin/REnd. The source
// distinguishes const from non-const iterators; this package has no
// mutating iterator to distinguish them from; the pairs collapse.
func (t *Tree[T, O, Tr]) CBegin() Iterator[T, O, Tr]  { return t.Begin() }
func (t *Tree[T, O, Tr]) CEnd() Iterator[T, O, Tr]    { return t.End() }
func (t *Tree[T, O, Tr]) CRBegin() Iterator[T, O, Tr] { return t.RBegin() }
func (t *Tree[T, O, Tr]) CREnd() Iterator[T, O, Tr]   { return t.REnd() }
