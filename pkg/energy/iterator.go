package energy

// Iterator walks a Tree's nodes in ascending order. An Energy tree rebuild
// reshapes the links of every node in the affected subtree, so an iterator
// held across an Insert or Remove that triggers a rebuild must be
// reacquired; it is not invalidated in the sense of becoming unsafe to use,
// but it will not reflect the new layout.
type Iterator[T Embedder[T]] struct {
	node T
}

// Node returns the node at the iterator's current position, or the zero
// value at end.
func (it Iterator[T]) Node() T { return it.node }

// Valid reports whether the iterator is positioned at a real node.
func (it Iterator[T]) Valid() bool { return !isNil(it.node) }

// Next advances the iterator to the next node in ascending order.
func (it *Iterator[T]) Next() {
	it.node = stepForward(it.node)
}

// Begin returns an iterator at the smallest element.
func (t *Tree[T]) Begin() Iterator[T] {
	return Iterator[T]{node: t.Min()}
}

// End returns the past-the-end iterator.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{}
}
