package rbtree

// Traits lets a Tree's augmentation -- subtree maxima, size caches, whatever
// a caller needs recomputed as structure changes -- stay consistent without
// the tree itself knowing what's being cached. Every method fires after the
// structural change it names, so the node's new children/parent are already
// in their final form when the hook runs. A Tree that carries no
// augmentation beyond red-black structure uses [DefaultTraits].
//
// T is constrained the same way as everywhere else in this package: it is
// the pointer-to-entity type, not the entity type. Implementations outside
// this package reach tree structure through [Left], [Right], [Parent] and
// [IsNil] rather than the unexported accessors used internally.
type Traits[T Embedder[T]] interface {
	// LeafInserted fires once, immediately after node is linked in as a new
	// leaf and before any fixup rotation runs.
	LeafInserted(node T)

	// RotatedLeft fires after a left rotation pivoting on node, i.e. node
	// has become the left child of what used to be its right child.
	RotatedLeft(node T)

	// RotatedRight fires after a right rotation pivoting on node.
	RotatedRight(node T)

	// DeletedBelow fires once after a node is unlinked from the tree, on the
	// unlinked node's former parent (or, when the removed node had a single
	// child, on that child after it took the node's place). The tree does
	// not call it on further ancestors; the hook walks upward itself if it
	// needs to.
	DeletedBelow(node T)

	// Swapped fires after swapNodes exchanges the structural positions of a
	// and b, once both nodes' links have settled into their final form.
	Swapped(a, b T)
}

// DefaultTraits is the no-op Traits implementation for a Tree that carries
// no augmentation beyond the red-black structure itself.
type DefaultTraits[T Embedder[T]] struct{}

// LeafInserted implements Traits.
func (DefaultTraits[T]) LeafInserted(T) {}

// RotatedLeft implements Traits.
func (DefaultTraits[T]) RotatedLeft(T) {}

// RotatedRight implements Traits.
func (DefaultTraits[T]) RotatedRight(T) {}

// DeletedBelow implements Traits.
func (DefaultTraits[T]) DeletedBelow(T) {}

// Swapped implements Traits.
func (DefaultTraits[T]) Swapped(T, T) {}
