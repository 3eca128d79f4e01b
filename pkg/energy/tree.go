package energy

import (
	"math/bits"

	"github.com/knotwork/knotwork/pkg/treediag"
)

// Tree is a weight-balanced intrusive binary search tree over entities of
// pointer type T. T must embed a [Header] and implement [Embedder].
//
// The zero value is not usable; construct with [New].
type Tree[T Embedder[T]] struct {
	root    T
	less    func(a, b T) bool
	scratch []T
	diag    *treediag.Diagnostics
}

// New constructs an empty Tree ordered by less.
func New[T Embedder[T]](less func(a, b T) bool) *Tree[T] {
	return &Tree[T]{less: less}
}

// SetDiagnostics attaches diag so every subsequent rebuild is logged and
// (if diag's metrics are enabled) recorded, in place of the original's
// unconditional rebuild logging (see Design Note on the rebuild's hot-path
// logging). Passing nil disables diagnostics again.
func (t *Tree[T]) SetDiagnostics(diag *treediag.Diagnostics) {
	t.diag = diag
}

// Empty reports whether the tree holds no nodes.
func (t *Tree[T]) Empty() bool {
	return isNil(t.root)
}

// Len returns the number of linked nodes in O(1).
func (t *Tree[T]) Len() int {
	return sizeOf(t.root)
}

// Min returns the smallest node, or the zero value if the tree is empty.
func (t *Tree[T]) Min() T {
	n := t.root
	for !isNil(n) && !isNil(leftOf(n)) {
		n = leftOf(n)
	}

	return n
}

// Max returns the largest node, or the zero value if the tree is empty.
func (t *Tree[T]) Max() T {
	n := t.root
	for !isNil(n) && !isNil(rightOf(n)) {
		n = rightOf(n)
	}

	return n
}

// Insert links node into the tree, then rebuilds the shallowest overcharged
// subtree encountered on the descent, if any. Duplicate keys are always
// admitted; this tree implements a multiset only.
func (t *Tree[T]) Insert(node T) {
	h := header(node)
	h.size = 1
	h.energy = 0
	h.left = zeroOf[T]()
	h.right = zeroOf[T]()

	if isNil(t.root) {
		t.root = node
		h.parent = zeroOf[T]()

		return
	}

	cur := t.root

	var rebuildAt T

	for {
		ch := header(cur)
		ch.size++
		ch.energy++

		if isNil(rebuildAt) && overcharged(ch) {
			// The descent visits shallowest first, so the first hit here is
			// the shallowest overcharged ancestor -- the one we want.
			rebuildAt = cur
		}

		if t.less(cur, node) {
			if !isNil(rightOf(cur)) {
				cur = rightOf(cur)

				continue
			}

			ch.right = node
			h.parent = cur

			break
		}

		if !isNil(leftOf(cur)) {
			cur = leftOf(cur)

			continue
		}

		ch.left = node
		h.parent = cur

		break
	}

	if !isNil(rebuildAt) {
		t.rebuildBelow(rebuildAt)
	}
}

// Remove unlinks node from the tree, then rebuilds the shallowest
// overcharged subtree left behind, if any. node must currently be linked
// into this tree.
func (t *Tree[T]) Remove(node T) {
	var (
		rebuildAt        T
		rebuildSetUpward bool
	)

	cur := node
	for !isNil(parentOf(cur)) {
		cur = parentOf(cur)

		ch := header(cur)
		ch.size--
		ch.energy++

		// Ascending visits deepest-first, so later overwrites here hold:
		// the value left standing after the loop is the shallowest
		// overcharged ancestor, same as in Insert.
		if overcharged(ch) {
			rebuildAt = cur
			rebuildSetUpward = true
		}
	}

	child := node

	switch {
	case isNil(leftOf(node)) && isNil(rightOf(node)):
		unlinkLeaf(t, node)
	case !isNil(leftOf(node)):
		// Left-leaning multiset: splice in the largest of the
		// less-or-equal children.
		child = leftOf(node)
		for !isNil(rightOf(child)) {
			ch := header(child)
			ch.size--
			ch.energy++

			if isNil(rebuildAt) && overcharged(ch) {
				rebuildAt = child
			}

			child = rightOf(child)
		}

		cp := parentOf(child)
		if rightOf(cp) == child {
			header(cp).right = leftOf(child)
		} else {
			header(cp).left = leftOf(child)
		}

		if !isNil(leftOf(child)) {
			header(leftOf(child)).parent = cp
		}

		t.spliceUp(node, child, &rebuildAt, rebuildSetUpward)
	default:
		child = rightOf(node)
		for !isNil(leftOf(child)) {
			ch := header(child)
			ch.size--
			ch.energy++

			if isNil(rebuildAt) && overcharged(ch) {
				rebuildAt = child
			}

			child = leftOf(child)
		}

		cp := parentOf(child)
		if leftOf(cp) == child {
			header(cp).left = rightOf(child)
		} else {
			header(cp).right = rightOf(child)
		}

		if !isNil(rightOf(child)) {
			header(rightOf(child)).parent = cp
		}

		t.spliceUp(node, child, &rebuildAt, rebuildSetUpward)
	}

	if !isNil(rebuildAt) {
		t.rebuildBelow(rebuildAt)
	}
}

func unlinkLeaf[T Embedder[T]](t *Tree[T], node T) {
	parent := parentOf(node)

	switch {
	case isNil(parent):
		t.root = zeroOf[T]()
	case leftOf(parent) == node:
		header(parent).left = zeroOf[T]()
	default:
		header(parent).right = zeroOf[T]()
	}
}

// spliceUp moves child, already detached from its prior position, up to
// take node's place in the tree, carrying node's children and an
// energy/size adjusted by one to account for node's own removal.
func (t *Tree[T]) spliceUp(node, child T, rebuildAt *T, rebuildSetUpward bool) {
	ch := header(child)
	ch.left = leftOf(node)
	ch.right = rightOf(node)

	if !isNil(ch.left) {
		header(ch.left).parent = child
	}

	if !isNil(ch.right) {
		header(ch.right).parent = child
	}

	parent := parentOf(node)

	switch {
	case isNil(parent):
		t.root = child
	case leftOf(parent) == node:
		header(parent).left = child
	default:
		header(parent).right = child
	}

	ch.parent = parent
	ch.energy = header(node).energy + 1
	ch.size = header(node).size - 1

	if !rebuildSetUpward && overcharged(ch) {
		*rebuildAt = child
	}
}

// rebuildBelow replaces the subtree rooted at node with a complete binary
// tree holding the same nodes, laid out by an in-order walk bucketed into
// levels via count-trailing-zeros, then linked bottom-up. The new root is
// spliced into node's former position with node's original size and zero
// energy. Reused across calls, the scratch buffer never shrinks.
func (t *Tree[T]) rebuildBelow(node T) {
	started := t.diag.RebuildStarted()

	size := header(node).size
	levels := levelsFor(size)
	fullSize := (1 << levels) - 1

	// Once the walk has filled the partially populated bottom level, the
	// odd (bottom-level) in-order positions that remain are skipped.
	bottomLevelSize := size - (1 << (levels - 1)) + 1

	if cap(t.scratch) < fullSize {
		t.scratch = make([]T, fullSize)
	} else {
		t.scratch = t.scratch[:fullSize]
	}

	buf := t.scratch

	originalParent := parentOf(node)
	originalSize := header(node).size

	smallest := node
	for !isNil(leftOf(smallest)) {
		smallest = leftOf(smallest)
	}

	largest := node
	for !isNil(rightOf(largest)) {
		largest = rightOf(largest)
	}

	buf[0] = smallest

	counter := 1

	for cur := smallest; cur != largest; {
		cur = stepForward(cur)
		counter++

		if counter&1 == 1 && counter > 2*bottomLevelSize {
			counter++
		}

		level := bits.TrailingZeros(uint(counter))
		prevLevelsSize := (1 << (levels - 1 - level)) - 1
		thisLevelSize := prevLevelsSize + 1
		levelOffset := fullSize - prevLevelsSize - thisLevelSize
		indexInLevel := counter >> uint(level+1)

		buf[levelOffset+indexInLevel] = cur
	}

	if levels > 1 {
		linkLevels(buf, levels, fullSize, size)
	}

	newRoot := buf[fullSize-1]
	nh := header(newRoot)
	nh.parent = originalParent

	switch {
	case isNil(originalParent):
		t.root = newRoot
	case leftOf(originalParent) == node:
		header(originalParent).left = newRoot
	default:
		header(originalParent).right = newRoot
	}

	nh.size = originalSize
	nh.energy = 0

	t.diag.RebuildFinished(size, started)
}

// levelsFor returns the smallest L with 2^L - 1 >= size, i.e. the number of
// levels in the smallest complete binary tree that can hold size nodes.
func levelsFor(size int) int {
	levels := 0

	for capacity := 1; capacity < size+1; capacity <<= 1 {
		levels++
	}

	return levels
}

// linkLevels wires buf's level-bucketed node pointers bottom-up into a
// complete binary tree, recomputing size at each internal node and zeroing
// energy throughout.
func linkLevels[T Embedder[T]](buf []T, levels, fullSize, size int) {
	upperOffset := (fullSize + 1) / 2
	bottomLevelSize := upperOffset - (fullSize - size)

	i := 0
	for ; i+1 < bottomLevelSize; i += 2 {
		linkPair[T](buf, upperOffset+i/2, i, i+1)
	}

	if i < bottomLevelSize {
		upper := buf[upperOffset+i/2]
		uh := header(upper)
		uh.left = buf[i]
		uh.right = zeroOf[T]()
		uh.size = 2
		uh.energy = 0

		resetLeaf(buf[i], upper)

		i += 2
	}

	for j := i / 2; j < 1<<(levels-2); j++ {
		resetLeaf(buf[upperOffset+j], zeroOf[T]())
	}

	for level := 1; level < levels-1; level++ {
		lowerOffset := upperOffset
		upperOffset = fullSize - (1<<(levels-1-level)) + 1
		lowerLevelSize := upperOffset - lowerOffset

		for i := 0; i < lowerLevelSize; i += 2 {
			linkInternalPair[T](buf, upperOffset+i/2, lowerOffset+i, lowerOffset+i+1)
		}
	}
}

func linkPair[T Embedder[T]](buf []T, upperIdx, leftIdx, rightIdx int) {
	upper := buf[upperIdx]
	uh := header(upper)
	uh.left = buf[leftIdx]
	uh.right = buf[rightIdx]
	uh.size = 3
	uh.energy = 0

	resetLeaf(buf[leftIdx], upper)
	resetLeaf(buf[rightIdx], upper)
}

func resetLeaf[T Embedder[T]](n, parent T) {
	h := header(n)
	h.left = zeroOf[T]()
	h.right = zeroOf[T]()
	h.size = 1
	h.energy = 0
	h.parent = parent
}

func linkInternalPair[T Embedder[T]](buf []T, upperIdx, leftIdx, rightIdx int) {
	upper := buf[upperIdx]
	left, right := buf[leftIdx], buf[rightIdx]

	uh := header(upper)
	uh.left = left
	uh.right = right
	uh.size = sizeOf(left) + sizeOf(right) + 1
	uh.energy = 0

	header(left).parent = upper
	header(right).parent = upper
}

// stepForward returns n's in-order successor, or the zero value if n is the
// last node. Iterator.Next uses it over the whole tree; rebuildBelow walks
// a subtree with it from smallest to largest, so that walk never ascends
// past the subtree's own root.
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
