package rbtree

import "github.com/knotwork/knotwork/pkg/treediag"

// Tree is an intrusive red-black tree over entities of pointer type T. T
// must embed a [Header] and implement [Embedder]; O selects the compile-time
// behavior (duplicate handling, size tracking, color layout) via [Options];
// Tr supplies augmentation hooks via [Traits], or [DefaultTraits[T]] for a
// plain ordered set.
//
// The zero value is not usable; construct with [New].
type Tree[T Embedder[T], O Options, Tr Traits[T]] struct {
	root   T
	size   int
	less   func(a, b T) bool
	traits Tr
	diag   *treediag.Diagnostics
}

// New constructs an empty Tree ordered by less, a strict-weak-ordering
// comparator: less(a, b) reports whether a sorts strictly before b, and a,
// b compare equal exactly when neither is less than the other.
func New[T Embedder[T], O Options, Tr Traits[T]](less func(a, b T) bool) *Tree[T, O, Tr] {
	return &Tree[T, O, Tr]{less: less}
}

// SetDiagnostics attaches diag so every subsequent rotation is logged and
// (if diag's metrics are enabled) recorded. Passing nil disables
// diagnostics again; the zero value already behaves this way, so calling
// this is only necessary to opt in.
func (t *Tree[T, O, Tr]) SetDiagnostics(diag *treediag.Diagnostics) {
	t.diag = diag
}

// Empty reports whether the tree holds no nodes.
func (t *Tree[T, O, Tr]) Empty() bool {
	return isNil(t.root)
}

// Root returns the tree's root node, or the zero value if the tree is
// empty. Exposed for augmentation layers built on top of this package (see
// [Left], [Right], [Parent]) that need to start their own descent.
func (t *Tree[T, O, Tr]) Root() T {
	return t.root
}

// Len returns the number of linked nodes. Under Options.ConstantTimeSize it
// is a field read; otherwise it walks the whole tree.
func (t *Tree[T, O, Tr]) Len() int {
	var opts O
	if opts.ConstantTimeSize() {
		return t.size
	}

	return subtreeCount(t.root)
}

func subtreeCount[T Embedder[T]](n T) int {
	if isNil(n) {
		return 0
	}

	return 1 + subtreeCount(leftOf(n)) + subtreeCount(rightOf(n))
}

// Clear detaches the root. Linked nodes are left exactly as they were;
// callers that intend to reuse them must not reinsert without first
// resetting their links via a fresh call into insertLeafBase (i.e. Insert).
func (t *Tree[T, O, Tr]) Clear() {
	t.root = zeroOf[T]()
	t.size = 0
}

// Insert links node into the tree, biasing equal keys to sort before any
// existing equal node. It reports whether node was linked: false means
// duplicates are disabled (Options.Multiple() == false) and an equal key
// already exists, in which case node is left untouched.
func (t *Tree[T, O, Tr]) Insert(node T) bool {
	return t.insertLeafBase(node, t.root, true)
}

// InsertHint links node starting the descent from hint instead of the root.
// The walk first climbs from hint while node sorts strictly before the
// current node's parent, then descends from there. This places node
// correctly whenever node does not sort after hint; a hint that sorts
// before node is not climbed past, so node is then placed inside the
// subtree reached from hint even when its position lies elsewhere.
func (t *Tree[T, O, Tr]) InsertHint(node, hint T) bool {
	start := hint
	for !isNil(start) && !isNil(parentOf(start)) && t.less(node, parentOf(start)) {
		start = parentOf(start)
	}

	return t.insertLeafBase(node, start, true)
}

// InsertAtEnd links node using a right-biased equality placement, starting
// the descent from the tree's rightmost node. Intended for bulk loading
// data that is already sorted, where node is known to belong at or near the
// end of the ordering.
func (t *Tree[T, O, Tr]) InsertAtEnd(node T) bool {
	start := t.root
	for !isNil(rightOf(start)) {
		start = rightOf(start)
	}

	return t.insertLeafBase(node, start, false)
}

// insertLeafBase performs the shared descent-and-link logic for all insert
// variants. preferLeft controls which side of an equal-key parent node
// lands on, and correspondingly whether it joins the equality chain before
// or after that parent.
func (t *Tree[T, O, Tr]) insertLeafBase(node, start T, preferLeft bool) bool {
	var opts O

	var parent, lastLeft, lastRight T

	cur := start
	for !isNil(cur) {
		parent = cur
		if t.less(cur, node) || (!preferLeft && !t.less(node, cur)) {
			lastRight = cur
			cur = rightOf(cur)
		} else {
			lastLeft = cur
			cur = leftOf(cur)
		}
	}

	// lastLeft and lastRight are node's in-order neighbors at the landing
	// spot, so an equal key already in the tree is one of them.
	if !opts.Multiple() && ((!isNil(lastLeft) && !t.less(node, lastLeft)) ||
		(!isNil(lastRight) && !t.less(lastRight, node))) {
		return false
	}

	header(node).left = zeroOf[T]()
	header(node).right = zeroOf[T]()

	if isNil(parent) {
		header(node).parent = zeroOf[T]()
		setColor(node, Black)
		t.root = node
		eqInsertAfter[T, O](node, zeroOf[T]())
		t.traits.LeafInserted(node)
	} else {
		header(node).parent = parent
		setColor(node, Red)

		switch {
		case t.less(node, parent):
			header(parent).left = node
			eqInsertAfter[T, O](node, zeroOf[T]())
		case t.less(parent, node):
			header(parent).right = node
			eqInsertAfter[T, O](node, zeroOf[T]())
		default:
			if !opts.Multiple() {
				return false
			}

			if preferLeft {
				header(parent).left = node
				eqInsertBefore[T, O](node, parent)
			} else {
				header(parent).right = node
				eqInsertAfter[T, O](node, parent)
			}
		}

		t.traits.LeafInserted(node)
		t.insertFixup(node)
	}

	if opts.ConstantTimeSize() {
		t.size++
	}

	return true
}

// Find returns the node comparing equal to key, or the zero value if none
// exists. When duplicates are admitted, it returns the head of that node's
// equality chain -- the member that sorts first, which is the most recently
// inserted one, since Insert places each new equal key before the existing
// ones.
func (t *Tree[T, O, Tr]) Find(key T) T {
	cur := t.root
	for !isNil(cur) {
		switch {
		case t.less(key, cur):
			cur = leftOf(cur)
		case t.less(cur, key):
			cur = rightOf(cur)
		default:
			return eqFindFirst[T, O](cur)
		}
	}

	return zeroOf[T]()
}

// UpperBound returns the first node strictly greater than key in sorted
// order, or the zero value if none exists.
func (t *Tree[T, O, Tr]) UpperBound(key T) T {
	var result T

	cur := t.root
	for !isNil(cur) {
		if t.less(key, cur) {
			result = cur
			cur = leftOf(cur)
		} else {
			cur = rightOf(cur)
		}
	}

	return result
}

// IteratorTo returns an iterator positioned at node, which must currently
// be linked into this tree.
func (t *Tree[T, O, Tr]) IteratorTo(node T) Iterator[T, O, Tr] {
	return Iterator[T, O, Tr]{tree: t, node: node}
}

// Remove unlinks node from the tree. node must currently be linked into
// this tree; removing an unlinked or foreign node is undefined behavior, as
// is removing a node twice.
func (t *Tree[T, O, Tr]) Remove(node T) {
	var opts O

	child := node

	switch {
	case !isNil(rightOf(node)) && !isNil(leftOf(node)):
		// In-order successor: leftmost of the right subtree.
		child = rightOf(node)
		for !isNil(leftOf(child)) {
			child = leftOf(child)
		}
	case !isNil(leftOf(node)):
		// A lone left child must be red with no children of its own, or
		// black-height would already be violated.
		child = leftOf(node)
	}

	if child != node {
		t.swapNodes(node, child, false)
	}

	// node is now a pseudo-leaf carrying child's original color.
	if !isNil(rightOf(node)) {
		rightChild := rightOf(node)
		t.swapNodes(node, rightChild, true)
		setColor(rightChild, Black)
		header(rightChild).right = zeroOf[T]()

		eqDelete[T, O](node)
		t.traits.DeletedBelow(rightChild)

		if opts.ConstantTimeSize() {
			t.size--
		}

		return
	}

	deletedLeft := false
	parent := parentOf(node)

	if isNil(parent) {
		t.root = zeroOf[T]()

		if opts.ConstantTimeSize() {
			t.size--
		}

		return
	}

	if leftOf(parent) == node {
		header(parent).left = zeroOf[T]()
		deletedLeft = true
	} else {
		header(parent).right = zeroOf[T]()
	}

	eqDelete[T, O](node)
	t.traits.DeletedBelow(parent)

	wasBlack := colorOf(node) == Black

	if opts.ConstantTimeSize() {
		t.size--
	}

	if wasBlack {
		t.deleteFixup(parent, deletedLeft)
	}
}

// swapNodes exchanges the structural tree positions of n1 and n2 while
// keeping both node identities alive, dispatching to the adjacency-specific
// variant that avoids aliasing a node with itself. When swapColors is true
// each node carries its own color to its new position, so the two
// positions' colors are swapped; when false the color fields are exchanged
// as well, so each position keeps its color. The delete path above passes
// false so node takes on the color of the position it is removed from.
func (t *Tree[T, O, Tr]) swapNodes(n1, n2 T, swapColors bool) {
	switch {
	case parentOf(n1) == n2:
		t.swapNeighbors(n2, n1)
	case parentOf(n2) == n1:
		t.swapNeighbors(n1, n2)
	default:
		t.swapUnrelatedNodes(n1, n2)
	}

	eqSwapIfNecessary[T, O](t.less, n1, n2)

	if !swapColors {
		c1, c2 := colorOf(n1), colorOf(n2)
		setColor(n1, c2)
		setColor(n2, c1)
	}

	t.traits.Swapped(n1, n2)
}

// swapNeighbors is the parent-child specialization of swapNodes: child
// takes over parent's position and parent becomes child's new child on the
// same side it vacated.
func (t *Tree[T, O, Tr]) swapNeighbors(parent, child T) {
	hp, hc := header(parent), header(child)

	hc.parent = hp.parent
	hp.parent = child

	if !isNil(hc.parent) {
		if leftOf(hc.parent) == parent {
			header(hc.parent).left = child
		} else {
			header(hc.parent).right = child
		}
	} else {
		t.root = child
	}

	if hp.left == child {
		hp.left = hc.left
		if !isNil(hp.left) {
			header(hp.left).parent = parent
		}

		hc.left = parent

		hp.right, hc.right = hc.right, hp.right
		if !isNil(hc.right) {
			header(hc.right).parent = child
		}

		if !isNil(hp.right) {
			header(hp.right).parent = parent
		}
	} else {
		hp.right = hc.right
		if !isNil(hp.right) {
			header(hp.right).parent = parent
		}

		hc.right = parent

		hp.left, hc.left = hc.left, hp.left
		if !isNil(hc.left) {
			header(hc.left).parent = child
		}

		if !isNil(hp.left) {
			header(hp.left).parent = parent
		}
	}
}

// swapUnrelatedNodes is the general-case swapNodes variant for two nodes
// that are not directly linked to one another.
func (t *Tree[T, O, Tr]) swapUnrelatedNodes(n1, n2 T) {
	h1, h2 := header(n1), header(n2)

	h1.left, h2.left = h2.left, h1.left

	if !isNil(h1.left) {
		header(h1.left).parent = n1
	}

	if !isNil(h2.left) {
		header(h2.left).parent = n2
	}

	h1.right, h2.right = h2.right, h1.right

	if !isNil(h1.right) {
		header(h1.right).parent = n1
	}

	if !isNil(h2.right) {
		header(h2.right).parent = n2
	}

	h1.parent, h2.parent = h2.parent, h1.parent

	if !isNil(h1.parent) {
		if rightOf(h1.parent) == n2 {
			header(h1.parent).right = n1
		} else {
			header(h1.parent).left = n1
		}
	} else {
		t.root = n1
	}

	if !isNil(h2.parent) {
		if rightOf(h2.parent) == n1 {
			header(h2.parent).right = n2
		} else {
			header(h2.parent).left = n2
		}
	} else {
		t.root = n2
	}
}
