package rbtree

// The equality chain threads every node that compares equal to a given node
// into a doubly-linked list via prevEq/nextEq, independent of tree position.
// It exists only to give Insert/Find/Remove an O(1) way to reach every
// duplicate of a key without a subtree walk. When O.Multiple() is false the
// functions below are no-ops: the fields are simply never touched.

func eqInsertBefore[T Embedder[T], O Options](node, successor T) {
	var opts O
	if !opts.Multiple() || isNil(successor) {
		return
	}

	predecessor := header(successor).prevEq
	header(node).prevEq = predecessor
	header(node).nextEq = successor
	header(successor).prevEq = node

	if !isNil(predecessor) {
		header(predecessor).nextEq = node
	}
}

func eqInsertAfter[T Embedder[T], O Options](node, predecessor T) {
	var opts O
	if !opts.Multiple() {
		return
	}

	if isNil(predecessor) {
		header(node).prevEq = zeroOf[T]()
		header(node).nextEq = zeroOf[T]()

		return
	}

	successor := header(predecessor).nextEq
	header(node).nextEq = successor
	header(node).prevEq = predecessor
	header(predecessor).nextEq = node

	if !isNil(successor) {
		header(successor).prevEq = node
	}
}

func eqDelete[T Embedder[T], O Options](node T) {
	var opts O
	if !opts.Multiple() {
		return
	}

	h := header(node)
	prev, next := h.prevEq, h.nextEq

	if !isNil(prev) {
		header(prev).nextEq = next
	}

	if !isNil(next) {
		header(next).prevEq = prev
	}

	h.prevEq, h.nextEq = zeroOf[T](), zeroOf[T]()
}

// eqFindFirst walks backward through the equality chain and returns its head
// -- the member that sorts first, which under Insert's left bias is the most
// recently inserted one.
func eqFindFirst[T Embedder[T], O Options](node T) T {
	var opts O
	if !opts.Multiple() || isNil(node) {
		return node
	}

	cur := node
	for !isNil(header(cur).prevEq) {
		cur = header(cur).prevEq
	}

	return cur
}

// eqNext returns the next node in the equality chain, or the zero value at
// the tail.
func eqNext[T Embedder[T]](node T) T {
	if isNil(node) {
		return zeroOf[T]()
	}

	return header(node).nextEq
}

// eqSwapIfNecessary runs as part of swapNodes, which exchanges the tree
// positions of a and b while keeping both node identities alive. If the two
// are not equal under cmp, their equality chains are disjoint and nothing
// moves. Otherwise their prevEq/nextEq fields are exchanged wholesale, with
// the adjacent-in-chain cases special-cased to avoid wiring a node to itself.
func eqSwapIfNecessary[T Embedder[T], O Options](less func(a, b T) bool, a, b T) {
	var opts O
	if !opts.Multiple() || less(a, b) || less(b, a) {
		return
	}

	ha, hb := header(a), header(b)

	switch {
	case ha.nextEq == b:
		ha.nextEq = hb.nextEq
		hb.prevEq = ha.prevEq
		ha.prevEq = b
		hb.nextEq = a

		if !isNil(ha.nextEq) {
			header(ha.nextEq).prevEq = a
		}

		if !isNil(hb.prevEq) {
			header(hb.prevEq).nextEq = b
		}
	case hb.nextEq == a:
		hb.nextEq = ha.nextEq
		ha.prevEq = hb.prevEq
		hb.prevEq = a
		ha.nextEq = b

		if !isNil(hb.nextEq) {
			header(hb.nextEq).prevEq = b
		}

		if !isNil(ha.prevEq) {
			header(ha.prevEq).nextEq = a
		}
	default:
		ha.prevEq, hb.prevEq = hb.prevEq, ha.prevEq
		ha.nextEq, hb.nextEq = hb.nextEq, ha.nextEq

		if !isNil(ha.nextEq) {
			header(ha.nextEq).prevEq = a
		}

		if !isNil(ha.prevEq) {
			header(ha.prevEq).nextEq = a
		}

		if !isNil(hb.nextEq) {
			header(hb.nextEq).prevEq = b
		}

		if !isNil(hb.prevEq) {
			header(hb.prevEq).nextEq = b
		}
	}
}

// eqVerify walks the chain forward and backward from node and reports
// whether the links are reciprocal and the walk terminates (no cycle within
// the scanned bound).
func eqVerify[T Embedder[T], O Options](node T) bool {
	var opts O
	if !opts.Multiple() || isNil(node) {
		return true
	}

	cur := node
	seen := map[T]bool{}

	for !isNil(cur) {
		if seen[cur] {
			return false
		}

		seen[cur] = true

		next := header(cur).nextEq
		if !isNil(next) && header(next).prevEq != cur {
			return false
		}

		cur = next
	}

	cur = header(node).prevEq
	for !isNil(cur) {
		if seen[cur] {
			return false
		}

		seen[cur] = true

		prev := header(cur).prevEq
		if !isNil(prev) && header(prev).nextEq != cur {
			return false
		}

		cur = prev
	}

	return true
}
