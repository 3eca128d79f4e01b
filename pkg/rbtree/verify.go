package rbtree

// VerifyIntegrity checks every invariant in one pass: black root, equal
// black-height on all root-to-leaf paths, no red node with a red child,
// acyclic parent linkage with no self-loops, non-decreasing order under
// less, and (when duplicates are enabled) a reciprocal, acyclic equality
// chain at every node.
func (t *Tree[T, O, Tr]) VerifyIntegrity() bool {
	return t.verifyStructure() &&
		t.verifyBlackRoot() &&
		t.verifyBlackPaths() &&
		t.verifyRedBlack(t.root) &&
		t.verifyOrder() &&
		t.verifyEquality()
}

func (t *Tree[T, O, Tr]) verifyBlackRoot() bool {
	return isNil(t.root) || colorOf(t.root) == Black
}

func (t *Tree[T, O, Tr]) verifyBlackPaths() bool {
	if isNil(t.root) {
		return true
	}

	_, ok := blackPathLength(t.root)

	return ok
}

func blackPathLength[T Embedder[T]](node T) (int, bool) {
	var leftLen, rightLen int

	if !isNil(leftOf(node)) {
		l, ok := blackPathLength(leftOf(node))
		if !ok {
			return 0, false
		}

		leftLen = l
	}

	if !isNil(rightOf(node)) {
		r, ok := blackPathLength(rightOf(node))
		if !ok {
			return 0, false
		}

		rightLen = r
	}

	if leftLen != rightLen {
		return 0, false
	}

	if colorOf(node) == Black {
		return leftLen + 1, true
	}

	return leftLen, true
}

func (t *Tree[T, O, Tr]) verifyRedBlack(node T) bool {
	if isNil(node) {
		return true
	}

	if colorOf(node) == Red {
		if !isNil(rightOf(node)) && colorOf(rightOf(node)) == Red {
			return false
		}

		if !isNil(leftOf(node)) && colorOf(leftOf(node)) == Red {
			return false
		}
	}

	return t.verifyRedBlack(leftOf(node)) && t.verifyRedBlack(rightOf(node))
}

func (t *Tree[T, O, Tr]) verifyOrder() bool {
	var prev T

	for it := t.Begin(); it.Valid(); it.Next() {
		n := it.Node()

		if !isNil(prev) && t.less(n, prev) {
			return false
		}

		prev = n

		if !isNil(leftOf(n)) && t.less(n, leftOf(n)) {
			return false
		}

		if !isNil(rightOf(n)) && t.less(rightOf(n), n) {
			return false
		}
	}

	return true
}

func (t *Tree[T, O, Tr]) verifyEquality() bool {
	var opts O
	if !opts.Multiple() {
		return true
	}

	for it := t.Begin(); it.Valid(); it.Next() {
		if !eqVerify[T, O](it.Node()) {
			return false
		}
	}

	return true
}

// verifyStructure walks the whole tree checking for cycles, self-loops, and
// parent/child link reciprocity -- the properties verify_tree checks in the
// reference implementation via a manual in-order walk with a seen-set.
func (t *Tree[T, O, Tr]) verifyStructure() bool {
	if isNil(t.root) {
		return true
	}

	seen := map[T]bool{}

	cur := t.root
	for !isNil(leftOf(cur)) {
		if leftOf(cur) == cur {
			return false
		}

		cur = leftOf(cur)
	}

	for !isNil(cur) {
		if seen[cur] {
			return false
		}

		seen[cur] = true

		if !isNil(leftOf(cur)) {
			if parentOf(leftOf(cur)) != cur || rightOf(cur) == cur {
				return false
			}
		}

		if !isNil(rightOf(cur)) {
			if parentOf(rightOf(cur)) != cur || leftOf(cur) == cur {
				return false
			}
		}

		cur = stepForward(cur)
	}

	return true
}
