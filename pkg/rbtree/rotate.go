package rbtree

// rotateLeft pivots on parent: parent's right child takes parent's place,
// and parent becomes that child's new left child. The traits hook fires
// last, once every link below and above parent has settled.
func (t *Tree[T, O, Tr]) rotateLeft(parent T) {
	rightChild := rightOf(parent)
	header(parent).right = leftOf(rightChild)

	if !isNil(leftOf(rightChild)) {
		header(leftOf(rightChild)).parent = parent
	}

	header(rightChild).left = parent
	header(rightChild).parent = parentOf(parent)

	if !isNil(parentOf(parent)) {
		if leftOf(parentOf(parent)) == parent {
			header(parentOf(parent)).left = rightChild
		} else {
			header(parentOf(parent)).right = rightChild
		}
	} else {
		t.root = rightChild
	}

	header(parent).parent = rightChild

	t.traits.RotatedLeft(parent)
	t.diag.Rotation("left")
}

// rotateRight pivots on parent: parent's left child takes parent's place,
// and parent becomes that child's new right child.
func (t *Tree[T, O, Tr]) rotateRight(parent T) {
	leftChild := leftOf(parent)
	header(parent).left = rightOf(leftChild)

	if !isNil(rightOf(leftChild)) {
		header(rightOf(leftChild)).parent = parent
	}

	header(leftChild).right = parent
	header(leftChild).parent = parentOf(parent)

	if !isNil(parentOf(parent)) {
		if leftOf(parentOf(parent)) == parent {
			header(parentOf(parent)).left = leftChild
		} else {
			header(parentOf(parent)).right = leftChild
		}
	} else {
		t.root = leftChild
	}

	header(parent).parent = leftChild

	t.traits.RotatedRight(parent)
	t.diag.Rotation("right")
}
