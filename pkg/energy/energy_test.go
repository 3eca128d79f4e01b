package energy //nolint:testpackage // tests need direct header access to assert size/energy invariants

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intNode struct {
	hdr Header[*intNode]
	key int
}

func (n *intNode) ETHeader() *Header[*intNode] { return &n.hdr }

func lessInt(a, b *intNode) bool { return a.key < b.key }

func newIntTree() *Tree[*intNode] {
	return New[*intNode](lessInt)
}

func inorderKeys(t *Tree[*intNode]) []int {
	var out []int
	for it := t.Begin(); it.Valid(); it.Next() {
		out = append(out, it.Node().key)
	}

	return out
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Len())
	assert.True(t, tree.VerifyIntegrity())
}

func TestSequentialRebuildScenario(t *testing.T) {
	t.Parallel()

	tree := newIntTree()

	for k := 1; k <= 15; k++ {
		tree.Insert(&intNode{key: k})
		require.True(t, tree.VerifyIntegrity())
	}

	assert.Equal(t, 15, tree.Len())
	assert.Equal(t, 0, header(tree.root).energy)

	want := make([]int, 15)
	for i := range want {
		want[i] = i + 1
	}

	assert.Equal(t, want, inorderKeys(tree))

	// A complete binary tree of 15 nodes has every subtree size a power of
	// two minus one, and both children of any node equal in size.
	assert.Equal(t, sizeOf(leftOf(tree.root)), sizeOf(rightOf(tree.root)))
}

func TestRandomRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		tree := newIntTree()

		n := 300
		keys := make([]int, n)
		nodes := make([]*intNode, n)

		for i := range keys {
			keys[i] = rng.Intn(80)
			nodes[i] = &intNode{key: keys[i]}
		}

		for _, i := range rng.Perm(n) {
			tree.Insert(nodes[i])
			require.True(t, tree.VerifyIntegrity())
		}

		want := append([]int(nil), keys...)
		sort.Ints(want)
		assert.Equal(t, want, inorderKeys(tree))
		assert.Equal(t, n, tree.Len())

		for _, i := range rng.Perm(n) {
			tree.Remove(nodes[i])
			require.True(t, tree.VerifyIntegrity())
		}

		assert.True(t, tree.Empty())
	}
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	for _, k := range []int{5, 1, 9, 3, 7} {
		tree.Insert(&intNode{key: k})
	}

	assert.Equal(t, 1, tree.Min().key)
	assert.Equal(t, 9, tree.Max().key)
}
