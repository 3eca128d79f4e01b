package rbtree //nolint:testpackage // tests need the unexported header/eq-chain helpers to assert structure directly

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

func (n *intNode) RBHeader() *Header[*intNode] { return &n.hdr }

func lessInt(a, b *intNode) bool { return a.key < b.key }

func newIntTree() *Tree[*intNode, Default, DefaultTraits[*intNode]] {
	return New[*intNode, Default, DefaultTraits[*intNode]](lessInt)
}

func inorderKeys(t *Tree[*intNode, Default, DefaultTraits[*intNode]]) []int {
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
	assert.False(t, tree.Begin().Valid())
}

func TestInsertRecolorOnlyScenario(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	nodes := map[int]*intNode{}

	for _, k := range []int{10, 5, 15, 3, 7} {
		n := &intNode{key: k}
		nodes[k] = n
		require.True(t, tree.Insert(n))
	}

	require.True(t, tree.VerifyIntegrity())
	assert.Equal(t, []int{3, 5, 7, 10, 15}, inorderKeys(tree))

	assert.Equal(t, nodes[10], tree.root)
	assert.Equal(t, Black, colorOf(tree.root))
	assert.Equal(t, Black, colorOf(nodes[5]))
	assert.Equal(t, Black, colorOf(nodes[15]))
	assert.Equal(t, Red, colorOf(nodes[3]))
	assert.Equal(t, Red, colorOf(nodes[7]))

	_, ok := blackPathLength(tree.root)
	assert.True(t, ok)
}

func TestDeleteCascadeScenario(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	nodes := map[int]*intNode{}

	for _, k := range []int{10, 5, 15, 3, 7} {
		n := &intNode{key: k}
		nodes[k] = n
		tree.Insert(n)
	}

	tree.Remove(nodes[3])
	require.True(t, tree.VerifyIntegrity())

	tree.Remove(nodes[5])
	require.True(t, tree.VerifyIntegrity())

	tree.Remove(nodes[10])
	require.True(t, tree.VerifyIntegrity())

	assert.Equal(t, []int{7, 15}, inorderKeys(tree))
	assert.Equal(t, Black, colorOf(tree.root))
}

func TestFindUpperBound(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	for _, k := range []int{10, 5, 15, 3, 7} {
		tree.Insert(&intNode{key: k})
	}

	found := tree.Find(&intNode{key: 7})
	require.False(t, isNil(found))
	assert.Equal(t, 7, found.key)

	assert.True(t, isNil(tree.Find(&intNode{key: 99})))

	ub := tree.UpperBound(&intNode{key: 7})
	require.False(t, isNil(ub))
	assert.Equal(t, 10, ub.key)

	assert.True(t, isNil(tree.UpperBound(&intNode{key: 15})))
}

func TestDuplicatesEqualityChain(t *testing.T) {
	t.Parallel()

	tree := newIntTree()

	a := &intNode{key: 5}
	b := &intNode{key: 5}
	c := &intNode{key: 5}

	require.True(t, tree.Insert(a))
	require.True(t, tree.Insert(b))
	require.True(t, tree.Insert(c))
	require.True(t, tree.VerifyIntegrity())

	head := tree.Find(&intNode{key: 5})
	require.Equal(t, c, head)

	var chain []*intNode
	for n := head; !isNil(n); n = eqNext(n) {
		chain = append(chain, n)
	}

	assert.Equal(t, []*intNode{c, b, a}, chain)

	tree.Remove(b)
	require.True(t, tree.VerifyIntegrity())

	chain = nil
	for n := eqFindFirst[*intNode, Default](a); !isNil(n); n = eqNext(n) {
		chain = append(chain, n)
	}

	assert.Len(t, chain, 2)
	assert.True(t, eqVerify[*intNode, Default](a))
}

func TestUniqueRejectsDuplicateInsert(t *testing.T) {
	t.Parallel()

	tree := New[*intNode, Unique, DefaultTraits[*intNode]](lessInt)

	a := &intNode{key: 1}
	b := &intNode{key: 1}

	require.True(t, tree.Insert(a))
	require.False(t, tree.Insert(b))
	assert.Equal(t, 1, tree.Len())
}

func TestRandomRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		tree := newIntTree()

		n := 200
		keys := make([]int, n)
		nodes := make([]*intNode, n)

		for i := range keys {
			keys[i] = rng.Intn(50)
			nodes[i] = &intNode{key: keys[i]}
		}

		order := rng.Perm(n)
		for _, i := range order {
			tree.Insert(nodes[i])
			require.True(t, tree.VerifyIntegrity())
		}

		want := append([]int(nil), keys...)
		sort.Ints(want)
		assert.Equal(t, want, inorderKeys(tree))
		assert.Equal(t, n, tree.Len())

		removeOrder := rng.Perm(n)
		for _, i := range removeOrder {
			tree.Remove(nodes[i])
			require.True(t, tree.VerifyIntegrity())
		}

		assert.True(t, tree.Empty())
		assert.Equal(t, 0, tree.Len())
	}
}

func TestIteratorDirections(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(&intNode{key: k})
	}

	var fwd []int

	for it := tree.Begin(); it.Valid(); it.Next() {
		fwd = append(fwd, it.Node().key)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, fwd)

	var rev []int
	for it := tree.RBegin(); it.Valid(); it.Next() {
		rev = append(rev, it.Node().key)
	}

	assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, rev)
}
