package interval //nolint:testpackage // tests assert directly on maxUpper, which is unexported

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ivNode struct {
	Header[*ivNode, int]
	label string
}

func newEntry(label string, lower, upper int) *ivNode {
	n := &ivNode{label: label}
	n.Lower = lower
	n.Upper = upper

	return n
}

func newIvTree() *Tree[*ivNode, int] {
	return New[*ivNode, int]()
}

func collect(it *QueryIterator[*ivNode, int]) []string {
	var out []string
	for ; it.Valid(); it.Next() {
		out = append(out, it.Node().label)
	}

	return out
}

func TestOverlapsHalfOpen(t *testing.T) {
	t.Parallel()

	assert.True(t, Overlaps(1, 5, 3, 7))
	assert.False(t, Overlaps(1, 5, 5, 7))
	assert.True(t, Overlaps(1, 5, 0, 1000))
	assert.False(t, Overlaps(20, 30, 1, 5))
}

func TestIntervalOverlapQueryScenario(t *testing.T) {
	t.Parallel()

	tree := newIvTree()

	a := newEntry("[1,5)", 1, 5)
	b := newEntry("[3,7)", 3, 7)
	c := newEntry("[6,9)", 6, 9)
	d := newEntry("[10,12)", 10, 12)

	tree.Insert(a, 1, 5)
	tree.Insert(b, 3, 7)
	tree.Insert(c, 6, 9)
	tree.Insert(d, 10, 12)

	require.True(t, tree.VerifyIntegrity())

	assert.Equal(t, []string{"[1,5)", "[3,7)"}, collect(tree.Query(4, 6)))
	assert.Equal(t, []string{"[10,12)"}, collect(tree.Query(11, 20)))
	assert.Nil(t, collect(tree.Query(20, 30)))
	assert.Equal(t, []string{"[1,5)", "[3,7)", "[6,9)", "[10,12)"}, collect(tree.Query(0, 100)))
}

func TestMaxUpperUnderRotation(t *testing.T) {
	t.Parallel()

	tree := newIvTree()

	lowers := []int{1, 2, 3, 4, 5}
	uppers := []int{100, 3, 4, 5, 6}

	for i := range lowers {
		tree.Insert(newEntry("", lowers[i], uppers[i]), lowers[i], uppers[i])
		require.True(t, tree.VerifyIntegrity())

		root := tree.inner.Root()
		got, _ := maxUpperOf[*ivNode, int](root)
		assert.Equal(t, 100, got)
	}
}

func TestRemoveShrinksMaxUpper(t *testing.T) {
	t.Parallel()

	tree := newIvTree()

	a := newEntry("a", 1, 100)
	b := newEntry("b", 2, 3)
	c := newEntry("c", 3, 4)

	tree.Insert(a, 1, 100)
	tree.Insert(b, 2, 3)
	tree.Insert(c, 3, 4)
	require.True(t, tree.VerifyIntegrity())

	tree.Remove(a)
	require.True(t, tree.VerifyIntegrity())

	assert.Equal(t, []string{"c"}, collect(tree.Query(3, 4)))
	assert.Nil(t, collect(tree.Query(50, 60)))
}

func TestDuplicateIntervalsAdmitted(t *testing.T) {
	t.Parallel()

	tree := newIvTree()

	a := newEntry("a", 1, 5)
	b := newEntry("b", 1, 5)

	tree.Insert(a, 1, 5)
	tree.Insert(b, 1, 5)

	assert.Equal(t, 2, tree.Len())
	require.True(t, tree.VerifyIntegrity())
	assert.ElementsMatch(t, []string{"a", "b"}, collect(tree.Query(1, 5)))
}
