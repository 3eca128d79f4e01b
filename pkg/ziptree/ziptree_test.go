package ziptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsUseHash(t *testing.T) {
	t.Parallel()

	assert.False(t, StoredRank{}.UseHash())
	assert.True(t, HashedRank{}.UseHash())
}

func TestUniversalize(t *testing.T) {
	t.Parallel()

	got := Universalize(12345, 7, 101)
	assert.Equal(t, (uint64(12345)*7)%101, got)
}

func TestRankDeterministic(t *testing.T) {
	t.Parallel()

	a := Rank(42, 0, 0)
	b := Rank(42, 0, 0)
	assert.Equal(t, a, b)

	c := Rank(43, 0, 0)
	assert.NotEqual(t, a, c)
}

func TestRankUniversalized(t *testing.T) {
	t.Parallel()

	plain := Rank("key", 0, 0)
	universalized := Rank("key", 3, 97)
	assert.Equal(t, Universalize(plain, 3, 97), universalized)
}
