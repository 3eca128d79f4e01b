package dst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knotwork/knotwork/pkg/dst"
	"github.com/knotwork/knotwork/pkg/rbtree"
)

type breakpoint struct {
	hdr rbtree.Header[*breakpoint]
	at  int
}

func (n *breakpoint) RBHeader() *rbtree.Header[*breakpoint] { return &n.hdr }

func lessBreakpoint(a, b *breakpoint) bool { return a.at < b.at }

func TestRBAdapter(t *testing.T) {
	t.Parallel()

	tree := rbtree.New[*breakpoint, rbtree.Unique, rbtree.DefaultTraits[*breakpoint]](lessBreakpoint)
	adapter := dst.NewRBAdapter(tree)

	require.True(t, adapter.Insert(&breakpoint{at: 10}))
	require.True(t, adapter.Insert(&breakpoint{at: 20}))
	assert.Equal(t, 2, adapter.Len())

	dup := &breakpoint{at: 10}
	assert.False(t, adapter.Insert(dup))
	assert.Equal(t, 2, adapter.Len())

	adapter.Remove(tree.Find(&breakpoint{at: 10}))
	assert.Equal(t, 1, adapter.Len())
}

var _ dst.Adapter[*breakpoint] = (*dst.RBAdapter[*breakpoint, rbtree.Unique, rbtree.DefaultTraits[*breakpoint]])(nil)
