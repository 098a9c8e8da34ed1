package dafsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSuffixes_CollapsesSharedTail(t *testing.T) {
	g, err := BuildWordGraph([]string{"ca1", "cb1"})
	require.NoError(t, err)

	r := Reverse(g)
	require.Len(t, r.Source.Children, 2, "reverse alone keeps each word's own chain")

	merged := MergeSuffixes(r)
	require.Len(t, merged.Source.Children, 2, "the source keeps one entry per reversed chain")
	// Both reversed chains end in a "c" node with the identical descendant
	// word set {"c"}, so that tail must collapse to one shared node.
	assert.Same(t, merged.Source.Children[0].Children[0].Children[0], merged.Source.Children[1].Children[0].Children[0])
}

func TestMergeSuffixes_DistinctWordSetsStaySeparate(t *testing.T) {
	g, err := BuildWordGraph([]string{"aa1", "bb2"})
	require.NoError(t, err)

	r := Reverse(g)
	merged := MergeSuffixes(r)
	assert.Len(t, merged.Source.Children, 2)
}

func TestSetKey_OrderAndDuplicateIndependent(t *testing.T) {
	a := setKey([]string{"x", "y", "x"})
	b := setKey([]string{"y", "x"})
	assert.Equal(t, a, b)

	c := setKey([]string{"x", "z"})
	assert.NotEqual(t, a, c)
}
