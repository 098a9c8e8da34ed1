package dafsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse_SwapsSourceAndSink(t *testing.T) {
	g, err := BuildWordGraph([]string{"ab1"})
	require.NoError(t, err)

	r := Reverse(g)
	require.Len(t, r.Source.Children, 1)

	// The reversed chain runs back to front: the new source leads to the
	// digit-1 node (the old sink's parent), then "b", then "a", then the sink.
	n1 := r.Source.Children[0]
	assert.Equal(t, string(rune(1)), n1.Label)
	require.Len(t, n1.Children, 1)

	n2 := n1.Children[0]
	assert.Equal(t, "b", n2.Label)
	require.Len(t, n2.Children, 1)

	n3 := n2.Children[0]
	assert.Equal(t, "a", n3.Label)
	assert.Same(t, r.Sink, n3.Children[0])
}

func TestReverse_PreservesOneChainPerWord(t *testing.T) {
	// Reverse alone does not merge anything: each input word still owns its
	// own chain of freshly minted nodes until MergeSuffixes canonicalizes
	// equal descendant-word-sets (see TestMergeSuffixes_CollapsesSharedTail).
	g, err := BuildWordGraph([]string{"ca1", "cb1"})
	require.NoError(t, err)

	r := Reverse(g)
	assert.Len(t, r.Source.Children, 2)
}

func TestReverseLabel(t *testing.T) {
	assert.Equal(t, "cba", reverseString("abc"))
	assert.Equal(t, "a", reverseString("a"))
	assert.Equal(t, "", reverseString(""))
}
