package dafsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopoSort_ParentsBeforeChildren(t *testing.T) {
	g, err := BuildWordGraph([]string{"aa1", "a2"})
	require.NoError(t, err)
	g = JoinLabels(MergeSuffixes(Reverse(MergeSuffixes(Reverse(g)))))

	order := TopoSort(g)
	require.NotEmpty(t, order)

	position := map[*Node]int{}
	for i, n := range order {
		position[n] = i
	}
	for _, n := range order {
		for _, child := range n.Children {
			if child == g.Sink {
				continue
			}
			assert.Less(t, position[n], position[child], "a parent must appear before its child in topological order")
		}
	}
}

func TestTopoSort_SharedNodeVisitedOnce(t *testing.T) {
	g := newGraph()
	shared := newInterior("x", g.Sink)
	a := newInterior("a", shared)
	b := newInterior("b", shared)
	g.Source.Children = []*Node{a, b}

	order := TopoSort(g)
	count := 0
	for _, n := range order {
		if n == shared {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, order, 3)
}
