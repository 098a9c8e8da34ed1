package dafsa

// JoinLabels fuses chains of single-child, single-parent nodes into one
// multi-byte label. It is two-pass: first
// it counts, per node, how many parents reference it (the sink is seeded at
// 2 so it is never fused); then it rebuilds the graph depth-first, fusing
// any node that has exactly one child whose parent-count is exactly 1 by
// concatenating the two labels and adopting the grandchildren.
func JoinLabels(g *Graph) *Graph {
	out := newGraph()

	parentCount := map[*Node]int{g.Sink: 2}
	var countParents func(node *Node)
	countParents = func(node *Node) {
		if n, ok := parentCount[node]; ok {
			parentCount[node] = n + 1
			return
		}
		parentCount[node] = 1
		for _, child := range node.Children {
			countParents(child)
		}
	}
	for _, child := range g.Source.Children {
		countParents(child)
	}

	joined := map[*Node]*Node{g.Sink: out.Sink}
	var join func(node *Node) *Node
	join = func(node *Node) *Node {
		if n, ok := joined[node]; ok {
			return n
		}
		children := make([]*Node, len(node.Children))
		for i, child := range node.Children {
			children[i] = join(child)
		}
		var n *Node
		if len(children) == 1 && parentCount[node.Children[0]] == 1 {
			child := children[0]
			n = newInterior(node.Label+child.Label, child.Children...)
		} else {
			n = newInterior(node.Label, children...)
		}
		joined[node] = n
		return n
	}

	out.Source.Children = make([]*Node, len(g.Source.Children))
	for i, child := range g.Source.Children {
		out.Source.Children[i] = join(child)
	}
	return out
}
