package dafsa

// TopoSort returns every non-source, non-sink node reachable from g.Source,
// ordered so a node never
// precedes one of its parents: source children come first, the deepest
// shared nodes last. The encoder walks this order back to front so that
// every child is assigned an offset before its parents need it.
//
// The in-degree count seeds each of g.Source's children at an implicit
// extra incoming reference (one per root), then immediately discharges it,
// mirroring the upstream algorithm's use of a synthetic multi-root list in
// place of a single source node.
func TopoSort(g *Graph) []*Node {
	incoming := map[*Node]int{}

	var countIncoming func(node *Node)
	countIncoming = func(node *Node) {
		if node == nil || node == g.Sink {
			return
		}
		if _, ok := incoming[node]; !ok {
			incoming[node] = 1
			for _, child := range node.Children {
				countIncoming(child)
			}
		} else {
			incoming[node]++
		}
	}
	for _, root := range g.Source.Children {
		countIncoming(root)
	}
	for _, root := range g.Source.Children {
		incoming[root]--
	}

	var waiting []*Node
	for _, root := range g.Source.Children {
		if incoming[root] == 0 {
			waiting = append(waiting, root)
		}
	}

	var nodes []*Node
	for len(waiting) > 0 {
		node := waiting[len(waiting)-1]
		waiting = waiting[:len(waiting)-1]
		nodes = append(nodes, node)
		for _, child := range node.Children {
			if child == g.Sink {
				continue
			}
			incoming[child]--
			if incoming[child] == 0 {
				waiting = append(waiting, child)
			}
		}
	}
	return nodes
}
