package dafsa

import "sort"

// MergeSuffixes collapses nodes whose descendant terminal-word sets are
// equal into one shared node. Traversal is depth-first and the merged
// graph is rebuilt bottom-up, so a parent always sees its children already
// canonicalized.
//
// The word-set is computed explicitly per node; for dictionaries of the
// size this compiler targets (typically thousands of entries) this is
// cheap enough, and it is memoized per source node so no subtree is
// walked twice.
func MergeSuffixes(g *Graph) *Graph {
	out := newGraph()
	bySet := map[string]*Node{}
	words := map[*Node][]string{}

	var wordsOf func(old *Node) []string
	wordsOf = func(old *Node) []string {
		if old == g.Sink {
			return []string{""}
		}
		if w, ok := words[old]; ok {
			return w
		}
		var out []string
		for _, child := range old.Children {
			for _, suffix := range wordsOf(child) {
				out = append(out, old.Label+suffix)
			}
		}
		words[old] = out
		return out
	}

	var join func(old *Node) *Node
	join = func(old *Node) *Node {
		if old == g.Sink {
			return out.Sink
		}
		key := setKey(wordsOf(old))
		if n, ok := bySet[key]; ok {
			return n
		}
		children := make([]*Node, len(old.Children))
		for i, child := range old.Children {
			children[i] = join(child)
		}
		n := newInterior(old.Label, children...)
		bySet[key] = n
		return n
	}

	children := make([]*Node, len(g.Source.Children))
	for i, child := range g.Source.Children {
		children[i] = join(child)
	}
	out.Source.Children = children
	return out
}

// setKey builds a canonical, order- and duplicate-independent key for a set
// of words, so that equal reachable-word sets map to the same key regardless
// of traversal order. Words never contain '\n' (labels are 0x20-0x7F plus
// return digits 0x00-0x07), so it is a safe separator.
func setKey(words []string) string {
	seen := map[string]struct{}{}
	unique := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			unique = append(unique, w)
		}
	}
	sort.Strings(unique)
	key := make([]byte, 0, len(unique)*4)
	for _, w := range unique {
		key = append(key, w...)
		key = append(key, '\n')
	}
	return string(key)
}
