package dafsa

import "sort"

// maxOffset is the first distance the 3-byte offset format cannot express
// (2^21); any required distance at or beyond this value overflows the
// encoding.
const maxOffset = 1 << 21

// Encode emits nodes in reverse topological order (children before
// parents), tracking each node's start
// offset as it goes, then reverses the whole buffer so that every node
// precedes its children and every link points strictly forward.
func Encode(g *Graph) ([]byte, error) {
	order := TopoSort(g)

	var output []byte
	pos := map[*Node]int{}

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if len(node.Children) == 1 && node.Children[0] != g.Sink && pos[node.Children[0]] == len(output) {
			output = append(output, encodePrefix(node.Label)...)
		} else {
			links, err := encodeLinks(node.Children, pos, len(output), g.Sink)
			if err != nil {
				return nil, err
			}
			output = append(output, links...)
			output = append(output, encodeLabel(node.Label)...)
		}
		pos[node] = len(output)
	}

	links, err := encodeLinks(g.Source.Children, pos, len(output), g.Sink)
	if err != nil {
		return nil, err
	}
	output = append(output, links...)

	reverseBytes(output)
	return output, nil
}

// encodePrefix encodes a label as bare bytes, character-reversed, with no
// terminator. Used only when the node's sole child immediately follows it
// in the (in-progress, back-to-front) output, so no offset or terminator is
// needed.
func encodePrefix(label string) []byte {
	buf := make([]byte, len(label))
	for i := 0; i < len(label); i++ {
		buf[i] = label[len(label)-1-i]
	}
	return buf
}

// encodeLabel encodes a label as character-reversed bytes with the high bit
// of the first-written byte set, marking end-of-label. That first-written
// byte is the label's last original character; after the
// final whole-buffer reverse it becomes the last byte of the label walking
// forward, so it terminates the label. When the label ends in a return
// digit, that byte is the return value (0x80-0x87).
func encodeLabel(label string) []byte {
	buf := encodePrefix(label)
	buf[0] |= 0x80
	return buf
}

// encodeLinks encodes a node's outgoing children as a sequence of 1/2/3-byte
// offsets via the fixed-point width search. children[0]==sink (and, given
// the graph's invariants, necessarily the sole child) marks an end-label node with
// no outgoing links at all: its terminator doubles as the return-value byte.
func encodeLinks(children []*Node, pos map[*Node]int, current int, sink *Node) ([]byte, error) {
	if len(children) == 1 && children[0] == sink {
		return nil, nil
	}

	sorted := append([]*Node(nil), children...)
	sort.SliceStable(sorted, func(i, j int) bool { return pos[sorted[i]] > pos[sorted[j]] })

	guess := 3 * len(children)
	var buf []byte
	lastStart := 0
	for {
		offset := current + guess
		buf = buf[:0]
		for _, child := range sorted {
			lastStart = len(buf)
			distance := offset - pos[child]
			if distance <= 0 {
				panic("dafsa: encoder produced a non-positive offset distance")
			}
			if distance >= maxOffset {
				return nil, newEncodingOverflow(distance)
			}
			switch {
			case distance < (1 << 6):
				buf = append(buf, byte(distance))
			case distance < (1 << 13):
				buf = append(buf, byte(0x40|(distance>>8)), byte(distance&0xFF))
			default:
				buf = append(buf, byte(0x60|(distance>>16)), byte((distance>>8)&0xFF), byte(distance&0xFF))
			}
			offset -= distance
		}
		if len(buf) == guess {
			break
		}
		guess = len(buf)
	}
	buf[lastStart] |= 0x80
	reverseBytes(buf)
	return buf, nil
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
