package rope

import "strings"

// Tree structure constants
const (
	// MaxChildren is the maximum children per internal node before splitting.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node is a node in the rope B+ tree.
// Leaf nodes (height == 0) contain text chunks.
// Internal nodes (height > 0) contain child node references.
type Node struct {
	height  uint8
	summary TextSummary

	// Internal node fields (height > 0)
	children       []*Node
	childSummaries []TextSummary

	// Leaf node fields (height == 0)
	chunks []Chunk
}

func newLeafNode() *Node {
	return &Node{chunks: make([]Chunk, 0, MaxChunksPerLeaf)}
}

func newLeafNodeWithChunks(chunks []Chunk) *Node {
	n := &Node{chunks: chunks}
	for _, c := range chunks {
		n.summary = n.summary.Add(c.Summary())
	}
	return n
}

func newInternalNode(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}

	summaries := make([]TextSummary, len(children))
	var total TextSummary
	for i, child := range children {
		summaries[i] = child.summary
		total = total.Add(child.summary)
	}
	return &Node{
		height:         children[0].height + 1,
		summary:        total,
		children:       children,
		childSummaries: summaries,
	}
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Len returns the byte length of text in this subtree.
func (n *Node) Len() int {
	return n.summary.Bytes
}

func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, c := range n.chunks {
			sb.WriteString(c.String())
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange appends the text in the byte range [start, end) to sb.
func (n *Node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}

	offset := 0
	if n.IsLeaf() {
		for _, c := range n.chunks {
			cEnd := offset + c.Len()
			if cEnd > start && offset < end {
				lo := max(start-offset, 0)
				hi := min(end-offset, c.Len())
				sb.WriteString(c.String()[lo:hi])
			}
			offset = cEnd
			if offset >= end {
				break
			}
		}
		return
	}

	for i, child := range n.children {
		childLen := n.childSummaries[i].Bytes
		cEnd := offset + childLen
		if cEnd > start && offset < end {
			child.appendRange(sb, max(start-offset, 0), min(end-offset, childLen))
		}
		offset = cEnd
		if offset >= end {
			break
		}
	}
}

// split splits the node at a byte offset.
func (n *Node) split(offset int) (*Node, *Node) {
	if offset <= 0 {
		return newLeafNode(), n
	}
	if offset >= n.Len() {
		return n, newLeafNode()
	}

	if n.IsLeaf() {
		var left, right []Chunk
		pos := 0
		for _, c := range n.chunks {
			switch {
			case pos+c.Len() <= offset:
				left = append(left, c)
			case pos >= offset:
				right = append(right, c)
			default:
				l, r := c.Split(offset - pos)
				left = append(left, l)
				right = append(right, r)
			}
			pos += c.Len()
		}
		return newLeafNodeWithChunks(left), newLeafNodeWithChunks(right)
	}

	var left, right []*Node
	pos := 0
	for i, child := range n.children {
		childLen := n.childSummaries[i].Bytes
		switch {
		case pos+childLen <= offset:
			left = append(left, child)
		case pos >= offset:
			right = append(right, child)
		default:
			l, r := child.split(offset - pos)
			if l.Len() > 0 {
				left = append(left, l)
			}
			if r.Len() > 0 {
				right = append(right, r)
			}
		}
		pos += childLen
	}
	return buildNodeFromChildren(left), buildNodeFromChildren(right)
}

// buildNodeFromChildren creates a balanced tree from a list of child nodes.
// Children may differ in height after a split, so they are levelled first.
func buildNodeFromChildren(children []*Node) *Node {
	switch len(children) {
	case 0:
		return newLeafNode()
	case 1:
		return children[0]
	}

	var height uint8
	for _, c := range children {
		height = max(height, c.height)
	}
	for i, c := range children {
		for c.height < height {
			c = newInternalNode([]*Node{c})
		}
		children[i] = c
	}

	if len(children) <= MaxChildren {
		return newInternalNode(children)
	}
	var parents []*Node
	for i := 0; i < len(children); i += MaxChildren {
		end := min(i+MaxChildren, len(children))
		parents = append(parents, newInternalNode(children[i:end:end]))
	}
	return buildNodeFromChildren(parents)
}

func concat(left, right *Node) *Node {
	if left == nil || left.Len() == 0 {
		if right == nil {
			return newLeafNode()
		}
		return right
	}
	if right == nil || right.Len() == 0 {
		return left
	}

	for left.height < right.height {
		left = newInternalNode([]*Node{left})
	}
	for right.height < left.height {
		right = newInternalNode([]*Node{right})
	}

	if left.IsLeaf() {
		if len(left.chunks)+len(right.chunks) <= MaxChunksPerLeaf {
			chunks := make([]Chunk, 0, MaxChunksPerLeaf)
			chunks = append(chunks, left.chunks...)
			chunks = append(chunks, right.chunks...)
			return newLeafNodeWithChunks(chunks)
		}
		return newInternalNode([]*Node{left, right})
	}

	all := make([]*Node, 0, len(left.children)+len(right.children))
	all = append(all, left.children...)
	all = append(all, right.children...)
	return buildNodeFromChildren(all)
}

// seekChar descends to the chunk holding character index ci and returns it
// together with the summary of all text before that chunk. An index at or past
// the end resolves to the last chunk.
func (n *Node) seekChar(ci int) (Chunk, TextSummary) {
	var before TextSummary
	node := n
	for !node.IsLeaf() {
		idx := len(node.children) - 1
		for i, s := range node.childSummaries {
			if ci-before.Chars < s.Chars {
				idx = i
				break
			}
			if i < len(node.children)-1 {
				before = before.Add(s)
			}
		}
		node = node.children[idx]
	}

	if len(node.chunks) == 0 {
		return Chunk{}, before
	}
	for i, c := range node.chunks {
		if ci-before.Chars < c.summary.Chars || i == len(node.chunks)-1 {
			return c, before
		}
		before = before.Add(c.summary)
	}
	return Chunk{}, before
}

// seekLine descends to the chunk holding the line-th newline (1-indexed) and
// returns it with the summary of all text before it.
func (n *Node) seekLine(line int) (Chunk, TextSummary, bool) {
	if line <= 0 || line > n.summary.Lines {
		return Chunk{}, TextSummary{}, false
	}

	var before TextSummary
	node := n
	for !node.IsLeaf() {
		for i, s := range node.childSummaries {
			if before.Lines+s.Lines >= line {
				node = node.children[i]
				break
			}
			before = before.Add(s)
		}
	}
	for _, c := range node.chunks {
		if before.Lines+c.summary.Lines >= line {
			return c, before, true
		}
		before = before.Add(c.summary)
	}
	return Chunk{}, TextSummary{}, false
}
