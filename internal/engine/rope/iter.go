package rope

// chunkIterFrame is a position in the depth-first walk over the tree.
type chunkIterFrame struct {
	node *Node
	idx  int
}

// ChunkIterator iterates over chunks in a rope in order.
type ChunkIterator struct {
	stack   []chunkIterFrame
	chunk   Chunk
	started bool
}

// Chunks returns an iterator over all chunks in the rope.
func (r Rope) Chunks() *ChunkIterator {
	it := &ChunkIterator{stack: make([]chunkIterFrame, 0, 8)}
	if r.root != nil {
		it.stack = append(it.stack, chunkIterFrame{node: r.root})
	}
	return it
}

// Next advances to the next non-empty chunk.
func (it *ChunkIterator) Next() bool {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.node.IsLeaf() {
			if top.idx < len(top.node.chunks) {
				it.chunk = top.node.chunks[top.idx]
				top.idx++
				if it.chunk.IsEmpty() {
					continue
				}
				return true
			}
		} else if top.idx < len(top.node.children) {
			child := top.node.children[top.idx]
			top.idx++
			it.stack = append(it.stack, chunkIterFrame{node: child})
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	return false
}

// Chunk returns the current chunk.
func (it *ChunkIterator) Chunk() Chunk {
	return it.chunk
}

// LineIterator iterates over lines of a rope, newline included.
type LineIterator struct {
	rope Rope
	line int
	text string
}

// LinesFrom returns an iterator over lines starting at line.
func (r Rope) LinesFrom(line int) *LineIterator {
	return &LineIterator{rope: r, line: line - 1}
}

// Next advances to the next line.
func (it *LineIterator) Next() bool {
	if it.line+1 >= it.rope.LineCount() {
		return false
	}
	it.line++
	it.text = it.rope.Line(it.line)
	return true
}

// Text returns the current line's text, including its newline.
func (it *LineIterator) Text() string {
	return it.text
}

// Line returns the current line number (0-indexed).
func (it *LineIterator) Line() int {
	return it.line
}
