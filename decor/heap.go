package decor

import "container/heap"

// setCursor walks one DecorationSet's decorations in ascending (From,
// bias) order without flattening the tree up front, descending into
// children only as the walk reaches them. A cursor built with a lower
// bound additionally skips, without ever descending into them, any
// local decoration or child subtree whose absolute end lies strictly
// before that bound (a decoration or subtree ending exactly at the
// bound may still contain a zero-length point decoration positioned
// there, so it is never pruned — only genuinely unreachable subtrees
// are).
type setCursor struct {
	stack []cursorFrame
	from  int
}

type cursorFrame struct {
	node     *DecorationSet
	offset   int
	localIdx int
	childIdx int
}

// newSetCursor walks every decoration in s.
func newSetCursor(s *DecorationSet) *setCursor {
	return newBoundedSetCursor(s, 0)
}

// newBoundedSetCursor walks only the decorations in s that can overlap
// [from, +inf): a child subtree entirely ending before from is skipped
// outright rather than descended into, giving decorationsIn a window
// lookup that costs proportional to the window plus the tree's depth,
// not the tree's whole size.
func newBoundedSetCursor(s *DecorationSet, from int) *setCursor {
	c := &setCursor{from: from}
	if s != nil {
		c.stack = append(c.stack, cursorFrame{node: s})
	}
	return c
}

// next returns the cursor's next decoration in absolute document
// coordinates, or ok=false once every decoration in the set has been
// produced.
func (c *setCursor) next() (Decoration, bool) {
	for len(c.stack) > 0 {
		top := &c.stack[len(c.stack)-1]
		node := top.node

		if top.localIdx < len(node.local) && node.local[top.localIdx].To+top.offset < c.from {
			top.localIdx++
			continue
		}

		childStart := 0
		for i := 0; i < top.childIdx; i++ {
			childStart += node.children[i].Length
		}

		if top.childIdx < len(node.children) {
			if top.localIdx < len(node.local) && node.local[top.localIdx].From <= childStart {
				d := node.local[top.localIdx]
				top.localIdx++
				return Decoration{From: d.From + top.offset, To: d.To + top.offset, Desc: d.Desc}, true
			}
			child := node.children[top.childIdx]
			top.childIdx++
			if top.offset+childStart+child.Length < c.from {
				continue
			}
			c.stack = append(c.stack, cursorFrame{node: child, offset: top.offset + childStart})
			continue
		}

		if top.localIdx < len(node.local) {
			d := node.local[top.localIdx]
			top.localIdx++
			return Decoration{From: d.From + top.offset, To: d.To + top.offset, Desc: d.Desc}, true
		}

		c.stack = c.stack[:len(c.stack)-1]
	}
	return Decoration{}, false
}

// heapItem is one pending decoration in the merge heap, tagged with the
// index of the set its cursor came from.
type heapItem struct {
	setIndex int
	dec      Decoration
}

type decorHeap []heapItem

func (h decorHeap) Len() int            { return len(h) }
func (h decorHeap) Less(i, j int) bool  { return decorationLess(h[i].dec, h[j].dec) }
func (h decorHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *decorHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *decorHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// IteratedSet drives an in-order merge across several DecorationSets using
// a min-heap of their cursors, so callers walking
// decorations from more than one set never need to flatten and re-sort
// them first.
type IteratedSet struct {
	cursors []*setCursor
	h       decorHeap
}

// NewIteratedSet builds a merge iterator over sets.
func NewIteratedSet(sets []*DecorationSet) *IteratedSet {
	it := &IteratedSet{cursors: make([]*setCursor, len(sets))}
	for i, s := range sets {
		it.cursors[i] = newSetCursor(s)
		if d, ok := it.cursors[i].next(); ok {
			heap.Push(&it.h, heapItem{setIndex: i, dec: d})
		}
	}
	return it
}

// Next pops the next decoration in global (From, bias) order across every
// set, along with the index of the set it belongs to.
func (it *IteratedSet) Next() (setIndex int, dec Decoration, ok bool) {
	if it.h.Len() == 0 {
		return 0, Decoration{}, false
	}
	top := heap.Pop(&it.h).(heapItem)
	if nd, ok := it.cursors[top.setIndex].next(); ok {
		heap.Push(&it.h, heapItem{setIndex: top.setIndex, dec: nd})
	}
	return top.setIndex, top.dec, true
}
