package decor

import "sort"

// rebalanceChildren restores the tree's balance properties after an
// update has replaced some children: empty children after the first are
// dropped (their Length folded into the previous sibling; an empty first
// child stays in place), oversized children are unwrapped, adjacent small
// leaves are merged, and runs of undersized children are grouped under a
// new wrapper node.
func rebalanceChildren(local []Decoration, children []*DecorationSet, childSize int) ([]Decoration, []*DecorationSet) {
	off := 0
	i := 0
	for i < len(children) {
		child := children[i]

		if child.Size == 0 && len(children) > 1 && i > 0 {
			children[i-1] = growLength(children[i-1], child.Length)
			off += child.Length
			children = append(children[:i], children[i+1:]...)
			continue
		}

		if child.Size > 2*childSize && len(child.local) < child.Length/2 {
			offsetLocal := make([]Decoration, len(child.local))
			for k, d := range child.local {
				offsetLocal[k] = Decoration{From: d.From + off, To: d.To + off, Desc: d.Desc}
			}
			local = append(local, offsetLocal...)
			spliced := make([]*DecorationSet, 0, len(children)-1+len(child.children))
			spliced = append(spliced, children[:i]...)
			spliced = append(spliced, child.children...)
			spliced = append(spliced, children[i+1:]...)
			children = spliced
			continue
		}

		if i+1 < len(children) {
			next := children[i+1]
			if len(child.children) == 0 && len(next.children) == 0 && child.Size+next.Size <= BaseNodeSize {
				merged := mergeLeaves(child, next)
				spliced := make([]*DecorationSet, 0, len(children)-1)
				spliced = append(spliced, children[:i]...)
				spliced = append(spliced, merged)
				spliced = append(spliced, children[i+2:]...)
				children = spliced
				continue
			}
		}

		if child.Size < childSize/2 {
			joinTo := i + 1
			total := child.Size
			for joinTo < len(children) && total+children[joinTo].Size <= childSize {
				total += children[joinTo].Size
				joinTo++
			}
			if joinTo > i+1 {
				groupLen := 0
				for _, c := range children[i:joinTo] {
					groupLen += c.Length
				}
				var pulled, keptLocal []Decoration
				for _, d := range local {
					if d.From >= off && d.To <= off+groupLen {
						pulled = append(pulled, Decoration{From: d.From - off, To: d.To - off, Desc: d.Desc})
					} else {
						keptLocal = append(keptLocal, d)
					}
				}
				sort.SliceStable(pulled, func(a, b int) bool { return decorationLess(pulled[a], pulled[b]) })
				local = keptLocal

				base := &DecorationSet{Length: groupLen, children: append([]*DecorationSet(nil), children[i:joinTo]...)}
				wrapper := base.updateInner(pulled, alwaysKeep, 0, 0, groupLen)

				spliced := make([]*DecorationSet, 0, len(children)-(joinTo-i)+1)
				spliced = append(spliced, children[:i]...)
				spliced = append(spliced, wrapper)
				spliced = append(spliced, children[joinTo:]...)
				children = spliced
				continue
			}
		}

		off += child.Length
		i++
	}
	return local, children
}

// growLength returns a copy of s with its Length increased by delta,
// preserving its local decorations, children, and Size. Used to fold a
// dropped empty child's coverage into the previous sibling.
func growLength(s *DecorationSet, delta int) *DecorationSet {
	return &DecorationSet{Length: s.Length + delta, Size: s.Size, local: s.local, children: s.children}
}

// mergeLeaves combines two adjacent leaves into one.
func mergeLeaves(a, b *DecorationSet) *DecorationSet {
	local := make([]Decoration, 0, len(a.local)+len(b.local))
	local = append(local, a.local...)
	for _, d := range b.local {
		local = append(local, Decoration{From: d.From + a.Length, To: d.To + a.Length, Desc: d.Desc})
	}
	return &DecorationSet{Length: a.Length + b.Length, Size: a.Size + b.Size, local: local}
}
