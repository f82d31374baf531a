package decor

import "sort"

// Map returns a new set with every surviving decoration translated
// through changes. Decorations dropped by Decoration.Map are removed.
// Subtrees no change touches are shared with the receiver.
func (s *DecorationSet) Map(changes ChangeSet) *DecorationSet {
	if len(changes) == 0 || s.Size == 0 {
		return s
	}
	newLength := mapPos(s.Length, 1, changes)
	mapped, _ := s.mapInner(changes, 0, 0, newLength)
	if mapped.Size == 0 {
		// A root whose subtree maps to nothing (e.g. a full-document
		// deletion) collapses to a bare leaf rather than keeping stale
		// children around.
		return &DecorationSet{Length: mapped.Length}
	}
	return mapped
}

// mapInner remaps one subtree. oldOffset/newOffset are this node's offset
// in the old and new documents; length is the node's new Length. It
// returns the remapped subtree plus any decorations whose mapped position
// fell outside [0, length] (From below 0 or To past length) and must
// escape to the caller.
func (s *DecorationSet) mapInner(changes ChangeSet, oldOffset, newOffset, length int) (*DecorationSet, []Decoration) {
	var newLocal, escaped []Decoration
	for _, d := range s.local {
		md, ok := d.Map(changes, oldOffset, newOffset)
		if !ok {
			continue
		}
		if md.From < 0 || md.To > length {
			escaped = append(escaped, md)
		} else {
			newLocal = append(newLocal, md)
		}
	}

	var newChildren []*DecorationSet
	oldPos, newPos := 0, 0
	for _, child := range s.children {
		oldEnd := oldPos + child.Length
		oldAbsStart := oldOffset + oldPos
		oldAbsEnd := oldOffset + oldEnd
		newAbsEnd := mapPos(oldAbsEnd, 1, changes)
		newLen := newAbsEnd - (newOffset + newPos)

		if !touchesChange(oldAbsStart, oldAbsEnd, changes) {
			kept := child
			if newLen != child.Length {
				kept = &DecorationSet{Length: newLen, Size: child.Size, local: child.local, children: child.children}
			}
			newChildren = append(newChildren, kept)
			newPos += newLen
			oldPos = oldEnd
			continue
		}

		childNew, childEscaped := child.mapInner(changes, oldAbsStart, newOffset+newPos, newLen)
		for _, ed := range childEscaped {
			abs := Decoration{From: ed.From + newPos, To: ed.To + newPos, Desc: ed.Desc}
			if abs.From >= 0 && abs.To <= length {
				newLocal = append(newLocal, abs)
			} else {
				escaped = append(escaped, abs)
			}
		}

		if childNew.Size == 0 && len(s.children) > 1 {
			if len(newChildren) > 0 {
				last := newChildren[len(newChildren)-1]
				newChildren[len(newChildren)-1] = growLength(last, childNew.Length)
			} else {
				// No preceding sibling to absorb the dropped coverage into;
				// keep the empty child rather than lose the length it
				// accounted for.
				newChildren = append(newChildren, childNew)
			}
		} else {
			newChildren = append(newChildren, childNew)
		}

		newPos += newLen
		oldPos = oldEnd
	}

	sort.SliceStable(newLocal, func(i, j int) bool { return decorationLess(newLocal[i], newLocal[j]) })

	size := len(newLocal)
	for _, c := range newChildren {
		size += c.Size
	}
	return &DecorationSet{Length: length, Size: size, local: newLocal, children: newChildren}, escaped
}
