package decor

import (
	"sort"

	"github.com/rjkroege/deco/internal/util"
)

// MinRangeGap is the closeness threshold used to merge two reported ranges
// into one: ranges whose gap is no wider than this are joined rather than
// reported as separate redraw spans.
const MinRangeGap = 4

// ChangedRange marks one span, in the coordinates of both the old and new
// document, where a redraw is required after comparing two decoration
// sets.
type ChangedRange struct {
	FromOld, ToOld int
	FromNew, ToNew int
}

// Changes splits the ranges a comparison found into ranges whose
// displayed content differs and ranges where only line height could have
// changed, so a caller can skip a full content redraw when only heights
// moved.
type Changes struct {
	Content []ChangedRange
	Height  []ChangedRange
}

// DecorationSetComparison accumulates the changed ranges found while
// walking two decoration sets in lockstep. oldCollapsedTo/newCollapsedTo
// track the far edge of the last collapsed range opened on each side, so
// that a decoration difference lying entirely under a collapsed range
// already shared by both sides never surfaces as a redraw.
type DecorationSetComparison struct {
	minPointSize int
	content      []ChangedRange
	height       []ChangedRange

	oldCollapsedTo int
	newCollapsedTo int
}

// ChangedRanges compares oldSet against newSet and returns the minimal
// ranges a display layer must redraw. editedRanges are the raw text edits
// between the two revisions, in ascending old-document order; the edited
// span itself is never reported (the caller already knows the text there
// changed) — only the untouched gaps between and around the edits are
// compared for decoration differences. With no editedRanges, oldSet and
// newSet are assumed to share a document length and are compared directly.
func ChangedRanges(oldSet, newSet *DecorationSet, editedRanges []ChangedRange, minPointSize int) Changes {
	c := &DecorationSetComparison{minPointSize: minPointSize, oldCollapsedTo: -1, newCollapsedTo: -1}
	if len(editedRanges) == 0 {
		c.compareActiveSets(oldSet, newSet, 0, 0, oldSet.Length)
	} else {
		edits := append([]ChangedRange(nil), editedRanges...)
		sort.Slice(edits, func(i, j int) bool { return edits[i].FromOld < edits[j].FromOld })
		prevOld, prevNew := 0, 0
		for _, e := range edits {
			c.compareWindow(oldSet, newSet, prevOld, e.FromOld, prevNew, e.FromNew)
			prevOld, prevNew = e.ToOld, e.ToNew
		}
		c.compareWindow(oldSet, newSet, prevOld, oldSet.Length, prevNew, newSet.Length)
	}
	return Changes{
		Content: joinRanges(c.content),
		Height:  joinRanges(c.height),
	}
}

// compareActiveSets recurses into old and new in lockstep. Identical
// subtrees (the common case when most of the document is untouched by an
// edit) are skipped outright by pointer identity; children whose shapes
// still line up recurse pairwise; anything else falls back to a flattened
// array diff of the whole span.
func (c *DecorationSetComparison) compareActiveSets(old, new *DecorationSet, oldPos, newPos, length int) {
	if old == new {
		return
	}
	if old.Size == 0 && new.Size == 0 {
		return
	}
	if len(old.children) > 0 && sameShape(old.children, new.children) {
		c.compareLocalArrays(old.local, new.local, oldPos, newPos)
		pos := 0
		for i := range old.children {
			oc, nc := old.children[i], new.children[i]
			c.compareActiveSets(oc, nc, oldPos+pos, newPos+pos, oc.Length)
			pos = advancePos(pos, oc.Length)
		}
		return
	}
	c.compareLocalArrays(Collect(old), Collect(new), oldPos, newPos)
}

func sameShape(a, b []*DecorationSet) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Length != b[i].Length {
			return false
		}
	}
	return true
}

// advancePos returns pos advanced by length; a named step so the
// lockstep recursion in compareActiveSets reads the same way on both the
// old and new side.
func advancePos(pos, length int) int { return pos + length }

// compareWindow diffs the decorations visible in a gap between two text
// edits (or before the first / after the last): [fromOld, toOld) in the
// old document corresponds to [fromNew, toNew) in the new one. The window
// itself was not touched by an edit, so a decoration's offset relative to
// the window start is the same on both sides. decorationsIn walks each
// side with a cursor bounded to the window rather than flattening the
// whole tree, so this stays proportional to the window's size and the
// tree's depth even when the edit sits deep inside a large document.
func (c *DecorationSetComparison) compareWindow(oldSet, newSet *DecorationSet, fromOld, toOld, fromNew, toNew int) {
	if toOld <= fromOld && toNew <= fromNew {
		return
	}
	oldList := decorationsIn(oldSet, fromOld, toOld)
	newList := decorationsIn(newSet, fromNew, toNew)
	c.compareLocalArrays(oldList, newList, fromOld, fromNew)
}

// decorationsIn returns every decoration in s overlapping [from, to),
// clipped to that window and translated to be relative to from. It
// walks s with a cursor bounded below by from, so a window near the end
// of a large tree never pays for the subtrees that lie entirely before
// it, and stops the moment the cursor passes to.
func decorationsIn(s *DecorationSet, from, to int) []Decoration {
	if to <= from {
		return nil
	}
	var out []Decoration
	c := newBoundedSetCursor(s, from)
	for {
		d, ok := c.next()
		if !ok || d.From >= to {
			break
		}
		if d.To <= from {
			continue
		}
		out = append(out, Decoration{
			From: util.Max(d.From, from) - from,
			To:   util.Min(d.To, to) - from,
			Desc: d.Desc,
		})
	}
	return out
}

// compareLocalArrays walks two decoration lists, both sorted by (From,
// bias) and relative to oldPos/newPos, and records every position where
// they disagree.
func (c *DecorationSetComparison) compareLocalArrays(oldList, newList []Decoration, oldPos, newPos int) {
	i, j := 0, 0
	for i < len(oldList) || j < len(newList) {
		switch {
		case i >= len(oldList):
			c.recordAdded(newList[j], oldPos, newPos)
			j++
		case j >= len(newList):
			c.recordRemoved(oldList[i], oldPos, newPos)
			i++
		case oldList[i].From == newList[j].From && oldList[i].To == newList[j].To:
			c.recordMatched(oldList[i], newList[j], oldPos, newPos)
			i++
			j++
		case oldList[i].From <= newList[j].From:
			c.recordRemoved(oldList[i], oldPos, newPos)
			i++
		default:
			c.recordAdded(newList[j], oldPos, newPos)
			j++
		}
	}
}

func (c *DecorationSetComparison) recordAdded(d Decoration, oldPos, newPos int) {
	fromOld, toOld := d.From+oldPos, d.To+oldPos
	fromNew, toNew := d.From+newPos, d.To+newPos
	c.report(fromOld, toOld, fromNew, toNew, affectsHeight(d.Desc))
	c.trackCollapse(nil, 0, d.Desc, toNew)
}

func (c *DecorationSetComparison) recordRemoved(d Decoration, oldPos, newPos int) {
	fromOld, toOld := d.From+oldPos, d.To+oldPos
	fromNew, toNew := d.From+newPos, d.To+newPos
	c.report(fromOld, toOld, fromNew, toNew, affectsHeight(d.Desc))
	c.trackCollapse(d.Desc, toOld, nil, 0)
}

// recordMatched handles a decoration present at the same (From, To) on
// both sides: either it is truly unchanged, in which case it only feeds
// collapse bookkeeping, or its descriptor differs and the position is
// reported.
func (c *DecorationSetComparison) recordMatched(oldD, newD Decoration, oldPos, newPos int) {
	fromOld, toOld := oldD.From+oldPos, oldD.To+oldPos
	fromNew, toNew := newD.From+newPos, newD.To+newPos
	if !oldD.Desc.Eq(newD.Desc) {
		heightAffected := compareWidgetSets(oldD.Desc, newD.Desc) || collapsedChanged(oldD.Desc, newD.Desc)
		c.report(fromOld, toOld, fromNew, toNew, heightAffected)
	}
	c.trackCollapse(oldD.Desc, toOld, newD.Desc, toNew)
}

// trackCollapse updates the running collapsedTo watermark for whichever
// side(s) desc is present on and is a collapsed range. A nil desc (the
// decoration has no counterpart on that side) leaves that side untouched.
func (c *DecorationSetComparison) trackCollapse(oldDesc Descriptor, oldTo int, newDesc Descriptor, newTo int) {
	if r, ok := oldDesc.(RangeDescriptor); ok && r.Collapsed && oldTo > c.oldCollapsedTo {
		c.oldCollapsedTo = oldTo
	}
	if r, ok := newDesc.(RangeDescriptor); ok && r.Collapsed && newTo > c.newCollapsedTo {
		c.newCollapsedTo = newTo
	}
}

// report records a changed span, unless it falls entirely inside a
// collapsed range both sides already share: in that case the affected
// text is invisible on both revisions and a redraw would be wasted. When
// only one side is currently collapsed, the disagreement itself is
// reported as a height change instead of being suppressed.
func (c *DecorationSetComparison) report(fromOld, toOld, fromNew, toNew int, heightAffected bool) {
	oldHidden := c.oldCollapsedTo > fromOld
	newHidden := c.newCollapsedTo > fromNew
	switch {
	case oldHidden && newHidden:
		fromOld, fromNew = c.oldCollapsedTo, c.newCollapsedTo
		if fromOld >= toOld && fromNew >= toNew {
			return
		}
	case oldHidden != newHidden:
		heightAffected = true
	}
	if toOld-fromOld < c.minPointSize && toNew-fromNew < c.minPointSize {
		return
	}
	c.addRange(fromOld, toOld, fromNew, toNew, &c.content)
	if heightAffected {
		c.addRange(fromOld, toOld, fromNew, toNew, &c.height)
	}
}

func (c *DecorationSetComparison) addRange(fromOld, toOld, fromNew, toNew int, target *[]ChangedRange) {
	*target = append(*target, ChangedRange{FromOld: fromOld, ToOld: toOld, FromNew: fromNew, ToNew: toNew})
}

// compareWidgetSets reports whether the widget carried by two descriptors
// at the same position differs.
func compareWidgetSets(a, b Descriptor) bool {
	wa, wb := widgetOf(a), widgetOf(b)
	if wa == nil && wb == nil {
		return false
	}
	if wa == nil || wb == nil {
		return true
	}
	return !SameWidget(wa, wb)
}

func widgetOf(desc Descriptor) WidgetType {
	switch d := desc.(type) {
	case RangeDescriptor:
		return d.Widget
	case PointDescriptor:
		return d.Widget
	}
	return nil
}

func collapsedChanged(a, b Descriptor) bool {
	ra, aok := a.(RangeDescriptor)
	rb, bok := b.(RangeDescriptor)
	if aok != bok {
		return true
	}
	if !aok {
		return false
	}
	return ra.Collapsed != rb.Collapsed
}

func affectsHeight(desc Descriptor) bool {
	switch d := desc.(type) {
	case RangeDescriptor:
		return d.Collapsed || d.Widget != nil
	case PointDescriptor:
		return d.Widget != nil
	}
	return false
}

// joinRanges sorts ranges by old-document position and merges any pair
// whose gap, on both the old-document and new-document side, is no wider
// than MinRangeGap into a single span.
func joinRanges(ranges []ChangedRange) []ChangedRange {
	if len(ranges) == 0 {
		return nil
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].FromOld < ranges[j].FromOld })
	out := append([]ChangedRange(nil), ranges[0])
	for _, r := range ranges[1:] {
		last := &out[len(out)-1]
		if r.FromOld-last.ToOld <= MinRangeGap && r.FromNew-last.ToNew <= MinRangeGap {
			if r.ToOld > last.ToOld {
				last.ToOld = r.ToOld
			}
			if r.ToNew > last.ToNew {
				last.ToNew = r.ToNew
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
