package decor

// Change is a single primitive edit as exposed by an external change log
// (the "PositionMapper" collaborator). decor never looks inside an
// editor's own undo log; it only ever asks a Change to translate a
// position across itself.
//
// From and To are expressed in the coordinates of the document before
// this change was applied; InsertedLength is the rune length of the text
// that replaced [From, To).
type Change interface {
	From() int
	To() int
	InsertedLength() int

	// MapPos translates pos through this one change. pos is in the
	// coordinates the change was made against (inside a ChangeSet, after
	// every earlier change has been applied to it); a position before
	// From comes back unchanged. assoc is the bias used to disambiguate
	// a position that lands exactly on the edited span: negative keeps
	// pos before inserted text, positive keeps it after.
	MapPos(pos, assoc int) int
}

// ChangeSet is an ordered sequence of Changes describing one edit
// generation. Changes are consumed in order; each Change's MapPos is
// applied to the running position in turn, so a ChangeSet composes like
// a pipeline rather than describing simultaneous edits against one fixed
// coordinate space.
type ChangeSet []Change

// mapPos runs pos through every change in cs, left to right.
func mapPos(pos, assoc int, cs ChangeSet) int {
	for _, c := range cs {
		pos = c.MapPos(pos, assoc)
	}
	return pos
}

// trackPos behaves like mapPos but returns -1 as soon as pos falls
// strictly inside a region some change deletes ("track" mode for
// point decorations).
func trackPos(pos, assoc int, cs ChangeSet) int {
	for _, c := range cs {
		if c.From() < pos && c.To() > pos {
			return -1
		}
		pos = c.MapPos(pos, assoc)
	}
	return pos
}

// touchesChange reports whether any change in cs overlaps the old-document
// range [from, to]. A change that lies entirely before the range shifts
// the range by that change's length delta, so later comparisons stay in
// the correct evolving coordinate space.
func touchesChange(from, to int, cs ChangeSet) bool {
	for _, c := range cs {
		if c.To() >= from && c.From() <= to {
			return true
		}
		if c.To() < from {
			delta := c.InsertedLength() - (c.To() - c.From())
			from += delta
			to += delta
		}
	}
	return false
}
