// Package changelog is a reference PositionMapper: it records edits made
// to a rune buffer as decor.Change values, keeps an undo/redo history of
// them, and loads buffers from disk.
package changelog

import "github.com/rjkroege/deco/decor"

// Edit is a single insert/replace/delete against a rune buffer, expressed
// in the coordinates of the buffer before it was applied. It implements
// decor.Change.
type Edit struct {
	FromPos, ToPos int
	Inserted       []rune
}

// From implements decor.Change.
func (e Edit) From() int { return e.FromPos }

// To implements decor.Change.
func (e Edit) To() int { return e.ToPos }

// InsertedLength implements decor.Change.
func (e Edit) InsertedLength() int { return len(e.Inserted) }

// MapPos implements decor.Change.
func (e Edit) MapPos(pos, assoc int) int {
	switch {
	case pos < e.FromPos:
		return pos
	case pos > e.ToPos:
		return pos + e.InsertedLength() - (e.ToPos - e.FromPos)
	case assoc < 0:
		return e.FromPos
	default:
		return e.FromPos + e.InsertedLength()
	}
}

// AsChangeSet converts edits, in application order, into a decor.ChangeSet.
func AsChangeSet(edits []Edit) decor.ChangeSet {
	cs := make(decor.ChangeSet, len(edits))
	for i, e := range edits {
		cs[i] = e
	}
	return cs
}

// Apply returns buf with e applied.
func Apply(buf []rune, e Edit) []rune {
	out := make([]rune, 0, len(buf)-(e.ToPos-e.FromPos)+len(e.Inserted))
	out = append(out, buf[:e.FromPos]...)
	out = append(out, e.Inserted...)
	out = append(out, buf[e.ToPos:]...)
	return out
}
