package decor

// Decoration is an immutable (from, to, descriptor) annotation over a text
// buffer. A range decoration has From < To; a point decoration has
// From == To.
type Decoration struct {
	From, To int
	Desc     Descriptor
}

// RangeOf constructs a range decoration covering [from, to). It fails
// with ErrInvalidRange when from >= to.
func RangeOf(from, to int, desc RangeDescriptor) (Decoration, error) {
	if from >= to {
		return Decoration{}, ErrInvalidRange
	}
	return Decoration{From: from, To: to, Desc: desc}, nil
}

// PointOf constructs a point decoration at pos. Unlike RangeOf this never
// fails.
func PointOf(pos int, desc PointDescriptor) Decoration {
	return Decoration{From: pos, To: pos, Desc: desc}
}

// IsPoint reports whether d is a point decoration.
func (d Decoration) IsPoint() bool { return d.From == d.To }

// decorationLess is the (from, bias) total order local arrays are kept in.
func decorationLess(a, b Decoration) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	return a.Desc.bias() < b.Desc.bias()
}

// Map translates d through changes, treating d's positions as relative to
// oldOffset and returning positions relative to newOffset. It reports
// ok=false when the decoration does not survive: a range that collapsed to
// empty, or a point that fell strictly inside a deleted region.
func (d Decoration) Map(changes ChangeSet, oldOffset, newOffset int) (mapped Decoration, ok bool) {
	switch desc := d.Desc.(type) {
	case RangeDescriptor:
		from := mapPos(d.From+oldOffset, desc.StartBias(), changes)
		to := mapPos(d.To+oldOffset, desc.EndBias(), changes)
		if from >= to {
			return Decoration{}, false
		}
		return Decoration{From: from - newOffset, To: to - newOffset, Desc: desc}, true
	case PointDescriptor:
		pos := trackPos(d.From+oldOffset, desc.bias(), changes)
		if pos == -1 {
			return Decoration{}, false
		}
		return Decoration{From: pos - newOffset, To: pos - newOffset, Desc: desc}, true
	default:
		panic("decor: decoration has an unrecognized descriptor type")
	}
}
