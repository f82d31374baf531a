package decor

// Bias is the magnitude used for a range decoration's start/end bias so
// that it dominates a point decoration's Side (-1, 0, 1) when both are
// sorted by (from, bias) at the same position.
const Bias = 2_000_000_000

// Descriptor is the polymorphic rendering/behavior spec attached to a
// Decoration. It is implemented by RangeDescriptor and PointDescriptor.
type Descriptor interface {
	// bias is the value used to order a decoration among others that
	// start at the same position.
	bias() int

	// Eq reports whether other describes an equivalent decoration:
	// same tag, class, collapsed-widget, and attribute set.
	Eq(other Descriptor) bool

	isDescriptor()
}

// RangeDescriptor styles a span of text from a decoration's From up to
// (but not including) its To.
type RangeDescriptor struct {
	// InclusiveStart makes the range's start position stick to text
	// inserted exactly at From (the range grows to the left).
	InclusiveStart bool
	// InclusiveEnd makes the range's end position stick to text inserted
	// exactly at To (the range grows to the right).
	InclusiveEnd bool

	Attributes     map[string]string
	Class          string
	TagName        string
	LineAttributes map[string]string

	// Collapsed hides the range's text from rendering. When true, Widget
	// may supply a replacement presentational element; a nil Widget means
	// the range is hidden with nothing shown in its place.
	Collapsed bool
	Widget    WidgetType
}

// StartBias returns the bias used when mapping the range's From position:
// -Bias (sticks left, growing the range) if InclusiveStart, else +Bias.
func (r RangeDescriptor) StartBias() int {
	if r.InclusiveStart {
		return -Bias
	}
	return Bias
}

// EndBias returns the bias used when mapping the range's To position:
// +Bias (sticks right, growing the range) if InclusiveEnd, else -Bias.
func (r RangeDescriptor) EndBias() int {
	if r.InclusiveEnd {
		return Bias
	}
	return -Bias
}

// AffectsSpans reports whether the range changes how its covered text is
// rendered (as opposed to only carrying line-level attributes).
func (r RangeDescriptor) AffectsSpans() bool {
	return len(r.Attributes) > 0 || r.TagName != "" || r.Class != "" || r.Collapsed
}

func (r RangeDescriptor) bias() int { return r.StartBias() }

func (RangeDescriptor) isDescriptor() {}

// Eq implements Descriptor.
func (r RangeDescriptor) Eq(other Descriptor) bool {
	o, ok := other.(RangeDescriptor)
	if !ok {
		return false
	}
	if r.TagName != o.TagName || r.Class != o.Class || r.Collapsed != o.Collapsed {
		return false
	}
	if r.InclusiveStart != o.InclusiveStart || r.InclusiveEnd != o.InclusiveEnd {
		return false
	}
	if r.Collapsed && !SameWidget(r.Widget, o.Widget) {
		return false
	}
	return stringMapEqual(r.Attributes, o.Attributes) && stringMapEqual(r.LineAttributes, o.LineAttributes)
}

// PointDescriptor decorates a single position with either a widget or
// line-level attributes.
type PointDescriptor struct {
	// Side controls which side of an insertion at this position the
	// point sticks to: negative stays before, positive stays after,
	// zero is neutral (edwood callers use this the way rich.Style spans
	// pin a glyph to one edge of an edit).
	Side           int
	Widget         WidgetType
	LineAttributes map[string]string
}

func (p PointDescriptor) bias() int { return p.Side }

func (PointDescriptor) isDescriptor() {}

// Eq implements Descriptor.
func (p PointDescriptor) Eq(other Descriptor) bool {
	o, ok := other.(PointDescriptor)
	if !ok {
		return false
	}
	if p.Side != o.Side {
		return false
	}
	if !SameWidget(p.Widget, o.Widget) {
		return false
	}
	return stringMapEqual(p.LineAttributes, o.LineAttributes)
}

func stringMapEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
