package decor

import "github.com/rjkroege/deco/internal/util"

// LineElementBuilder receives the sequence of instructions produced by
// BuildLineElements as it walks decorations left to right across a span of
// the document: runs of plain content, runs hidden by a collapsed range,
// widgets to splice in at a position, and the opening and closing of range
// decorations that stay active across everything laid out between them.
type LineElementBuilder interface {
	// Advance moves the builder's position forward by length runes of
	// ordinary, visible content.
	Advance(length int)
	// AdvanceCollapsed moves the builder's position forward by length
	// runes that a collapsed range decoration hides from layout.
	AdvanceCollapsed(length int)
	// AddWidget inserts widget at the builder's current position. side
	// mirrors PointDescriptor.Side and breaks ties when several widgets
	// land on the same position.
	AddWidget(widget WidgetType, side int)
	// OpenRange adds desc to the builder's active set. It stays open,
	// affecting every run produced, until the matching CloseRange.
	OpenRange(desc RangeDescriptor)
	// CloseRange removes desc from the builder's active set.
	CloseRange(desc RangeDescriptor)
}

// activeRange tracks one currently open range decoration during a
// BuildLineElements walk.
type activeRange struct {
	desc RangeDescriptor
	to   int
}

// BuildLineElements walks every decoration across sets that falls in
// [from, to), in position order, feeding builder the advances, collapsed
// spans, widgets, and range open/close events needed to lay that span out.
// A range's own end is itself a boundary: builder.Advance and
// builder.AdvanceCollapsed are split at every position the active set
// changes, not only where another decoration happens to start, so a
// single range covering part of the span still produces a distinguishable
// open and close rather than being folded into one merged advance. A
// collapsed range that carries a Widget adds it, with side 0, where the
// range starts. When
// heightOnly is set, range decorations that neither collapse text nor
// carry a widget never open at all, since they cannot change the
// resulting line height.
func BuildLineElements(sets []*DecorationSet, from, to int, builder LineElementBuilder, heightOnly bool) {
	it := NewIteratedSet(sets)
	var active []activeRange
	pos := from

	// advanceThrough moves pos to target, stopping at every position in
	// between where the active set changes: a collapsed range's end
	// forces a break from AdvanceCollapsed back to Advance (or vice
	// versa), and any active range's end fires its CloseRange.
	advanceThrough := func(target int) {
		for pos < target {
			collapseTo := -1
			for _, a := range active {
				if a.desc.Collapsed && (collapseTo == -1 || a.to < collapseTo) {
					collapseTo = a.to
				}
			}
			var step int
			if collapseTo != -1 {
				step = util.Min(collapseTo, target)
				builder.AdvanceCollapsed(step - pos)
			} else {
				step = target
				for _, a := range active {
					if a.to < step {
						step = a.to
					}
				}
				builder.Advance(step - pos)
			}
			pos = step

			kept := active[:0]
			for _, a := range active {
				if a.to <= pos {
					builder.CloseRange(a.desc)
					continue
				}
				kept = append(kept, a)
			}
			active = kept
		}
	}

	openRange := func(desc RangeDescriptor, end int) {
		if end <= from {
			return
		}
		active = append(active, activeRange{desc: desc, to: end})
		builder.OpenRange(desc)
	}

	for {
		_, d, ok := it.Next()
		if !ok || d.From >= to {
			break
		}
		if d.To < from || (d.To == from && !d.IsPoint()) {
			continue
		}

		switch desc := d.Desc.(type) {
		case PointDescriptor:
			if desc.Widget == nil {
				continue
			}
			advanceThrough(util.Min(d.From, to))
			builder.AddWidget(desc.Widget, desc.Side)
		case RangeDescriptor:
			if heightOnly && desc.Widget == nil && !desc.Collapsed {
				continue
			}
			advanceThrough(util.Min(d.From, to))
			if desc.Collapsed && desc.Widget != nil {
				builder.AddWidget(desc.Widget, 0)
			}
			openRange(desc, d.To)
		}
	}
	advanceThrough(to)
}
