// Package linelayout is a reference LineElementBuilder: it turns the
// advance/collapse/widget/range instructions decor.BuildLineElements
// produces into a headless element list, with no glyph measurement, so a
// caller can inspect a line's layout without a screen.
package linelayout

import "github.com/rjkroege/deco/decor"

// ElementKind classifies one piece of a laid-out line.
type ElementKind int

const (
	Text ElementKind = iota
	Collapsed
	Widget
)

// Element is one run or widget in a laid-out line. Classes lists the
// class names of every range decoration open across the whole run, in
// the order they were opened; two adjacent runs of the same Kind only
// coalesce into one Element when their Classes match, so a range that
// covers only part of a run still shows up as its own Element.
type Element struct {
	Kind    ElementKind
	Length  int
	Classes []string
	Widget  decor.WidgetType
	Side    int
}

// Builder accumulates the elements decor.BuildLineElements produces for
// one line, the tallest widget height it saw along the way, and the
// range decorations currently open at the builder's position.
type Builder struct {
	Elements []Element
	Active   []decor.RangeDescriptor
	height   float64
}

var _ decor.LineElementBuilder = (*Builder)(nil)

// Advance implements decor.LineElementBuilder.
func (b *Builder) Advance(length int) {
	b.appendRun(Text, length)
}

// AdvanceCollapsed implements decor.LineElementBuilder.
func (b *Builder) AdvanceCollapsed(length int) {
	b.appendRun(Collapsed, length)
}

func (b *Builder) appendRun(kind ElementKind, length int) {
	if length == 0 {
		return
	}
	classes := b.activeClasses()
	if n := len(b.Elements); n > 0 && b.Elements[n-1].Kind == kind && sameClasses(b.Elements[n-1].Classes, classes) {
		b.Elements[n-1].Length += length
		return
	}
	b.Elements = append(b.Elements, Element{Kind: kind, Length: length, Classes: classes})
}

// activeClasses returns the class names of every currently open range
// decoration that carries one, in open order.
func (b *Builder) activeClasses() []string {
	if len(b.Active) == 0 {
		return nil
	}
	var classes []string
	for _, r := range b.Active {
		if r.Class != "" {
			classes = append(classes, r.Class)
		}
	}
	return classes
}

func sameClasses(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AddWidget implements decor.LineElementBuilder.
func (b *Builder) AddWidget(widget decor.WidgetType, side int) {
	b.Elements = append(b.Elements, Element{Kind: Widget, Widget: widget, Side: side})
	if widget != nil {
		if h := widget.EstimatedHeight(); h > b.height {
			b.height = h
		}
	}
}

// OpenRange implements decor.LineElementBuilder.
func (b *Builder) OpenRange(desc decor.RangeDescriptor) {
	b.Active = append(b.Active, desc)
}

// CloseRange implements decor.LineElementBuilder.
func (b *Builder) CloseRange(desc decor.RangeDescriptor) {
	for i, r := range b.Active {
		if r.Eq(desc) {
			b.Active = append(b.Active[:i], b.Active[i+1:]...)
			return
		}
	}
}

// Height returns the tallest widget's estimated height seen so far, or 0
// if the line carries no widgets.
func (b *Builder) Height() float64 { return b.height }

// VisibleLength returns the number of runes the line displays, excluding
// anything a collapsed range hid.
func (b *Builder) VisibleLength() int {
	n := 0
	for _, e := range b.Elements {
		if e.Kind == Text {
			n += e.Length
		}
	}
	return n
}
