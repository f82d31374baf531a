package linelayout

import "github.com/rjkroege/deco/decor"

// TextWidget is a widget whose presentation is a fixed line of
// replacement text, such as a folded region's placeholder, with a known
// estimated screen height.
type TextWidget struct {
	Text   string
	Height float64
}

var _ decor.WidgetType = TextWidget{}

// Eq implements decor.WidgetType.
func (w TextWidget) Eq(other decor.WidgetType) bool {
	o, ok := other.(TextWidget)
	return ok && o.Text == w.Text && o.Height == w.Height
}

// EstimatedHeight implements decor.WidgetType.
func (w TextWidget) EstimatedHeight() float64 { return w.Height }
