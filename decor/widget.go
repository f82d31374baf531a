package decor

import "reflect"

// WidgetType is an opaque, user-supplied presentational handle attached to
// a point decoration or to a collapsed range decoration. The decoration
// set never inspects a widget's rendered form; it only ever compares
// widgets for structural equality and asks for a height estimate.
type WidgetType interface {
	// Eq reports whether other was built from an equivalent spec to the
	// receiver. Implementations should compare only the fields that
	// affect rendering, not incidental identity.
	Eq(other WidgetType) bool

	// EstimatedHeight returns the widget's expected screen height, or -1
	// if the widget cannot estimate its height before being measured.
	EstimatedHeight() float64
}

// SameWidget reports whether a and b are the same widget: identical
// values, or values of the same concrete type whose specs compare equal
// via Eq.
func SameWidget(a, b WidgetType) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.Eq(b)
}
