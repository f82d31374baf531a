// Package sourcediff is a reference structural differ between two
// revisions of a rune buffer: it trims the common leading and trailing
// runs and reports whatever is left as a single decor.ChangedRange, the
// shape decor.ChangedRanges takes for its edited ranges.
package sourcediff

import "github.com/rjkroege/deco/decor"

// Diff compares oldRunes against newRunes and reports the span where they
// differ. It never reports more than one range: callers that need a
// finer-grained diff (say, to preserve unrelated decorations inside a
// large multi-edit paste) should track their edits directly instead of
// diffing the resulting buffers.
func Diff(oldRunes, newRunes []rune) []decor.ChangedRange {
	prefix := commonPrefix(oldRunes, newRunes)
	suffix := commonSuffix(oldRunes[prefix:], newRunes[prefix:])

	fromOld, toOld := prefix, len(oldRunes)-suffix
	fromNew, toNew := prefix, len(newRunes)-suffix

	if fromOld == toOld && fromNew == toNew {
		return nil
	}
	return []decor.ChangedRange{{FromOld: fromOld, ToOld: toOld, FromNew: fromNew, ToNew: toNew}}
}

// Inserted returns the new content of a changed range Diff found, ready to
// splice into oldRunes at [r.FromOld, r.ToOld).
func Inserted(newRunes []rune, r decor.ChangedRange) []rune {
	return newRunes[r.FromNew:r.ToNew]
}

func commonPrefix(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func commonSuffix(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}
