// Package decor implements a mappable, persistent set of position
// annotated decorations over a linear text buffer: an immutable balanced
// tree with node-local storage, sublinear update/filter, position
// remapping through editor changes, heap-driven ordered traversal for a
// line layout builder, and structural diffing between two revisions.
package decor

import (
	"sort"

	"github.com/rjkroege/deco/internal/util"
)

// BaseNodeSize is the target number of decorations a leaf holds before it
// is split into children.
const BaseNodeSize = 32

// baseNodeSizeShift controls how a node's child capacity grows with its
// total decoration count: childSize = max(BaseNodeSize, size>>shift).
const baseNodeSizeShift = 5

// DecorationSet is an immutable tree node. It stores Length (the text
// length its subtree covers) and Size (its subtree's total decoration
// count), a sorted local array of decorations that either belong to this
// node or straddle a child boundary, and an ordered list of child
// subtrees. DecorationSet values are never mutated after construction;
// every operation returns a new tree, sharing untouched subtrees with
// its input.
type DecorationSet struct {
	Length int
	Size   int

	local    []Decoration
	children []*DecorationSet
}

// Empty is the sentinel empty set.
var Empty = &DecorationSet{}

// FilterFunc decides, for update's filter window, whether a decoration
// already in the set should be kept. It is only ever called for
// decorations that fall inside the filter window; decorations outside the
// window are kept unconditionally.
type FilterFunc func(from, to int, desc Descriptor) bool

func alwaysKeep(int, int, Descriptor) bool { return true }

type updateConfig struct {
	add         []Decoration
	filter      FilterFunc
	filterFrom  int
	filterTo    int
	hasFilterTo bool
}

// UpdateOption configures a call to DecorationSet.Update.
type UpdateOption func(*updateConfig)

// WithAdd supplies decorations to add. They need not be pre-sorted.
func WithAdd(add []Decoration) UpdateOption {
	return func(c *updateConfig) { c.add = add }
}

// WithFilter supplies the predicate deciding which existing decorations
// inside the filter window survive. Decorations outside the window are
// always kept.
func WithFilter(f FilterFunc) UpdateOption {
	return func(c *updateConfig) { c.filter = f }
}

// WithFilterRange restricts filtering to [from, to]; decorations outside
// this window are never dropped. Without this option the window defaults
// to the whole set.
func WithFilterRange(from, to int) UpdateOption {
	return func(c *updateConfig) {
		c.filterFrom = from
		c.filterTo = to
		c.hasFilterTo = true
	}
}

// Of builds a fresh set from decorations, equivalent to
// Empty.Update(WithAdd(decorations)).
func Of(decorations []Decoration) *DecorationSet {
	return Empty.Update(WithAdd(decorations))
}

// Update returns a new set with newDecorations added and, within the
// filter window, every decoration for which filter returns false removed.
// Subtrees the update does not touch are shared with the receiver.
func (s *DecorationSet) Update(opts ...UpdateOption) *DecorationSet {
	cfg := updateConfig{filterTo: -1}
	for _, o := range opts {
		o(&cfg)
	}
	filter := cfg.filter
	if filter == nil {
		filter = alwaysKeep
	}
	filterTo := cfg.filterTo
	if !cfg.hasFilterTo {
		filterTo = s.Length
	}

	add := append([]Decoration(nil), cfg.add...)
	sort.SliceStable(add, func(i, j int) bool { return decorationLess(add[i], add[j]) })

	length := s.Length
	for _, d := range add {
		if d.To > length {
			length = d.To
		}
	}

	return s.updateInner(add, filter, cfg.filterFrom, filterTo, length)
}

// updateInner is the recursive worker behind Update.
// add is sorted and relative to this node's offset; length is this node's
// new Length (equal to s.Length except possibly at the root).
func (s *DecorationSet) updateInner(add []Decoration, filter FilterFunc, filterFrom, filterTo, length int) *DecorationSet {
	// Step 1: filter locals.
	localChanged := false
	var newLocal []Decoration
	for i, d := range s.local {
		keep := filterFrom > d.To || filterTo < d.From
		if !keep {
			keep = filter(d.From, d.To, d.Desc)
		}
		if keep {
			if localChanged {
				newLocal = append(newLocal, d)
			}
		} else if !localChanged {
			localChanged = true
			newLocal = append(newLocal, s.local[:i]...)
		}
	}
	if !localChanged {
		newLocal = s.local
	}

	// Step 2: distribute additions to children.
	newChildren := make([]*DecorationSet, 0, len(s.children))
	childrenChanged := false
	sizeChildren := 0
	pos := 0
	ai := 0
	for _, child := range s.children {
		end := pos + child.Length
		var bucket []Decoration
		j := ai
		for j < len(add) && add[j].From < end {
			d := add[j]
			if d.To > end {
				if !localChanged {
					localChanged = true
					newLocal = append([]Decoration(nil), s.local...)
				}
				newLocal = append(newLocal, d)
			} else {
				bucket = append(bucket, Decoration{From: d.From - pos, To: d.To - pos, Desc: d.Desc})
			}
			j++
		}
		ai = j

		var newChild *DecorationSet
		if len(bucket) > 0 || (filterFrom <= end && filterTo >= pos) {
			cf := filter
			cfFrom := util.Clamp(filterFrom-pos, 0, child.Length)
			cfTo := util.Clamp(filterTo-pos, 0, child.Length)
			newChild = child.updateInner(bucket, cf, cfFrom, cfTo, child.Length)
		} else {
			newChild = child
		}
		if newChild != child {
			childrenChanged = true
		}
		newChildren = append(newChildren, newChild)
		sizeChildren += newChild.Size
		pos = end
	}
	trailing := add[ai:]

	if !localChanged && !childrenChanged && len(trailing) == 0 {
		return s
	}

	currentLocal := newLocal
	totalSize := len(currentLocal) + sizeChildren + len(trailing)

	// Step 5: small-node collapse.
	if totalSize <= BaseNodeSize {
		out := append([]Decoration(nil), currentLocal...)
		childPos := 0
		for _, c := range newChildren {
			out = c.collectInto(out, childPos)
			childPos += c.Length
		}
		out = append(out, trailing...)
		sort.SliceStable(out, func(i, j int) bool { return decorationLess(out[i], out[j]) })
		return &DecorationSet{Length: length, Size: totalSize, local: out}
	}

	// Step 6: large-node path, group trailing additions into new children.
	childSize := util.Max(BaseNodeSize, totalSize>>baseNodeSizeShift)
	if len(trailing) > 0 {
		groupStart := pos
		idx := 0
		for idx < len(trailing) {
			limit := idx + childSize
			if limit > len(trailing) {
				limit = len(trailing)
			}
			groupEnd := trailing[limit-1].To
			var group []Decoration
			j := idx
			for j < len(trailing) && (j < limit || trailing[j].From < groupEnd) {
				d := trailing[j]
				if d.To > groupEnd {
					currentLocal = append(currentLocal, d)
				} else {
					group = append(group, Decoration{From: d.From - groupStart, To: d.To - groupStart, Desc: d.Desc})
				}
				j++
			}
			idx = j
			if len(group) == 0 {
				continue
			}
			childLen := groupEnd - groupStart
			newChild := Empty.updateInner(group, alwaysKeep, 0, 0, childLen)
			newChildren = append(newChildren, newChild)
			groupStart = groupEnd
		}
	}

	// Step 7: rebalance.
	finalLocal, finalChildren := rebalanceChildren(currentLocal, newChildren, childSize)
	if !sort.SliceIsSorted(finalLocal, func(i, j int) bool { return decorationLess(finalLocal[i], finalLocal[j]) }) {
		finalLocal = append([]Decoration(nil), finalLocal...)
		sort.SliceStable(finalLocal, func(i, j int) bool { return decorationLess(finalLocal[i], finalLocal[j]) })
	}
	finalSize := len(finalLocal)
	for _, c := range finalChildren {
		finalSize += c.Size
	}
	return &DecorationSet{Length: length, Size: finalSize, local: finalLocal, children: finalChildren}
}

// collectInto appends every decoration in s to out, translating positions
// by offset. It is used both by the small-node flatten path and by the
// public Collect function.
func (s *DecorationSet) collectInto(out []Decoration, offset int) []Decoration {
	for _, d := range s.local {
		out = append(out, Decoration{From: d.From + offset, To: d.To + offset, Desc: d.Desc})
	}
	pos := offset
	for _, c := range s.children {
		out = c.collectInto(out, pos)
		pos += c.Length
	}
	return out
}

// Collect returns every decoration in s, in ascending (From, bias) order.
func Collect(s *DecorationSet) []Decoration {
	out := make([]Decoration, 0, s.Size)
	out = s.collectInto(out, 0)
	sort.SliceStable(out, func(i, j int) bool { return decorationLess(out[i], out[j]) })
	return out
}
