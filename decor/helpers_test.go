package decor

// testChange is a minimal decor.Change used across the package's tests:
// an insertion/replacement/deletion of insLen runes over [from, to).
type testChange struct {
	from, to, insLen int
}

func (c testChange) From() int           { return c.from }
func (c testChange) To() int             { return c.to }
func (c testChange) InsertedLength() int { return c.insLen }

func (c testChange) MapPos(pos, assoc int) int {
	switch {
	case pos < c.from:
		return pos
	case pos > c.to:
		return pos + c.insLen - (c.to - c.from)
	case assoc < 0:
		return c.from
	default:
		return c.from + c.insLen
	}
}

// testWidget is a minimal decor.WidgetType used by tests that need a
// widget but don't care about its presentation.
type testWidget struct {
	h float64
}

func (w testWidget) Eq(other WidgetType) bool {
	o, ok := other.(testWidget)
	return ok && o.h == w.h
}

func (w testWidget) EstimatedHeight() float64 { return w.h }

func treeDepth(s *DecorationSet) int {
	if len(s.children) == 0 {
		return 1
	}
	max := 0
	for _, c := range s.children {
		if d := treeDepth(c); d > max {
			max = d
		}
	}
	return max + 1
}

func leafSizes(s *DecorationSet, out *[]int) {
	if len(s.children) == 0 {
		*out = append(*out, s.Size)
		return
	}
	for _, c := range s.children {
		leafSizes(c, out)
	}
}
