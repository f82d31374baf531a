package decor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOfSortsAndCollects(t *testing.T) {
	a := PointOf(20, PointDescriptor{})
	b := PointOf(5, PointDescriptor{})
	c := PointOf(10, PointDescriptor{})
	set := Of([]Decoration{a, b, c})

	want := []Decoration{b, c, a}
	if diff := cmp.Diff(want, Collect(set)); diff != "" {
		t.Errorf("Collect() mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateAdd(t *testing.T) {
	set := Of([]Decoration{PointOf(1, PointDescriptor{})})
	set2 := set.Update(WithAdd([]Decoration{PointOf(2, PointDescriptor{})}))

	if set2.Size != 2 {
		t.Fatalf("Size = %d, want 2", set2.Size)
	}
	if set.Size != 1 {
		t.Errorf("original set mutated: Size = %d, want 1", set.Size)
	}
}

func TestUpdateFilterRemoves(t *testing.T) {
	d, _ := RangeOf(2, 5, RangeDescriptor{Class: "drop-me"})
	keep, _ := RangeOf(10, 12, RangeDescriptor{Class: "keep-me"})
	set := Of([]Decoration{d, keep})

	filtered := set.Update(WithFilter(func(from, to int, desc Descriptor) bool {
		rd, ok := desc.(RangeDescriptor)
		return !ok || rd.Class != "drop-me"
	}))

	got := Collect(filtered)
	if len(got) != 1 {
		t.Fatalf("Collect returned %d decorations, want 1", len(got))
	}
	if rd, ok := got[0].Desc.(RangeDescriptor); !ok || rd.Class != "keep-me" {
		t.Errorf("surviving decoration = %+v, want keep-me", got[0])
	}
}

func TestUpdateFilterRangeLimitsWindow(t *testing.T) {
	d, _ := RangeOf(2, 5, RangeDescriptor{Class: "a"})
	set := Of([]Decoration{d})

	// The filter always says "drop", but the window excludes [2,5), so
	// nothing should be removed.
	filtered := set.Update(WithFilter(func(int, int, Descriptor) bool { return false }), WithFilterRange(10, 20))

	if got := len(Collect(filtered)); got != 1 {
		t.Errorf("Collect returned %d decorations, want 1 (filter window should not apply)", got)
	}
}

func TestUpdateNoopSharesIdentity(t *testing.T) {
	d, _ := RangeOf(2, 5, RangeDescriptor{Class: "a"})
	set := Of([]Decoration{d})

	got := set.Update()
	if got != set {
		t.Errorf("Update() with no options returned a different pointer, want the same set shared")
	}

	got2 := set.Update(WithFilter(func(int, int, Descriptor) bool { return true }))
	if got2 != set {
		t.Errorf("Update(always-keep filter) returned a different pointer, want the same set shared")
	}
}

func TestUpdateSharesUntouchedChild(t *testing.T) {
	n := 200
	decs := make([]Decoration, n)
	for i := 0; i < n; i++ {
		decs[i] = PointOf(i*10, PointDescriptor{})
	}
	set := Of(decs)
	if len(set.children) == 0 {
		t.Fatalf("expected set of %d decorations to have split into children", n)
	}

	// Filter only the first child's window; later children must be shared.
	firstChildEnd := set.children[0].Length
	updated := set.Update(WithFilter(func(int, int, Descriptor) bool { return false }), WithFilterRange(0, firstChildEnd/2))

	lastOld := set.children[len(set.children)-1]
	lastNew := updated.children[len(updated.children)-1]
	if lastOld != lastNew {
		t.Errorf("last child was not shared across an update confined to the first child")
	}
}

func TestLargeSetStaysBalanced(t *testing.T) {
	n := 5000
	decs := make([]Decoration, n)
	for i := 0; i < n; i++ {
		decs[i] = PointOf(i*10, PointDescriptor{})
	}
	set := Of(decs)

	if got := len(Collect(set)); got != n {
		t.Fatalf("Collect returned %d decorations, want %d", got, n)
	}

	if d := treeDepth(set); d >= 4 {
		t.Errorf("tree depth = %d, want < 4", d)
	}

	var sizes []int
	leafSizes(set, &sizes)
	total, max := 0, 0
	for _, s := range sizes {
		total += s
		if s > max {
			max = s
		}
	}
	if max > 64 {
		t.Errorf("max leaf size = %d, want <= 64", max)
	}
	if avg := float64(total) / float64(len(sizes)); avg <= 24 {
		t.Errorf("avg leaf size = %.1f, want > 24", avg)
	}
}
