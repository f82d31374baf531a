package decor

import "testing"

func TestMapNoopWithEmptyChangeSet(t *testing.T) {
	set := Of([]Decoration{PointOf(3, PointDescriptor{})})
	if got := set.Map(nil); got != set {
		t.Errorf("Map(nil) did not return the same set")
	}
}

func TestMapShiftsPositionsAfterInsertion(t *testing.T) {
	set := Of([]Decoration{PointOf(10, PointDescriptor{})})
	cs := ChangeSet{testChange{from: 2, to: 2, insLen: 4}}

	mapped := set.Map(cs)
	got := Collect(mapped)
	if len(got) != 1 || got[0].From != 14 {
		t.Fatalf("Collect(mapped) = %+v, want a single decoration at 14", got)
	}
}

func TestMapSharesUntouchedSubtree(t *testing.T) {
	n := 200
	decs := make([]Decoration, n)
	for i := 0; i < n; i++ {
		decs[i] = PointOf(i*10, PointDescriptor{})
	}
	set := Of(decs)
	if len(set.children) < 2 {
		t.Fatalf("expected set of %d decorations to have multiple children", n)
	}

	// An edit inside the first child must leave later children shared.
	cs := ChangeSet{testChange{from: 1, to: 1, insLen: 1}}
	mapped := set.Map(cs)

	lastOld := set.children[len(set.children)-1]
	lastNew := mapped.children[len(mapped.children)-1]
	if lastOld != lastNew {
		t.Errorf("Map did not share the untouched last child")
	}
}

func TestMapDropsFullyDeletedDecorations(t *testing.T) {
	set := Of([]Decoration{PointOf(5, PointDescriptor{})})
	cs := ChangeSet{testChange{from: 2, to: 8, insLen: 0}}

	mapped := set.Map(cs)
	if mapped.Size != 0 {
		t.Errorf("Size = %d, want 0 after the only decoration was deleted", mapped.Size)
	}
}

func TestMapCollapsesToEmptyLeafOnFullDocumentDeletion(t *testing.T) {
	r, _ := RangeOf(2, 3, RangeDescriptor{})
	set := Of([]Decoration{PointOf(2, PointDescriptor{}), r})
	cs := ChangeSet{testChange{from: 0, to: set.Length, insLen: 0}}

	mapped := set.Map(cs)
	if mapped.Size != 0 || len(mapped.children) != 0 {
		t.Errorf("Map(full deletion) = %+v, want an empty leaf", mapped)
	}
	if mapped.Length != 0 {
		t.Errorf("Length = %d, want 0", mapped.Length)
	}
}
