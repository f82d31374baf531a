package changelog

import (
	"testing"

	"github.com/rjkroege/deco/decor"
)

func TestEditMapPosBeforeAndAfter(t *testing.T) {
	e := Edit{FromPos: 5, ToPos: 5, Inserted: []rune("abc")}

	if got := e.MapPos(2, 1); got != 2 {
		t.Errorf("MapPos(2, +) = %d, want 2 (before the edit)", got)
	}
	if got := e.MapPos(10, 1); got != 13 {
		t.Errorf("MapPos(10, +) = %d, want 13 (shifted by 3)", got)
	}
	if got := e.MapPos(5, -1); got != 5 {
		t.Errorf("MapPos(5, -) = %d, want 5 (sticks before the insertion)", got)
	}
	if got := e.MapPos(5, 1); got != 8 {
		t.Errorf("MapPos(5, +) = %d, want 8 (sticks after the insertion)", got)
	}
}

func TestEditImplementsDecorChange(t *testing.T) {
	var _ decor.Change = Edit{}
}

func TestApplyInsertsAtPosition(t *testing.T) {
	buf := []rune("hello world")
	edit := Edit{FromPos: 5, ToPos: 5, Inserted: []rune(",")}

	got := string(Apply(buf, edit))
	if want := "hello, world"; got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestApplyReplacesRange(t *testing.T) {
	buf := []rune("hello world")
	edit := Edit{FromPos: 6, ToPos: 11, Inserted: []rune("there")}

	got := string(Apply(buf, edit))
	if want := "hello there"; got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestAsChangeSetPreservesOrder(t *testing.T) {
	edits := []Edit{
		{FromPos: 0, ToPos: 0, Inserted: []rune("a")},
		{FromPos: 5, ToPos: 6, Inserted: nil},
	}
	cs := AsChangeSet(edits)
	if len(cs) != 2 {
		t.Fatalf("AsChangeSet returned %d changes, want 2", len(cs))
	}
	if cs[0].From() != 0 || cs[1].From() != 5 {
		t.Errorf("AsChangeSet did not preserve order: %+v", cs)
	}
}
