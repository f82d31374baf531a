package sourcediff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/deco/decor"
)

func TestDiffFindsMiddleInsertion(t *testing.T) {
	old := []rune("hello world")
	new := []rune("hello there world")

	ranges := Diff(old, new)
	want := []decor.ChangedRange{{FromOld: 6, ToOld: 6, FromNew: 6, ToNew: 12}}
	if diff := cmp.Diff(want, ranges); diff != "" {
		t.Fatalf("Diff mismatch (-want +got):\n%s", diff)
	}
	if got := string(Inserted(new, ranges[0])); got != "there " {
		t.Errorf("Inserted = %q, want %q", got, "there ")
	}
}

func TestDiffFindsDeletion(t *testing.T) {
	old := []rune("hello there world")
	new := []rune("hello world")

	ranges := Diff(old, new)
	if len(ranges) != 1 {
		t.Fatalf("Diff returned %d ranges, want 1", len(ranges))
	}
	r := ranges[0]
	if got := string(old[r.FromOld:r.ToOld]); got != "there " {
		t.Errorf("deleted span = %q, want %q", got, "there ")
	}
	if r.FromNew != r.ToNew {
		t.Errorf("new range = [%d,%d), want an empty span", r.FromNew, r.ToNew)
	}
}

func TestDiffReturnsNilForIdenticalInput(t *testing.T) {
	text := []rune("no change here")
	if got := Diff(text, append([]rune(nil), text...)); got != nil {
		t.Errorf("Diff(identical) = %+v, want nil", got)
	}
}

func TestDiffWholeBufferReplaced(t *testing.T) {
	ranges := Diff([]rune("abc"), []rune("xyz"))
	if len(ranges) != 1 {
		t.Fatalf("Diff returned %d ranges, want 1", len(ranges))
	}
	r := ranges[0]
	if r.FromOld != 0 || r.ToOld != 3 || r.FromNew != 0 || r.ToNew != 3 {
		t.Errorf("range = %+v, want the whole buffer replaced", r)
	}
}
