package changelog

import "testing"

func TestLogUndoRedoRoundTrip(t *testing.T) {
	buf := []rune("hello world")
	var l Log

	edit := Edit{FromPos: 5, ToPos: 11, Inserted: []rune(" there")}
	l.Record(buf, edit)
	l.Commit()
	buf = Apply(buf, edit)

	if want := "hello there"; string(buf) != want {
		t.Fatalf("buffer after edit = %q, want %q", buf, want)
	}

	if !l.CanUndo() {
		t.Fatalf("CanUndo() = false after a committed edit")
	}

	inverse, err := l.Undo()
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	for _, e := range inverse {
		buf = Apply(buf, e)
	}
	if want := "hello world"; string(buf) != want {
		t.Errorf("buffer after undo = %q, want %q", buf, want)
	}

	if !l.CanRedo() {
		t.Fatalf("CanRedo() = false after an undo")
	}
	redo, err := l.Redo()
	if err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	for _, e := range redo {
		buf = Apply(buf, e)
	}
	if want := "hello there"; string(buf) != want {
		t.Errorf("buffer after redo = %q, want %q", buf, want)
	}
}

func TestLogUndoOnEmptyHistoryFails(t *testing.T) {
	var l Log
	if _, err := l.Undo(); err != ErrNothingToUndo {
		t.Errorf("Undo() on an empty log error = %v, want ErrNothingToUndo", err)
	}
}

func TestLogRedoClearedByNewEdit(t *testing.T) {
	buf := []rune("abc")
	var l Log

	l.Record(buf, Edit{FromPos: 0, ToPos: 1, Inserted: []rune("x")})
	l.Commit()
	if _, err := l.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if !l.CanRedo() {
		t.Fatalf("CanRedo() = false after an undo")
	}

	l.Record(buf, Edit{FromPos: 1, ToPos: 2, Inserted: []rune("y")})
	l.Commit()
	if l.CanRedo() {
		t.Errorf("CanRedo() = true after committing a new edit, want the redo branch cleared")
	}
}
