package changelog

import "errors"

// ErrNothingToUndo and ErrNothingToRedo report an exhausted history.
var (
	ErrNothingToUndo = errors.New("changelog: nothing to undo")
	ErrNothingToRedo = errors.New("changelog: nothing to redo")
)

// group is one committed batch of edits: everything recorded between two
// Commit calls undoes and redoes together, the changelog analogue of an
// action in edwood's file/undo.go, flattened from a piece table to plain
// edit lists.
type group struct {
	edits   []Edit
	inverse []Edit
}

// Log is an undo/redo history of edit groups applied to a rune buffer.
type Log struct {
	groups  []group
	head    int
	current *group
}

// Record adds edit to the in-progress group, computing its inverse from
// buf (the buffer's content before edit is applied).
func (l *Log) Record(buf []rune, edit Edit) {
	if l.current == nil {
		l.current = &group{}
	}
	inverse := Edit{
		FromPos:  edit.FromPos,
		ToPos:    edit.FromPos + len(edit.Inserted),
		Inserted: append([]rune(nil), buf[edit.FromPos:edit.ToPos]...),
	}
	l.current.edits = append(l.current.edits, edit)
	l.current.inverse = append([]Edit{inverse}, l.current.inverse...)
}

// Commit closes the in-progress group, making it undoable. A no-op if
// nothing has been recorded since the last Commit.
func (l *Log) Commit() {
	if l.current == nil || len(l.current.edits) == 0 {
		l.current = nil
		return
	}
	l.groups = append(l.groups[:l.head], *l.current)
	l.head++
	l.current = nil
}

// Undo returns the edits, in application order, that revert the most
// recently committed group.
func (l *Log) Undo() ([]Edit, error) {
	if l.head == 0 {
		return nil, ErrNothingToUndo
	}
	l.head--
	return l.groups[l.head].inverse, nil
}

// Redo returns the edits that re-apply the most recently undone group.
func (l *Log) Redo() ([]Edit, error) {
	if l.head >= len(l.groups) {
		return nil, ErrNothingToRedo
	}
	edits := l.groups[l.head].edits
	l.head++
	return edits, nil
}

// CanUndo reports whether Undo would succeed.
func (l *Log) CanUndo() bool { return l.head > 0 }

// CanRedo reports whether Redo would succeed.
func (l *Log) CanRedo() bool { return l.head < len(l.groups) }
