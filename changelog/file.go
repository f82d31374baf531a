package changelog

import (
	"fmt"
	"io"
	"os"
)

// File is a loaded buffer plus enough disk metadata to detect changes made
// outside this process, the changelog analogue of edwood's DiskDetails
// combined with ObservableEditableBuffer.Load.
type File struct {
	Name string
	Text []rune

	hash Hash
}

// LoadFile reads path into a File, recording its content hash so a later
// Changed check can detect edits made outside this process.
func LoadFile(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("changelog: opening %s: %w", path, err)
	}
	defer fd.Close()

	data, err := io.ReadAll(fd)
	if err != nil {
		return nil, fmt.Errorf("changelog: reading %s: %w", path, err)
	}

	return &File{
		Name: path,
		Text: []rune(string(data)),
		hash: hashOf(data),
	}, nil
}

// Changed reports whether the file on disk has diverged from the digest
// recorded at load time.
func (f *File) Changed() (bool, error) {
	h, err := hashFile(f.Name)
	if err != nil {
		return false, fmt.Errorf("changelog: checking %s: %w", f.Name, err)
	}
	return !h.Eq(f.hash), nil
}
