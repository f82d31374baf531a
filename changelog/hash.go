package changelog

import (
	"bytes"
	"crypto/sha1"
	"io"
	"os"
)

// Hash is a content digest used to detect whether a file has changed on
// disk since it was loaded into a buffer.
type Hash [sha1.Size]byte

// Eq reports whether h and other are the same digest.
func (h Hash) Eq(other Hash) bool {
	return bytes.Equal(h[:], other[:])
}

// hashOf digests b.
func hashOf(b []byte) Hash {
	return sha1.Sum(b)
}

// hashFile digests the current contents of the file at path.
func hashFile(path string) (Hash, error) {
	fd, err := os.Open(path)
	if err != nil {
		return Hash{}, err
	}
	defer fd.Close()

	h := sha1.New()
	if _, err := io.Copy(h, fd); err != nil {
		return Hash{}, err
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out, nil
}
