package decor

import "errors"

// ErrInvalidRange is returned by RangeOf when from >= to: a range
// decoration must cover at least one position.
var ErrInvalidRange = errors.New("decor: invalid range, from must be less than to")
