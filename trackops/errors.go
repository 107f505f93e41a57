package trackops

import "errors"

// ErrInvalidSplitPosition indicates a non-integer split position, or one
// that does not land strictly inside (0, length) of the edge being split.
var ErrInvalidSplitPosition = errors.New("trackops: split position must be strictly inside the edge")
