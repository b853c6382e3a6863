package vector

import "errors"

// ErrIndexOutOfRange is the panic cause when an index or range argument falls
// outside the valid bounds. The panic value matches it via errors.Is.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrCapacityExceeded is the panic cause when the growth policy cannot produce
// a capacity large enough to satisfy a request.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// errSizeHintMismatch reports a Source that produced a different number of
// elements than its size hint promised.
var errSizeHintMismatch = errors.New("source size hint does not match its element count")
