package vector

import (
	"github.com/pkg/errors"
)

// View is a point-in-time read window over a vector's storage. It captures
// the storage reference and length at creation and does not track later
// appends or removals. Views are cheap values; copying one copies only the
// reference and the captured length.
type View[T any] struct {
	data   []T
	length int
}

// Len returns the snapshot length.
func (w View[T]) Len() int {
	return w.length
}

// Get returns the element at index idx within the snapshot.
func (w View[T]) Get(idx int) T {
	if idx < 0 || idx >= w.length {
		panic(errors.Wrapf(ErrIndexOutOfRange, "vector: view index %d with length %d", idx, w.length))
	}
	return w.data[idx]
}

// Iterate calls fn for each snapshot element in order, stopping at the first
// error. Every call restarts from index zero: the sequence is derived from
// positional access over the captured (storage, length) pair, not from cursor
// state shared across calls.
func (w View[T]) Iterate(fn func(elem T) error) error {
	for i := 0; i < w.length; i++ {
		if err := fn(w.data[i]); err != nil {
			return err
		}
	}
	return nil
}

// SizeHint implements Source.
func (w View[T]) SizeHint() (int, bool) {
	return w.length, true
}

// span exposes the snapshot range for same-kind block copies.
func (w View[T]) span() []T {
	return w.data[:w.length]
}
