package vector

// Source is a finite producer of elements that a Vector can consume.
type Source[T any] interface {
	// SizeHint returns the number of elements and whether that number is
	// known up front.
	SizeHint() (int, bool)

	// Iterate calls fn for each element in production order, stopping at the
	// first error. Implementations must be restartable: every call produces
	// the elements from the start.
	Iterate(fn func(elem T) error) error
}

// spanner is the capability query for sources whose elements live in one
// contiguous block, enabling single block-copy transfers.
type spanner[T any] interface {
	span() []T
}

// SliceSource adapts a slice to the Source interface without copying.
// The slice must not be mutated while the source is in use.
type SliceSource[T any] []T

// SizeHint implements Source.
func (s SliceSource[T]) SizeHint() (int, bool) {
	return len(s), true
}

// Iterate implements Source.
func (s SliceSource[T]) Iterate(fn func(elem T) error) error {
	for _, elem := range s {
		if err := fn(elem); err != nil {
			return err
		}
	}
	return nil
}

func (s SliceSource[T]) span() []T {
	return s
}

// IterSource adapts a restartable production function to a Source of unknown
// size. Consumers fall back to one-at-a-time appends.
type IterSource[T any] func(fn func(elem T) error) error

// SizeHint implements Source.
func (s IterSource[T]) SizeHint() (int, bool) {
	return 0, false
}

// Iterate implements Source.
func (s IterSource[T]) Iterate(fn func(elem T) error) error {
	return s(fn)
}

// FromSource builds a Vector from any Source. Known-size sources are
// allocated exactly once with no doubling; unknown-size sources start from a
// default-constructed vector and append.
func FromSource[T any](src Source[T]) (*Vector[T], error) {
	var v *Vector[T]
	if size, known := src.SizeHint(); known {
		v = WithCapacity[T](size)
	} else {
		v = New[T]()
	}
	if err := v.AppendAll(src); err != nil {
		return nil, err
	}
	return v, nil
}
