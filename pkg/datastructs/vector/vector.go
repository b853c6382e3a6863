package vector

import (
	"github.com/pkg/errors"
)

// Vector is a contiguous growable sequence with O(1) indexed access and
// amortized O(1) append. Insert and remove at arbitrary positions shift the
// tail with a single overlap-safe block copy.
//
// Index and capacity contract violations panic; the panic value matches
// ErrIndexOutOfRange or ErrCapacityExceeded via errors.Is and is raised
// before any mutation takes place.
// It is NOT thread-safe.
type Vector[T any] struct {
	data   []T // backing storage, len(data) is the physical capacity
	length int // number of live elements, always <= len(data)
}

// New creates an empty Vector with the default initial capacity.
func New[T any]() *Vector[T] {
	return &Vector[T]{data: make([]T, defaultCapacity)}
}

// WithCapacity creates an empty Vector pre-sized to exactly the given
// capacity, skipping the doubling overhead when the final size is known up
// front. A negative capacity is treated as zero.
func WithCapacity[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vector[T]{data: make([]T, capacity)}
}

// FromSlice creates a Vector holding a copy of elems, pre-sized exactly.
func FromSlice[T any](elems []T) *Vector[T] {
	v := WithCapacity[T](len(elems))
	copy(v.data, elems)
	v.length = len(elems)
	return v
}

// Of creates a Vector holding the given elements, pre-sized exactly.
func Of[T any](elems ...T) *Vector[T] {
	return FromSlice(elems)
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the physical capacity of the backing storage.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.length == 0
}

// Get returns the element at index idx.
func (v *Vector[T]) Get(idx int) T {
	v.checkIndex(idx)
	return v.data[idx]
}

// Set overwrites the element at index idx.
func (v *Vector[T]) Set(idx int, elem T) {
	v.checkIndex(idx)
	v.data[idx] = elem
}

// Append adds elem at the tail, growing storage as needed.
func (v *Vector[T]) Append(elem T) {
	v.grow(1)
	v.data[v.length] = elem
	v.length++
}

// AppendAll appends every element of src in iteration order. Sources exposing
// contiguous storage (vectors, views, slice sources) are transferred with a
// single block copy; everything else is appended one element at a time.
func (v *Vector[T]) AppendAll(src Source[T]) error {
	if s, ok := src.(spanner[T]); ok {
		v.grow(len(s.span()))
		elems := s.span()
		copy(v.data[v.length:], elems)
		v.length += len(elems)
		return nil
	}

	err := src.Iterate(func(elem T) error {
		v.Append(elem)
		return nil
	})
	return errors.Wrap(err, "vector: draining source")
}

// Insert places elem at index idx, shifting [idx, Len) one slot right.
// idx == Len appends.
func (v *Vector[T]) Insert(idx int, elem T) {
	v.checkInsertIndex(idx)
	v.grow(1)
	copy(v.data[idx+1:v.length+1], v.data[idx:v.length])
	v.data[idx] = elem
	v.length++
}

// InsertAll places every element of src at index idx, shifting [idx, Len)
// right by the source size. Sources of unknown size are materialized into a
// temporary vector first. On a source error the shift is undone and the
// vector is left unchanged.
func (v *Vector[T]) InsertAll(idx int, src Source[T]) error {
	v.checkInsertIndex(idx)

	k, known := src.SizeHint()
	if !known {
		tmp, err := FromSource(src)
		if err != nil {
			return err
		}
		return v.InsertAll(idx, tmp)
	}
	if k <= 0 {
		return nil
	}

	v.grow(k)
	copy(v.data[idx+k:v.length+k], v.data[idx:v.length])

	if s, ok := src.(spanner[T]); ok {
		copy(v.data[idx:idx+k], s.span())
		v.length += k
		return nil
	}

	i := idx
	err := src.Iterate(func(elem T) error {
		if i == idx+k {
			return errSizeHintMismatch
		}
		v.data[i] = elem
		i++
		return nil
	})
	if err == nil && i < idx+k {
		err = errSizeHintMismatch
	}
	if err != nil {
		copy(v.data[idx:v.length], v.data[idx+k:v.length+k])
		clearRange(v.data, v.length, v.length+k)
		return errors.Wrap(err, "vector: draining source")
	}

	v.length += k
	return nil
}

// Remove deletes and returns the element at idx, shifting [idx+1, Len) one
// slot left. The vacated tail slot is cleared so the storage does not pin the
// removed element.
func (v *Vector[T]) Remove(idx int) T {
	v.checkIndex(idx)
	removed := v.data[idx]
	copy(v.data[idx:], v.data[idx+1:v.length])
	v.length--
	clearRange(v.data, v.length, v.length+1)
	return removed
}

// RemoveRange deletes n elements starting at from, shifting the tail left and
// clearing the vacated slots. A non-positive n is a no-op.
func (v *Vector[T]) RemoveRange(from, n int) {
	if n <= 0 {
		return
	}
	if from < 0 || n > v.length-from {
		panic(errors.Wrapf(ErrIndexOutOfRange, "vector: range of %d at %d with length %d", n, from, v.length))
	}
	copy(v.data[from:], v.data[from+n:v.length])
	clearRange(v.data, v.length-n, v.length)
	v.length -= n
}

// Pop removes and returns the last element.
func (v *Vector[T]) Pop() T {
	return v.Remove(v.length - 1)
}

// Clear removes all elements. Capacity is retained; the live slots are
// cleared so the storage does not pin removed elements.
func (v *Vector[T]) Clear() {
	clearRange(v.data, 0, v.length)
	v.length = 0
}

// ToSlice returns a copy of the live elements, never the backing storage.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.length)
	copy(out, v.data[:v.length])
	return out
}

// View returns a read-only snapshot of the current storage and length. Later
// mutations of the vector are not reflected in the snapshot length, but
// non-reallocating in-place writes still alias the same storage; do not
// mutate a vector while a derived View is in use.
func (v *Vector[T]) View() View[T] {
	return View[T]{data: v.data, length: v.length}
}

// Iterate calls fn for each element in order, stopping at the first error.
// Every call restarts from the first element of a fresh snapshot.
func (v *Vector[T]) Iterate(fn func(elem T) error) error {
	return v.View().Iterate(fn)
}

// SizeHint implements Source.
func (v *Vector[T]) SizeHint() (int, bool) {
	return v.length, true
}

// span exposes the live range for same-kind block copies.
func (v *Vector[T]) span() []T {
	return v.data[:v.length]
}

// grow ensures capacity for extra more elements beyond the current length.
func (v *Vector[T]) grow(extra int) {
	minCap, err := requiredCapacity(v.length, extra)
	if err != nil {
		panic(err)
	}
	v.data = ensureCapacity(v.data, v.length, minCap)
}

func (v *Vector[T]) checkIndex(idx int) {
	if idx < 0 || idx >= v.length {
		panic(errors.Wrapf(ErrIndexOutOfRange, "vector: index %d with length %d", idx, v.length))
	}
}

func (v *Vector[T]) checkInsertIndex(idx int) {
	if idx < 0 || idx > v.length {
		panic(errors.Wrapf(ErrIndexOutOfRange, "vector: insert index %d with length %d", idx, v.length))
	}
}
