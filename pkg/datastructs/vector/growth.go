package vector

import (
	"github.com/pkg/errors"
)

// The growth policy is stateless and lives outside Vector so it can be
// exercised directly on raw storage.

// requiredCapacity returns length+extra, or ErrCapacityExceeded when the sum
// is not representable as an index. Callers must validate through it before
// asking ensureCapacity for more storage.
func requiredCapacity(length, extra int) (int, error) {
	if extra > maxCapacity-length {
		return 0, errors.Wrapf(ErrCapacityExceeded, "vector: length %d cannot grow by %d", length, extra)
	}
	return length + extra, nil
}

// ensureCapacity returns storage with capacity of at least minCap, keeping the
// first length elements at their indices. When the current capacity suffices
// the storage is returned unchanged. Otherwise the capacity doubles until it
// covers minCap, clamping at maxCapacity; a zero starting capacity is seeded
// with defaultCapacity. minCap must come from requiredCapacity, so the clamp
// always suffices.
func ensureCapacity[T any](data []T, length, minCap int) []T {
	if len(data) >= minCap {
		return data
	}

	newCap := len(data)
	if newCap == 0 {
		newCap = defaultCapacity
	}
	for newCap < minCap {
		if newCap > maxCapacity/2 {
			newCap = maxCapacity
			break
		}
		newCap *= 2
	}

	grown := make([]T, newCap)
	copy(grown, data[:length])
	return grown
}

// clearRange overwrites the slots of [from, to) with zero values so they
// release any references they held. No-op when from >= to.
func clearRange[T any](data []T, from, to int) {
	if from >= to {
		return
	}
	clear(data[from:to])
}
