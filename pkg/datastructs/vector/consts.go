package vector

import "math"

const (
	// defaultCapacity is the initial capacity of a default-constructed Vector.
	// It also seeds growth for vectors constructed with zero capacity.
	defaultCapacity = 16

	// maxCapacity is the largest storage size the growth policy will allocate.
	maxCapacity = math.MaxInt
)
