package vecpool

import (
	"sync"

	"github.com/huynhanx03/go-seq/pkg/datastructs/vector"
	"github.com/huynhanx03/go-seq/pkg/utils"
)

const (
	// minBitSize is the smallest pooled capacity class (16 slots).
	minBitSize = 4

	// steps is the number of capacity classes, covering 16 to 512K slots.
	steps = 16

	minSize = 1 << minBitSize
	maxSize = 1 << (minBitSize + steps - 1)
)

// Pool recycles vectors of a single element type across power-of-two capacity
// classes. Vectors are cleared before reuse so pooled storage never retains
// elements. Unlike Vector itself, the pool is safe for concurrent use.
type Pool[T any] struct {
	buckets [steps]sync.Pool
}

// NewPool creates a pool of vectors of element type T.
func NewPool[T any]() *Pool[T] {
	p := &Pool[T]{}
	for i := range p.buckets {
		capacity := minSize << i
		p.buckets[i].New = func() any {
			return vector.WithCapacity[T](capacity)
		}
	}
	return p
}

// Get returns an empty vector with capacity of at least size. Requests beyond
// the largest class are allocated directly and will be dropped on Put.
func (p *Pool[T]) Get(size int) *vector.Vector[T] {
	if size < minSize {
		size = minSize
	}
	if size > maxSize {
		return vector.WithCapacity[T](size)
	}
	idx := utils.PowerOfTwoIndex(utils.CeilToPowerOfTwo(size)) - minBitSize
	return p.buckets[idx].Get().(*vector.Vector[T])
}

// Put clears v and returns it to the class its capacity covers. Vectors
// smaller than the smallest class or larger than the largest are dropped.
// Classing rounds the capacity down, so a vector handed out by Get never
// lands in a class it cannot serve.
func (p *Pool[T]) Put(v *vector.Vector[T]) {
	if v == nil || v.Cap() < minSize || v.Cap() > maxSize {
		return
	}
	idx := utils.PowerOfTwoIndex(utils.FloorToPowerOfTwo(v.Cap())) - minBitSize
	v.Clear()
	p.buckets[idx].Put(v)
}
