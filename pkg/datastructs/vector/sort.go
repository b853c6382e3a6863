package vector

import (
	"sort"
)

// SortFunc sorts the live elements in place using less. The sort is not
// guaranteed to be stable.
func (v *Vector[T]) SortFunc(less func(a, b T) bool) {
	live := v.data[:v.length]
	sort.Slice(live, func(i, j int) bool {
		return less(live[i], live[j])
	})
}
