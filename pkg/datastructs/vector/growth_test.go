package vector

import (
	"errors"
	"testing"
)

// =============================================================================
// Func: requiredCapacity()
// =============================================================================

func TestRequiredCapacity(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		extra   int
		want    int
		wantErr bool
	}{
		{"small", 10, 5, 15, false},
		{"zero_extra", 10, 0, 10, false},
		{"at_limit", maxCapacity - 1, 1, maxCapacity, false},
		{"over_limit", maxCapacity, 1, 0, true},
		{"huge_extra", 2, maxCapacity - 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := requiredCapacity(tt.length, tt.extra)
			if tt.wantErr {
				if !errors.Is(err, ErrCapacityExceeded) {
					t.Fatalf("err = %v, want ErrCapacityExceeded", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("capacity = %d, want %d", got, tt.want)
			}
		})
	}
}

// =============================================================================
// Func: ensureCapacity()
// =============================================================================

func TestEnsureCapacity_NoRealloc(t *testing.T) {
	data := make([]int, 16)
	got := ensureCapacity(data, 4, 10)
	if &got[0] != &data[0] {
		t.Error("sufficient capacity should return the storage unchanged")
	}
}

func TestEnsureCapacity_Doubles(t *testing.T) {
	tests := []struct {
		name    string
		cap     int
		minCap  int
		wantCap int
	}{
		{"double_once", 16, 17, 32},
		{"double_twice", 16, 40, 64},
		{"exact_boundary", 16, 32, 32},
		{"odd_capacity_doubles", 3, 7, 12},
		{"zero_seeds_default", 0, 1, defaultCapacity},
		{"zero_seeds_then_doubles", 0, 20, defaultCapacity * 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ensureCapacity(make([]int, tt.cap), 0, tt.minCap)
			if len(got) != tt.wantCap {
				t.Errorf("cap = %d, want %d", len(got), tt.wantCap)
			}
		})
	}
}

func TestEnsureCapacity_PreservesElements(t *testing.T) {
	data := make([]int, 4)
	for i := range data {
		data[i] = i + 1
	}

	grown := ensureCapacity(data, 3, 8)
	if len(grown) < 8 {
		t.Fatalf("cap = %d, want >= 8", len(grown))
	}
	for i := 0; i < 3; i++ {
		if grown[i] != i+1 {
			t.Errorf("grown[%d] = %d, want %d (same index)", i, grown[i], i+1)
		}
	}
	if grown[3] != 0 {
		t.Error("slots beyond length should not be copied")
	}
}

// =============================================================================
// Func: clearRange()
// =============================================================================

func TestClearRange(t *testing.T) {
	tests := []struct {
		name string
		from int
		to   int
		want []int
	}{
		{"middle", 1, 3, []int{1, 0, 0, 4}},
		{"all", 0, 4, []int{0, 0, 0, 0}},
		{"empty_range", 2, 2, []int{1, 2, 3, 4}},
		{"inverted_noop", 3, 1, []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []int{1, 2, 3, 4}
			clearRange(data, tt.from, tt.to)
			for i, w := range tt.want {
				if data[i] != w {
					t.Errorf("data[%d] = %d, want %d", i, data[i], w)
				}
			}
		})
	}
}

func TestClearRange_ReleasesReferences(t *testing.T) {
	a, b := 1, 2
	data := []*int{&a, &b}
	clearRange(data, 0, 2)
	if data[0] != nil || data[1] != nil {
		t.Error("cleared slots should hold nil")
	}
}
