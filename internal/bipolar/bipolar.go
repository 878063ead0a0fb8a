// Package bipolar provides arrays indexed by signed offsets.
//
// The Myers algorithms keep one value per diagonal k = x - y,
// and k ranges over negative and positive values alike.
package bipolar

import "fmt"

// An Array holds one value for each index in the inclusive
// range [Min, Max]. Indexing outside that range panics.
type Array[T any] struct {
	min, max int
	data     []T
}

// New returns a zeroed array indexed by [min, max].
// It panics if max < min.
func New[T any](min, max int) *Array[T] {
	if max < min {
		panic(fmt.Sprintf("bipolar: bad range [%d, %d]", min, max))
	}
	return &Array[T]{
		min:  min,
		max:  max,
		data: make([]T, max-min+1),
	}
}

func (a *Array[T]) Min() int { return a.min }
func (a *Array[T]) Max() int { return a.max }
func (a *Array[T]) Len() int { return len(a.data) }

// In reports whether i is a valid index.
func (a *Array[T]) In(i int) bool {
	return a.min <= i && i <= a.max
}

func (a *Array[T]) offset(i int) int {
	if !a.In(i) {
		panic(fmt.Sprintf("bipolar: index %d out of range [%d, %d]", i, a.min, a.max))
	}
	return i - a.min
}

// At returns the value stored at index i.
func (a *Array[T]) At(i int) T {
	return a.data[a.offset(i)]
}

// Set stores v at index i.
func (a *Array[T]) Set(i int, v T) {
	a.data[a.offset(i)] = v
}

// Clone returns a deep copy of a.
// The copy does not share storage with a.
func (a *Array[T]) Clone() *Array[T] {
	return a.CloneRange(a.min, a.max)
}

// CloneRange returns a copy of the window [min, max] of a,
// clipped to the bounds of a.
func (a *Array[T]) CloneRange(min, max int) *Array[T] {
	if min < a.min {
		min = a.min
	}
	if max > a.max {
		max = a.max
	}
	c := New[T](min, max)
	copy(c.data, a.data[min-a.min:max-a.min+1])
	return c
}
