// Package fenwick provides a generic list of numbers supporting prefix
// sums.
//
// A Fenwick tree, or binary indexed tree, keeps a list of numbers in a
// single slice of the same length and supports both element updates and
// prefix sum calculation in O(log n) time. The list is represented as an
// implicit tree: slot i of the slice stores the sum of a run of elements
// ending at i, and the runs are found with bit arithmetic on the index.
//
// If every element is non-negative, the prefix sums are non-decreasing and
// the tree can also be searched: LowerBound and UpperBound return the first
// index whose prefix sum reaches a threshold, again in O(log n).
//
// Preconditions (non-empty tree, indices in range, positive sizes) are
// programming errors; violating one panics. Build with the
// fenwick_unchecked tag to compile the checks out.
package fenwick

import (
	"fmt"
	"iter"

	"github.com/esutil/fenwick/internal/implicit"
)

// Number is the set of value types a Tree can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Tree represents a list of numbers with support for efficient prefix
// and range sum computation. The zero value is an empty tree; it must be
// reset before use.
//
// Arithmetic is that of V: integer sums wrap around on overflow and
// floating-point sums round.
//
// A Tree is not safe for concurrent use. Readers may share it as long as
// nobody calls Add, Set or a Reset method at the same time.
type Tree[V Number] struct {
	// The data slice stores range sums of the conceptual elements e.
	// Slot i holds e[i & (i+1)] + … + e[i], so the prefix sum up to i
	// adds slot i, then slot Child(i)-1, and so on down to index 0.
	//
	// For example, the prefix sum of the first 14 elements (up to 13,
	// which is 1101₂) adds slots 1101₂, 1011₂ and 0111₂; they contain
	// e[12] + e[13], e[8] + … + e[11], and e[0] + … + e[7].
	data []V
}

// New creates a tree of size zero-valued elements. It panics if size is
// not positive.
func New[V Number](size int) *Tree[V] {
	t := &Tree[V]{}
	t.Reset(size)
	return t
}

// From creates a tree holding a copy of values. It panics if values is
// empty.
func From[V Number](values ...V) *Tree[V] {
	t := &Tree[V]{}
	t.ResetFrom(values)
	return t
}

// FromSeq creates a tree holding the values yielded by seq. It panics if
// seq yields nothing.
func FromSeq[V Number](seq iter.Seq[V]) *Tree[V] {
	t := &Tree[V]{}
	t.ResetSeq(seq)
	return t
}

// Reset replaces the contents with size zero-valued elements. It panics
// if size is not positive.
func (t *Tree[V]) Reset(size int) {
	mustBePositive(size)
	if cap(t.data) >= size {
		t.data = t.data[:size]
		clear(t.data)
		return
	}
	t.data = make([]V, size)
}

// ResetFrom replaces the contents with a copy of values. It panics if
// values is empty.
func (t *Tree[V]) ResetFrom(values []V) {
	mustBePositive(len(values))
	t.data = append(t.data[:0], values...)
	t.build()
}

// ResetSeq replaces the contents with the values yielded by seq. It
// panics if seq yields nothing.
func (t *Tree[V]) ResetSeq(seq iter.Seq[V]) {
	// seq may read from t itself, so collect into a fresh slice
	var data []V
	for v := range seq {
		data = append(data, v)
	}
	mustBePositive(len(data))
	t.data = data
	t.build()
}

// build turns a slice of elements into range sums. Parent(i) > i, so
// slot i is complete by the time it is folded into its parent.
func (t *Tree[V]) build() {
	n := len(t.data)
	for i := range t.data {
		if p := implicit.Parent(i); p < n {
			t.data[p] += t.data[i]
		}
	}
}

// Len returns the number of elements in the tree.
func (t *Tree[V]) Len() int {
	return len(t.data)
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[V]) IsEmpty() bool {
	return len(t.data) == 0
}

// At returns the element at index i.
func (t *Tree[V]) At(i int) V {
	t.mustHaveIndex(i)
	v := t.data[i]
	for mask := 1; i&mask != 0; mask <<= 1 {
		v -= t.data[i^mask]
	}
	return v
}

// SumRange returns the sum of the elements in the closed range
// [first, last].
func (t *Tree[V]) SumRange(first, last int) V {
	t.mustHaveRange(first, last)
	sum := t.data[last]
	last = implicit.Child(last)
	for last > first {
		last--
		sum += t.data[last]
		last = implicit.Child(last)
	}
	for first != last {
		first--
		sum -= t.data[first]
		first = implicit.Child(first)
	}
	return sum
}

// Sum returns the prefix sum of the elements from index 0 to index i,
// both included.
func (t *Tree[V]) Sum(i int) V {
	return t.SumRange(0, i)
}

// Total returns the sum of all elements.
func (t *Tree[V]) Total() V {
	t.mustNotBeEmpty()
	return t.Sum(len(t.data) - 1)
}

// LowerBound returns the smallest index whose prefix sum is not less than
// v, or Len() if there is none. All elements must be non-negative.
func (t *Tree[V]) LowerBound(v V) int {
	t.mustNotBeEmpty()
	n := len(t.data)
	index := 0
	for mask := implicit.SearchMask(n); mask != 0; mask >>= 1 {
		if k := mask + index - 1; k < n && t.data[k] < v {
			v -= t.data[k]
			index += mask
		}
	}
	return index
}

// UpperBound returns the smallest index whose prefix sum is greater than
// v, or Len() if there is none. All elements must be non-negative.
func (t *Tree[V]) UpperBound(v V) int {
	t.mustNotBeEmpty()
	n := len(t.data)
	index := 0
	for mask := implicit.SearchMask(n); mask != 0; mask >>= 1 {
		if k := mask + index - 1; k < n && !(v < t.data[k]) {
			v -= t.data[k]
			index += mask
		}
	}
	return index
}

// Add adds delta to the element at index i.
func (t *Tree[V]) Add(i int, delta V) {
	t.mustHaveIndex(i)
	for n := len(t.data); i < n; i = implicit.Parent(i) {
		t.data[i] += delta
	}
}

// Set sets the element at index i to v.
func (t *Tree[V]) Set(i int, v V) {
	t.Add(i, v-t.At(i))
}

// Values returns a copy of all elements in index order.
func (t *Tree[V]) Values() []V {
	values := append([]V(nil), t.data...)
	n := len(values)
	for i := n - 1; i >= 0; i-- {
		if p := implicit.Parent(i); p < n {
			values[p] -= values[i]
		}
	}
	return values
}

// All returns an iterator over the index and value of every element.
func (t *Tree[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := range t.data {
			if !yield(i, t.At(i)) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the tree.
func (t *Tree[V]) Clone() *Tree[V] {
	return &Tree[V]{data: append([]V(nil), t.data...)}
}

func (t *Tree[V]) String() string {
	if len(t.data) == 0 {
		return "Fenwick<len=0>"
	}
	return fmt.Sprintf("Fenwick<len=%d, total=%v>", len(t.data), t.Total())
}
