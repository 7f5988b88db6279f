// Package grid provides evenly spaced one-dimensional coordinate grids.
package grid

import (
	"fmt"
	"iter"
)

// Float is the set of coordinate types of a grid.
type Float interface {
	~float32 | ~float64
}

// Linear is the grid of size points x0, x0+dx, …, x0+(size-1)·dx.
// The zero value is not a valid grid.
type Linear[T Float] struct {
	x0, dx T
	size   int
}

// NewLinear returns a grid of size points starting at x0 with spacing dx.
// It panics if size is not positive.
func NewLinear[T Float](x0, dx T, size int) Linear[T] {
	var g Linear[T]
	g.Set(x0, dx, size)
	return g
}

// Point returns the grid that holds x0 only.
func Point[T Float](x0 T) Linear[T] {
	return Linear[T]{x0: x0, size: 1}
}

// Set replaces origin, spacing and size. It panics if size is not
// positive.
func (g *Linear[T]) Set(x0, dx T, size int) {
	if size <= 0 {
		panic(fmt.Sprintf("grid: size must be positive, got %d", size))
	}
	g.x0, g.dx, g.size = x0, dx, size
}

// Shift moves the whole grid by dx.
func (g *Linear[T]) Shift(dx T) {
	g.x0 += dx
}

// At returns the i-th point.
func (g Linear[T]) At(i int) T {
	if i < 0 || i >= g.size {
		panic(fmt.Sprintf("grid: index %d not in [0, %d)", i, g.size))
	}
	return g.x0 + T(i)*g.dx
}

func (g Linear[T]) Len() int { return g.size }
func (g Linear[T]) Dx() T { return g.dx }
func (g Linear[T]) Front() T { return g.x0 }
func (g Linear[T]) Back() T { return g.x0 + g.Range() }
func (g Linear[T]) Range() T { return g.dx * T(g.size-1) }

// All returns an iterator over the index and coordinate of every point.
func (g Linear[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < g.size; i++ {
			if !yield(i, g.x0+T(i)*g.dx) {
				return
			}
		}
	}
}

func (g Linear[T]) String() string {
	return fmt.Sprintf("Linear<x0=%v, dx=%v, size=%d>", g.x0, g.dx, g.size)
}
