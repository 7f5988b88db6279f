// Package implicit provides the index arithmetic of a zero-based
// Fenwick tree.
//
// No tree nodes are ever materialized. A slot i of the backing slice
// stores the range sum of the elements Child(i) … i, and the slots
// whose ranges cover i are exactly i, Parent(i), Parent(Parent(i)), …
//
// For example, 13 is 1101₂: Child(13) is 1100₂, so slot 13 covers
// elements 12 and 13, and Parent(13) is 1111₂, whose slot covers
// elements 0 … 15.
package implicit

import "math/bits"

// Child returns the first index covered by slot i, i.e. i with its
// trailing run of 1 bits cleared.
func Child(i int) int {
	return i & (i + 1)
}

// Parent returns the next slot whose range contains slot i, i.e. i with
// its lowest 0 bit set. Parent(i) > i for every i ≥ 0.
func Parent(i int) int {
	return i | (i + 1)
}

// SearchMask returns the smallest power of two 2^k such that n lies in
// (2^(k-1), 2^k], which is the size of the perfect binary tree that
// contains a Fenwick tree of n elements. SearchMask(1) is 1.
//
// The result is 0 for n ≤ 0.
func SearchMask(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << bits.Len(uint(n-1))
}
