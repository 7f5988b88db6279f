// Package algo holds small linear scans over slices that the standard
// slices package does not cover: predicates over adjacent pairs, and a
// rotation-insensitive equality check.
package algo

// AllOfPairs reports whether pred holds for every adjacent pair
// (s[i], s[i+1]). It is true for slices with fewer than two elements.
func AllOfPairs[S ~[]E, E any](s S, pred func(a, b E) bool) bool {
	for i := 1; i < len(s); i++ {
		if !pred(s[i-1], s[i]) {
			return false
		}
	}
	return true
}

// AnyOfPairs reports whether pred holds for at least one adjacent pair.
// It is false for slices with fewer than two elements.
func AnyOfPairs[S ~[]E, E any](s S, pred func(a, b E) bool) bool {
	for i := 1; i < len(s); i++ {
		if pred(s[i-1], s[i]) {
			return true
		}
	}
	return false
}

// NoneOfPairs reports whether pred holds for no adjacent pair. It is true
// for slices with fewer than two elements.
func NoneOfPairs[S ~[]E, E any](s S, pred func(a, b E) bool) bool {
	return !AnyOfPairs(s, pred)
}

// FindFunc returns the index of the first element e with eq(e, v), or -1.
func FindFunc[S ~[]E, E, T any](s S, v T, eq func(E, T) bool) int {
	for i := range s {
		if eq(s[i], v) {
			return i
		}
	}
	return -1
}

// Find returns the index of the first element equal to v, or -1.
func Find[S ~[]E, E comparable](s S, v E) int {
	return FindFunc(s, v, func(a, b E) bool { return a == b })
}

// IsCircularPermutation reports whether some rotation of a equals
// b[:len(a)]. It is true if a is empty. b must hold at least len(a)
// elements.
func IsCircularPermutation[S ~[]E, E comparable](a, b S) bool {
	return IsCircularPermutationFunc(a, b, func(x, y E) bool { return x == y })
}

// IsCircularPermutationFunc is like IsCircularPermutation but compares
// elements with eq.
//
// Only the rotation starting at the first element of a matching b[0] is
// tried, so eq must make that match unique for the answer to be exact;
// for sequences with repeated elements use a different check.
func IsCircularPermutationFunc[S1 ~[]E1, S2 ~[]E2, E1, E2 any](a S1, b S2, eq func(E1, E2) bool) bool {
	if len(a) == 0 {
		return true
	}
	start := FindFunc(a, b[0], eq)
	if start < 0 {
		return false
	}
	j := 0
	for _, x := range a[start:] {
		if !eq(x, b[j]) {
			return false
		}
		j++
	}
	for _, x := range a[:start] {
		if !eq(x, b[j]) {
			return false
		}
		j++
	}
	return true
}
