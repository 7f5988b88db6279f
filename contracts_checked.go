//go:build !fenwick_unchecked

package fenwick

const contractChecks = true
