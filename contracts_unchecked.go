//go:build fenwick_unchecked

package fenwick

// Built with -tags fenwick_unchecked: precondition checks compile away.
// Out-of-range slice access still panics through the runtime.
const contractChecks = false
