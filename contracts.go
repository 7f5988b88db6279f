package fenwick

import "fmt"

func (t *Tree[V]) mustNotBeEmpty() {
	if contractChecks && len(t.data) == 0 {
		panic(ErrEmpty)
	}
}

func (t *Tree[V]) mustHaveIndex(i int) {
	if contractChecks && (i < 0 || i >= len(t.data)) {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(t.data)))
	}
}

func (t *Tree[V]) mustHaveRange(first, last int) {
	if !contractChecks {
		return
	}
	if first > last {
		panic(fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, first, last))
	}
	t.mustHaveIndex(first)
	t.mustHaveIndex(last)
}

func mustBePositive(size int) {
	if contractChecks && size <= 0 {
		panic(fmt.Errorf("%w: %d", ErrInvalidSize, size))
	}
}
