package fenwick

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	rng "github.com/leesper/go_rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// randomWeights returns n non-negative integral weights below limit,
// with roughly one zero in five.
func randomWeights(gen *rng.UniformGenerator, n int, limit int64) []float64 {
	w := make([]float64, n)
	for i := range w {
		if gen.Int64n(5) == 0 {
			continue
		}
		w[i] = float64(gen.Int64n(limit))
	}
	return w
}

func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	if !contractChecks {
		t.Skip("contract checks are compiled out")
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected a panic wrapping %v, got %v", target, r)
		}
	}()
	f()
}

func TestSingleElement(t *testing.T) {
	tree := From(5)

	if tree.Total() != 5 {
		t.Errorf("Total() = %d, want 5", tree.Total())
	}
	if tree.At(0) != 5 {
		t.Errorf("At(0) = %d, want 5", tree.At(0))
	}
	if tree.LowerBound(5) != 0 {
		t.Errorf("LowerBound(5) = %d, want 0", tree.LowerBound(5))
	}
	if tree.LowerBound(6) != 1 {
		t.Errorf("LowerBound(6) = %d, want 1", tree.LowerBound(6))
	}
}

func TestSmallSequence(t *testing.T) {
	tree := From(1, 2, 3, 4, 5)

	if got := tree.SumRange(1, 3); got != 9 {
		t.Errorf("SumRange(1, 3) = %d, want 9", got)
	}
	if got := tree.Total(); got != 15 {
		t.Errorf("Total() = %d, want 15", got)
	}
	if got := tree.At(2); got != 3 {
		t.Errorf("At(2) = %d, want 3", got)
	}
	for i, want := range []int{1, 3, 6, 10, 15} {
		if got := tree.Sum(i); got != want {
			t.Errorf("Sum(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestAddOnZeroTree(t *testing.T) {
	tree := New[int](4)
	tree.Add(2, 10)

	if got := tree.SumRange(0, 2); got != 10 {
		t.Errorf("SumRange(0, 2) = %d, want 10", got)
	}
	if got := tree.SumRange(3, 3); got != 0 {
		t.Errorf("SumRange(3, 3) = %d, want 0", got)
	}
	if got := tree.At(2); got != 10 {
		t.Errorf("At(2) = %d, want 10", got)
	}
}

func TestAllZeroBounds(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 8, 13} {
		tree := New[uint32](n)
		if got := tree.LowerBound(0); got != 0 {
			t.Errorf("n=%d: LowerBound(0) = %d, want 0", n, got)
		}
		if got := tree.UpperBound(0); got != n {
			t.Errorf("n=%d: UpperBound(0) = %d, want %d", n, got, n)
		}
	}
}

func TestSetCurrentValueIsNoop(t *testing.T) {
	tree := From(4.5, 1.25, 0, 7)
	before := tree.Values()

	for i := range before {
		tree.Set(i, tree.At(i))
	}

	assert.Equal(t, before, tree.Values())
}

func TestRoundTrip(t *testing.T) {
	gen := rng.NewUniformGenerator(0xDEADBEEF)

	for n := 1; n <= 70; n++ {
		values := make([]int64, n)
		for i := range values {
			values[i] = gen.Int64n(2000) - 1000
		}
		tree := From(values...)

		require.Equal(t, n, tree.Len())
		for i, v := range values {
			if got := tree.At(i); got != v {
				t.Fatalf("n=%d: At(%d) = %d, want %d", n, i, got, v)
			}
		}
		assert.Equal(t, values, tree.Values(), "n=%d", n)
	}
}

func TestSumsAgainstShadow(t *testing.T) {
	gen := rng.NewUniformGenerator(42)
	shadow := randomWeights(gen, 37, 100)
	tree := From(shadow...)

	check := func(step int) {
		t.Helper()
		prefix := floats.CumSum(make([]float64, len(shadow)), shadow)
		for i := range shadow {
			require.Equal(t, prefix[i], tree.Sum(i), "step %d: Sum(%d)", step, i)
			for j := i; j < len(shadow); j++ {
				require.Equal(t, floats.Sum(shadow[i:j+1]), tree.SumRange(i, j),
					"step %d: SumRange(%d, %d)", step, i, j)
			}
		}
		require.Equal(t, floats.Sum(shadow), tree.Total(), "step %d: Total()", step)
	}

	check(0)
	for step := 1; step <= 200; step++ {
		i := int(gen.Int64n(int64(len(shadow))))
		v := float64(gen.Int64n(100))
		if step%2 == 0 {
			tree.Add(i, v)
			shadow[i] += v
		} else {
			tree.Set(i, v)
			shadow[i] = v
		}
		if step%20 == 0 {
			check(step)
		}
	}
}

func TestAddConsistency(t *testing.T) {
	tree := From(3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5)
	n := tree.Len()

	for index := 0; index < n; index++ {
		elements := tree.Values()
		sums := make([]int, n)
		for k := range sums {
			sums[k] = tree.Sum(k)
		}

		tree.Add(index, 7)

		for k := 0; k < n; k++ {
			wantElem, wantSum := elements[k], sums[k]
			if k == index {
				wantElem += 7
			}
			if k >= index {
				wantSum += 7
			}
			if got := tree.At(k); got != wantElem {
				t.Errorf("after Add(%d, 7): At(%d) = %d, want %d", index, k, got, wantElem)
			}
			if got := tree.Sum(k); got != wantSum {
				t.Errorf("after Add(%d, 7): Sum(%d) = %d, want %d", index, k, got, wantSum)
			}
		}
	}
}

func TestSetIdempotence(t *testing.T) {
	gen := rng.NewUniformGenerator(7)
	tree := New[int64](19)

	for i := 0; i < 500; i++ {
		index := int(gen.Int64n(19))
		v := gen.Int64n(1<<20) - 1<<19
		tree.Set(index, v)
		if got := tree.At(index); got != v {
			t.Fatalf("Set(%d, %d) then At(%d) = %d", index, v, index, got)
		}
	}
}

// linearLowerBound and linearUpperBound scan the prefix sums naively.
func linearLowerBound(prefix []float64, v float64) int {
	for i, s := range prefix {
		if s >= v {
			return i
		}
	}
	return len(prefix)
}

func linearUpperBound(prefix []float64, v float64) int {
	for i, s := range prefix {
		if s > v {
			return i
		}
	}
	return len(prefix)
}

func TestBoundsAgainstLinearScan(t *testing.T) {
	gen := rng.NewUniformGenerator(0xC0FFEE)

	for n := 1; n <= 40; n++ {
		weights := randomWeights(gen, n, 6)
		tree := From(weights...)
		prefix := floats.CumSum(make([]float64, n), weights)
		total := prefix[n-1]

		for v := -1.0; v <= total+1; v += 0.5 {
			if got, want := tree.LowerBound(v), linearLowerBound(prefix, v); got != want {
				t.Errorf("n=%d %v: LowerBound(%v) = %d, want %d", n, weights, v, got, want)
			}
			if got, want := tree.UpperBound(v), linearUpperBound(prefix, v); got != want {
				t.Errorf("n=%d %v: UpperBound(%v) = %d, want %d", n, weights, v, got, want)
			}
		}

		assert.Equal(t, n, tree.LowerBound(total+1))
		assert.Equal(t, n, tree.UpperBound(total))
	}
}

func TestBoundsUnsigned(t *testing.T) {
	tree := From[uint](0, 2, 0, 0, 3, 1)

	for _, tc := range []struct {
		v            uint
		lower, upper int
	}{
		{0, 0, 1},
		{1, 1, 1},
		{2, 1, 4},
		{3, 4, 4},
		{5, 4, 5},
		{6, 5, 6},
		{7, 6, 6},
	} {
		assert.Equal(t, tc.lower, tree.LowerBound(tc.v), "LowerBound(%d)", tc.v)
		assert.Equal(t, tc.upper, tree.UpperBound(tc.v), "UpperBound(%d)", tc.v)
	}
}

func TestUnsignedWraparound(t *testing.T) {
	tree := From[uint8](200, 50, 10)

	tree.Set(0, 3)
	assert.Equal(t, uint8(3), tree.At(0))
	assert.Equal(t, uint8(63), tree.Total())

	// 3 + 250 + 10 wraps to 7
	tree.Add(1, 200)
	assert.Equal(t, uint8(250), tree.At(1))
	assert.Equal(t, uint8(253), tree.Sum(1))
	assert.Equal(t, uint8(7), tree.Total())
	assert.Equal(t, uint8(10), tree.At(2))
}

type weight int32

func TestNamedValueType(t *testing.T) {
	tree := From[weight](2, 2, 2)
	tree.Add(1, 1)

	assert.Equal(t, weight(7), tree.Total())
	assert.Equal(t, 1, tree.LowerBound(3))
}

func TestFromSeq(t *testing.T) {
	values := []float32{0.5, 0.25, 2, 8}
	tree := FromSeq(slices.Values(values))

	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, values, tree.Values())
	assert.Equal(t, float32(10.75), tree.Total())
}

func TestResetSeqFromItself(t *testing.T) {
	tree := From(1, 2, 3)
	tree.ResetSeq(func(yield func(int) bool) {
		for _, v := range tree.All() {
			if !yield(v * 10) {
				return
			}
		}
	})

	assert.Equal(t, []int{10, 20, 30}, tree.Values())
}

func TestReset(t *testing.T) {
	tree := From(1, 2, 3, 4, 5, 6)

	tree.Reset(4)
	require.Equal(t, 4, tree.Len())
	assert.Equal(t, 0, tree.Total())
	assert.Equal(t, []int{0, 0, 0, 0}, tree.Values())

	tree.Reset(9)
	require.Equal(t, 9, tree.Len())
	assert.Equal(t, 0, tree.Total())

	tree.ResetFrom([]int{9, 8})
	assert.Equal(t, []int{9, 8}, tree.Values())
	assert.Equal(t, 17, tree.Total())
}

func TestZeroValue(t *testing.T) {
	var tree Tree[float64]

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, "Fenwick<len=0>", tree.String())

	tree.ResetFrom([]float64{1.5})
	assert.False(t, tree.IsEmpty())
	assert.Equal(t, 1.5, tree.Total())
}

func TestAll(t *testing.T) {
	tree := From(4, 0, 6, 1)

	var got []int
	for i, v := range tree.All() {
		assert.Equal(t, tree.At(i), v)
		got = append(got, v)
		if i == 2 {
			break
		}
	}
	assert.Equal(t, []int{4, 0, 6}, got)
}

func TestClone(t *testing.T) {
	tree := From(1, 1, 1)
	clone := tree.Clone()
	clone.Add(0, 10)

	assert.Equal(t, 3, tree.Total())
	assert.Equal(t, 13, clone.Total())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Fenwick<len=3, total=6>", From(1, 2, 3).String())
	assert.Equal(t, "Fenwick<len=3, total=6>", fmt.Sprint(From(1, 2, 3)))
}

func TestContracts(t *testing.T) {
	var empty Tree[int]

	cases := []struct {
		name   string
		target error
		f      func()
	}{
		{"New(0)", ErrInvalidSize, func() { New[int](0) }},
		{"New(-1)", ErrInvalidSize, func() { New[int](-1) }},
		{"From()", ErrInvalidSize, func() { From[int]() }},
		{"FromSeq(empty)", ErrInvalidSize, func() { FromSeq(slices.Values([]int(nil))) }},
		{"Reset(0)", ErrInvalidSize, func() { From(1).Reset(0) }},
		{"Total on empty", ErrEmpty, func() { empty.Total() }},
		{"LowerBound on empty", ErrEmpty, func() { empty.LowerBound(1) }},
		{"UpperBound on empty", ErrEmpty, func() { empty.UpperBound(1) }},
		{"At(-1)", ErrIndexOutOfRange, func() { From(1, 2).At(-1) }},
		{"At(len)", ErrIndexOutOfRange, func() { From(1, 2).At(2) }},
		{"Add(len)", ErrIndexOutOfRange, func() { From(1, 2).Add(2, 1) }},
		{"Set(len)", ErrIndexOutOfRange, func() { From(1, 2).Set(5, 1) }},
		{"Sum(len)", ErrIndexOutOfRange, func() { From(1, 2).Sum(2) }},
		{"SumRange(2, 1)", ErrInvalidRange, func() { From(1, 2, 3).SumRange(2, 1) }},
		{"SumRange(-1, 1)", ErrIndexOutOfRange, func() { From(1, 2, 3).SumRange(-1, 1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expectPanic(t, tc.target, tc.f)
		})
	}
}

func benchmarkSum(n int, b *testing.B) {
	tree := New[int64](n)
	for i := 0; i < n; i++ {
		tree.Add(i, int64(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Sum(i % n)
	}
}

func benchmarkAdd(n int, b *testing.B) {
	tree := New[int64](n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Add(i%n, 1)
	}
}

func benchmarkLowerBound(n int, b *testing.B) {
	tree := New[int64](n)
	for i := 0; i < n; i++ {
		tree.Add(i, 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.LowerBound(int64(i % n))
	}
}

func BenchmarkSum1K(b *testing.B)        { benchmarkSum(1<<10, b) }
func BenchmarkSum1M(b *testing.B)        { benchmarkSum(1<<20, b) }
func BenchmarkAdd1K(b *testing.B)        { benchmarkAdd(1<<10, b) }
func BenchmarkAdd1M(b *testing.B)        { benchmarkAdd(1<<20, b) }
func BenchmarkLowerBound1K(b *testing.B) { benchmarkLowerBound(1<<10, b) }
func BenchmarkLowerBound1M(b *testing.B) { benchmarkLowerBound(1<<20, b) }
