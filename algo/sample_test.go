package algo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	testifyassert "github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"

	"github.com/leisurelyrcxf/lazyselect/utils"
)

func TestSampleAndSort(t *testing.T) {
	assert := testifyassert.New(t)

	rnd := utils.NewRand(4)
	for _, n := range []int{1, 2, 3, 16, 100, 10000} {
		array := utils.RandomSequence(rnd, n)
		sample := sampleAndSort(rnd, array)
		assert.Len(sample, utils.CeilPow(n, 3.0/4.0))
		assert.True(slices.IsSorted(sample))
		for _, v := range sample {
			assert.True(v >= 0 && v < n)
		}
	}
	assert.Equal(1000, sampleSize(10000))
	assert.Equal(1, sampleSize(1))
}

func TestEstimateRange(t *testing.T) {
	assert := testifyassert.New(t)

	br := estimateRange(0, 1, []int{7})
	assert.Equal(bracket[int]{a: 7, b: 7, l: 1, h: 1}, br)

	rnd := utils.NewRand(6)
	for _, n := range []int{2, 3, 4, 10, 99, 1000, 10000} {
		sample := sampleAndSort(rnd, utils.RandomSequence(rnd, n))
		for k := 0; k < n; k += utils.MaxInt(1, n/37) {
			br := estimateRange(k, n, sample)
			assert.True(1 <= br.l && br.l <= br.h && br.h <= len(sample), "n: %d, k: %d, l: %d, h: %d", n, k, br.l, br.h)
			assert.Equal(sample[br.l-1], br.a)
			assert.Equal(sample[br.h-1], br.b)
			assert.LessOrEqual(br.a, br.b)
		}
	}

	sample := utils.SortedSequence(1000)
	br = estimateRange(0, 10000, sample)
	assert.Equal(1, br.l)
	assert.Equal(100, br.h)
	br = estimateRange(9999, 10000, sample)
	assert.Equal(999, br.h)
	assert.InDelta(899, br.l, 1)
}

func TestClassify(t *testing.T) {
	assert := testifyassert.New(t)

	var (
		array = utils.ReversedSequence(100)
		br    = bracket[int]{a: 20, b: 40}
	)
	for _, tc := range []struct {
		k           int
		regime      regime
		candidates  []int
		offset      int
		comparisons int64
	}{
		{k: 1, regime: regimeNearFirst, candidates: utils.ReversedSequence(41), offset: 0, comparisons: 200 + 41},
		{k: 30, regime: regimeInterior, candidates: []int{40, 39, 38, 37, 36, 35, 34, 33, 32, 31, 30, 29, 28, 27, 26, 25, 24, 23, 22, 21, 20}, offset: 20, comparisons: 200 + 2*21},
		{k: 98, regime: regimeNearLast, candidates: reversedRange(20, 100), offset: 20, comparisons: 200 + 80},
	} {
		counter := NewCounter()
		c := classify(array, tc.k, br, counter)
		assert.Equal(tc.regime, c.regime, tc.regime.String())
		assert.Equal(20, c.rankA)
		assert.Equal(40, c.rankB)
		assert.Equal(tc.offset, c.offset())
		assert.Equal(tc.comparisons, counter.Count())
		if diff := cmp.Diff(tc.candidates, c.candidates); diff != "" {
			t.Errorf("%s candidates mismatch (-want +got):\n%s", tc.regime, diff)
		}
	}
}

func reversedRange(lo, hi int) []int {
	r := make([]int, 0, hi-lo)
	for v := hi - 1; v >= lo; v-- {
		r = append(r, v)
	}
	return r
}

func TestRestrict(t *testing.T) {
	assert := testifyassert.New(t)

	counter := NewCounter()
	restricted := restrict([]int{5, 1, 3, 3, 9, 4, 7}, 3, 5, counter)
	assert.Equal([]int{5, 3, 3, 4}, restricted)
	assert.Equal(int64(14), counter.Count())

	inner, equalA, equalB := restrictOpen(restricted, 3, 5, counter)
	assert.Equal([]int{4}, inner)
	assert.Equal(2, equalA)
	assert.Equal(1, equalB)
}

func TestRegimeOf(t *testing.T) {
	assert := testifyassert.New(t)

	assert.Equal(regimeNearFirst, regimeOf(0, 1))
	assert.Equal(regimeNearFirst, regimeOf(1, 2))
	assert.Equal(regimeNearFirst, regimeOf(9, 10000))
	assert.Equal(regimeInterior, regimeOf(11, 10000))
	assert.Equal(regimeInterior, regimeOf(9989, 10000))
	assert.Equal(regimeNearLast, regimeOf(9991, 10000))
	assert.Equal("interior", regimeInterior.String())
	assert.Equal("near-last", regimeNearLast.String())
}
