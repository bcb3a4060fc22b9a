package algo

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"github.com/leisurelyrcxf/lazyselect/consts"
	"github.com/leisurelyrcxf/lazyselect/utils"
)

func sampleSize(n int) int {
	return utils.CeilPow(n, consts.SampleExponent)
}

// candidateSetBound is the largest candidate set answered without recursion.
func candidateSetBound(n int) float64 {
	return consts.CandidateSetFactor*utils.Pow(n, consts.SampleExponent) + consts.CandidateSetSlack
}

// sampleAndSort draws ⌈n^(3/4)⌉ elements of s uniformly with replacement
// and returns them sorted.
func sampleAndSort[E constraints.Ordered](rnd *rand.Rand, s []E) []E {
	sample := make([]E, sampleSize(len(s)))
	for i := range sample {
		sample[i] = s[rnd.Intn(len(s))]
	}
	slices.Sort(sample)
	return sample
}

// bracket holds the bounds a <= b read from the sorted sample at the
// 1-based sample positions l <= h.
type bracket[E constraints.Ordered] struct {
	a, b E
	l, h int
}

// estimateRange brackets the expected sample position k*n^(-1/4) of the
// target by ±√n positions, clamped into [1, m].
func estimateRange[E constraints.Ordered](k, n int, sortedSample []E) bracket[E] {
	var (
		m     = len(sortedSample)
		x     = int(float64(k) / utils.Pow(n, consts.RegimeExponent))
		slack = int(math.Sqrt(float64(n)))
		l     = utils.ClampInt(utils.MaxInt(x-slack, 0), 1, m)
		h     = utils.ClampInt(utils.MinInt(x+slack, m-1), 1, m)
	)
	l = utils.MinInt(l, h)
	return bracket[E]{
		a: sortedSample[l-1],
		b: sortedSample[h-1],
		l: l,
		h: h,
	}
}
