package algo

import (
	"github.com/golang/glog"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"github.com/leisurelyrcxf/lazyselect/assert"
	"github.com/leisurelyrcxf/lazyselect/consts"
	"github.com/leisurelyrcxf/lazyselect/errors"
	"github.com/leisurelyrcxf/lazyselect/utils"
)

// LazySelector implements randomized sampling-based selection: it brackets
// the target between two elements of a sorted ⌈n^(3/4)⌉ sample, keeps the
// input elements inside the bracket and answers from them when few enough
// remain, recursing on the bracket otherwise. Expected comparisons ≈ 2n.
//
// A bracket that misses the target is reported as ErrInternalInconsistency,
// never as a wrong answer; see SelectWithRetry.
type LazySelector[E constraints.Ordered] struct {
	rnd      *rand.Rand
	counter  *Counter
	maxDepth int
}

// NewLazySelector creates a selector drawing from rnd and accumulating into
// counter. A nil rnd is replaced by a time-seeded source, a nil counter by a
// private one.
func NewLazySelector[E constraints.Ordered](rnd *rand.Rand, counter *Counter) *LazySelector[E] {
	if rnd == nil {
		rnd = utils.NewRand(0)
	}
	if counter == nil {
		counter = NewCounter()
	}
	return &LazySelector[E]{
		rnd:      rnd,
		counter:  counter,
		maxDepth: consts.DefaultMaxRecursionDepth,
	}
}

// WithMaxDepth limits the number of recursive narrowing steps.
func (s *LazySelector[E]) WithMaxDepth(maxDepth int) *LazySelector[E] {
	s.maxDepth = maxDepth
	return s
}

func (s *LazySelector[E]) ComparisonCount() int64 {
	return s.counter.Count()
}

func (s *LazySelector[E]) ResetComparisonCount() {
	s.counter.Reset()
}

// Select returns the element of rank k of input. input is not modified.
func (s *LazySelector[E]) Select(input []E, k int) (E, error) {
	if err := checkSelectArgs(len(input), k); err != nil {
		var zero E
		return zero, err
	}
	return s.selectAt(input, k, 0)
}

func (s *LazySelector[E]) selectAt(input []E, k int, depth int) (E, error) {
	var zero E
	if depth > s.maxDepth {
		return zero, errors.Annotatef(errors.ErrInternalInconsistency, "recursion depth %d exceeds %d", depth, s.maxDepth)
	}

	n := len(input)
	sample := sampleAndSort(s.rnd, input)
	br := estimateRange(k, n, sample)
	if utils.IsDebug() {
		assert.Mustf(slices.IsSorted(sample), "sample of size %d not sorted", len(sample))
		assert.Mustf(br.l >= 1 && br.l <= br.h && br.h <= len(sample), "sample positions l(%d), h(%d) out of [1, %d]", br.l, br.h, len(sample))
		assert.Must(br.a <= br.b)
	}

	c := classify(input, k, br, s.counter)
	if glog.V(10) {
		glog.Infof("[LazySelector][selectAt] depth: %d, n: %d, k: %d, sample: %d, l: %d, h: %d, regime: %s, candidates: %d, rank_a: %d, rank_b: %d",
			depth, n, k, len(sample), br.l, br.h, c.regime, len(c.candidates), c.rankA, c.rankB)
	}

	if float64(len(c.candidates)) <= candidateSetBound(n) {
		slices.Sort(c.candidates)
		adjusted := k - c.offset()
		if adjusted < 0 || adjusted >= len(c.candidates) {
			if glog.V(4) {
				glog.Warningf("[LazySelector][selectAt] bracket missed rank %d at depth %d: adjusted index %d, candidates: %d, regime: %s",
					k, depth, adjusted, len(c.candidates), c.regime)
			}
			return zero, errors.Annotatef(errors.ErrInternalInconsistency, "adjusted index %d out of candidate set [0, %d), regime: %s",
				adjusted, len(c.candidates), c.regime)
		}
		return c.candidates[adjusted], nil
	}

	restricted := restrict(input, br.a, br.b, s.counter)
	k -= c.rankA
	if k < 0 || k >= len(restricted) {
		return zero, errors.Annotatef(errors.ErrInternalInconsistency, "adjusted rank %d out of restricted input [0, %d)", k, len(restricted))
	}
	if br.a == br.b {
		return br.a, nil
	}
	if len(restricted) == n {
		// Every element lies in [a, b]: settle ties on the bounds, then
		// drop them so that the input strictly shrinks.
		inner, equalA, equalB := restrictOpen(restricted, br.a, br.b, s.counter)
		switch {
		case k < equalA:
			return br.a, nil
		case k >= len(restricted)-equalB:
			return br.b, nil
		}
		restricted, k = inner, k-equalA
	}
	if glog.V(6) {
		glog.Infof("[LazySelector][selectAt] candidate set of %d exceeds %.0f, recursing on %d elements with rank %d",
			len(c.candidates), candidateSetBound(n), len(restricted), k)
	}
	return s.selectAt(restricted, k, depth+1)
}
