package algo

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"github.com/leisurelyrcxf/lazyselect/assert"
	"github.com/leisurelyrcxf/lazyselect/utils"
)

// QuickSelector is randomized quickselect with a three-way partition, the
// baseline the lazy selector is measured against. Each element classified
// against a pivot counts as one comparison.
type QuickSelector[E constraints.Ordered] struct {
	rnd     *rand.Rand
	counter *Counter
}

func NewQuickSelector[E constraints.Ordered](rnd *rand.Rand, counter *Counter) *QuickSelector[E] {
	if rnd == nil {
		rnd = utils.NewRand(0)
	}
	if counter == nil {
		counter = NewCounter()
	}
	return &QuickSelector[E]{
		rnd:     rnd,
		counter: counter,
	}
}

func (s *QuickSelector[E]) ComparisonCount() int64 {
	return s.counter.Count()
}

func (s *QuickSelector[E]) ResetComparisonCount() {
	s.counter.Reset()
}

// Select partitions a private copy of input, input itself is not modified.
func (s *QuickSelector[E]) Select(input []E, k int) (E, error) {
	if err := checkSelectArgs(len(input), k); err != nil {
		var zero E
		return zero, err
	}
	return s.kthMin(slices.Clone(input), k), nil
}

func (s *QuickSelector[E]) kthMin(a []E, k int) E {
	assert.Must(k < len(a) && k >= 0)
	if len(a) == 1 {
		return a[0]
	}
	if k == 0 {
		ret := a[0]
		for _, ele := range a[1:] {
			if ele < ret {
				ret = ele
			}
		}
		s.counter.Add(len(a) - 1)
		return ret
	}
	left, right := s.threeWayPartition(a, 0, len(a)-1, s.rnd.Intn(len(a)))
	left += 1
	right -= 1
	if k < left {
		return s.kthMin(a[:left], k)
	}
	if k > right {
		return s.kthMin(a[right+1:], k-right-1)
	}
	assert.Must(a[left] == a[right])
	return a[left]
}

// threeWayPartition rearranges a[i..j] into < pivot, == pivot, > pivot and
// returns the last index of the first part and the first of the last.
func (s *QuickSelector[E]) threeWayPartition(a []E, i, j, pivotIdx int) (left, right int) {
	pivot := a[pivotIdx]
	low, cur, high := i, i, j
	for cur <= high {
		switch {
		case a[cur] > pivot:
			a[cur], a[high] = a[high], a[cur]
			high--
		case a[cur] < pivot:
			a[cur], a[low] = a[low], a[cur]
			low++
			cur++
		default:
			cur++
		}
	}
	s.counter.Add(j - i + 1)
	return low - 1, high + 1
}
