package algo

import (
	"golang.org/x/exp/constraints"

	"github.com/leisurelyrcxf/lazyselect/consts"
	"github.com/leisurelyrcxf/lazyselect/utils"
)

type regime int

const (
	regimeInterior regime = iota
	regimeNearFirst
	regimeNearLast
)

func (r regime) String() string {
	switch r {
	case regimeNearFirst:
		return "near-first"
	case regimeNearLast:
		return "near-last"
	default:
		return "interior"
	}
}

// regimeOf compares k against the real-valued thresholds n^(1/4) and
// n - n^(1/4); near-first wins when both apply.
func regimeOf(k, n int) regime {
	threshold := utils.Pow(n, consts.RegimeExponent)
	switch fk := float64(k); {
	case fk < threshold:
		return regimeNearFirst
	case fk > float64(n)-threshold:
		return regimeNearLast
	default:
		return regimeInterior
	}
}

type classification[E constraints.Ordered] struct {
	regime       regime
	candidates   []E
	rankA, rankB int
}

// offset is the number of input elements ranked below every candidate.
// Near-first candidate sets have no lower bound.
func (c *classification[E]) offset() int {
	if c.regime == regimeNearFirst {
		return 0
	}
	return c.rankA
}

// classify makes a single pass over s counting the elements below a and
// below b and collecting the candidate set of the regime of k.
func classify[E constraints.Ordered](s []E, k int, br bracket[E], counter *Counter) classification[E] {
	var (
		a, b        = br.a, br.b
		c           = classification[E]{regime: regimeOf(k, len(s))}
		comparisons = 0
	)
	c.candidates = make([]E, 0, utils.MinInt(len(s), int(candidateSetBound(len(s)))+1))
	for _, e := range s {
		comparisons += 2
		if e < a {
			c.rankA++
		}
		if e < b {
			c.rankB++
		}

		switch c.regime {
		case regimeNearFirst:
			if e <= b {
				comparisons++
				c.candidates = append(c.candidates, e)
			}
		case regimeNearLast:
			if e >= a {
				comparisons++
				c.candidates = append(c.candidates, e)
			}
		default:
			if a <= e && e <= b {
				comparisons += 2
				c.candidates = append(c.candidates, e)
			}
		}
	}
	counter.Add(comparisons)
	return c
}

// restrict returns the elements of s within [a, b], a second pass
// independent of the candidate set.
func restrict[E constraints.Ordered](s []E, a, b E, counter *Counter) []E {
	restricted := make([]E, 0, len(s))
	for _, e := range s {
		if a <= e && e <= b {
			restricted = append(restricted, e)
		}
	}
	counter.Add(2 * len(s))
	return restricted
}

// restrictOpen returns the elements of s strictly within (a, b) together
// with the number of elements equal to a and to b.
func restrictOpen[E constraints.Ordered](s []E, a, b E, counter *Counter) (inner []E, equalA, equalB int) {
	inner = make([]E, 0, len(s))
	for _, e := range s {
		switch {
		case e == a:
			equalA++
		case e == b:
			equalB++
		default:
			inner = append(inner, e)
		}
	}
	counter.Add(2 * len(s))
	return inner, equalA, equalB
}
