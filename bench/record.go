package bench

import (
	"time"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/leisurelyrcxf/lazyselect/utils"
)

type Algorithm string

const (
	AlgorithmQuickSelect Algorithm = "quickselect"
	AlgorithmLazySelect  Algorithm = "lazyselect"
)

// Record is the outcome of one selection.
type Record struct {
	Size        int
	Run         int
	Target      string
	K           int
	Comparisons int64
	Expected    float64
	Elapsed     time.Duration
	Attempts    int
}

// Summary averages the records of one size and target.
type Summary struct {
	Size            int
	Target          string
	Runs            int
	MeanComparisons float64
	Expected        float64
	MeanElapsed     time.Duration
}

type targetTotals struct {
	comparisons int64
	elapsed     time.Duration
	runs        int
	expected    float64
}

// aggregator keeps per-target totals keyed by array size in ascending order.
type aggregator struct {
	targets []Target
	sizes   *treemap.Map
}

func newAggregator(targets []Target) *aggregator {
	return &aggregator{
		targets: targets,
		sizes:   treemap.NewWithIntComparator(),
	}
}

func (a *aggregator) add(rec Record) {
	var totals map[string]*targetTotals
	if v, ok := a.sizes.Get(rec.Size); ok {
		totals = v.(map[string]*targetTotals)
	} else {
		totals = make(map[string]*targetTotals, len(a.targets))
		a.sizes.Put(rec.Size, totals)
	}
	t := totals[rec.Target]
	if t == nil {
		t = &targetTotals{}
		totals[rec.Target] = t
	}
	t.comparisons += rec.Comparisons
	t.elapsed += rec.Elapsed
	t.expected = rec.Expected
	t.runs++
}

// summaries returns the averages of size in target order.
func (a *aggregator) summaries(size int) []Summary {
	v, ok := a.sizes.Get(size)
	if !ok {
		return nil
	}
	totals := v.(map[string]*targetTotals)
	summaries := make([]Summary, 0, len(a.targets))
	for _, target := range a.targets {
		t := totals[target.Name]
		if t == nil || t.runs == 0 {
			continue
		}
		summaries = append(summaries, Summary{
			Size:            size,
			Target:          target.Name,
			Runs:            t.runs,
			MeanComparisons: utils.Mean(t.comparisons, t.runs),
			Expected:        t.expected,
			MeanElapsed:     t.elapsed / time.Duration(t.runs),
		})
	}
	return summaries
}

// allSummaries returns the averages of every size in ascending size order.
func (a *aggregator) allSummaries() []Summary {
	var summaries []Summary
	it := a.sizes.Iterator()
	for it.Next() {
		summaries = append(summaries, a.summaries(it.Key().(int))...)
	}
	return summaries
}
