package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
)

func (r *AlgorithmReport) String() string {
	return fmt.Sprintf("%s: %s trials, %s comparisons, %s total, %d retries, %d failures, %d mismatches",
		r.Algorithm, humanize.Comma(int64(r.Trials)), humanize.Comma(r.TotalComparisons),
		r.TotalElapsed.Round(time.Millisecond), r.Retries, r.Failures, r.Mismatches)
}

// ComparisonsPerElement returns the mean comparisons of the summary divided by its size.
func (s Summary) ComparisonsPerElement() float64 {
	return s.MeanComparisons / float64(s.Size)
}

// Log writes the totals and the per-size averages of both algorithms.
func (r *Report) Log() {
	for _, ar := range []*AlgorithmReport{&r.Quick, &r.Lazy} {
		glog.Infof("[Report] %s", ar)
		for _, sum := range ar.Summaries {
			glog.Infof("[Report] %s size %s target %s: %s comparisons (%.3f/element, expected %s), %s per run",
				ar.Algorithm, humanize.Comma(int64(sum.Size)), sum.Target,
				humanize.Comma(int64(math.Round(sum.MeanComparisons))), sum.ComparisonsPerElement(),
				humanize.Comma(int64(math.Round(sum.Expected))), sum.MeanElapsed)
		}
	}
}

// Healthy reports whether every trial of both algorithms selected the right element.
func (r *Report) Healthy() bool {
	return r.Quick.Failures+r.Quick.Mismatches+r.Lazy.Failures+r.Lazy.Mismatches == 0
}
