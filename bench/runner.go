package bench

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/leisurelyrcxf/lazyselect/algo"
	"github.com/leisurelyrcxf/lazyselect/consts"
	"github.com/leisurelyrcxf/lazyselect/errors"
	"github.com/leisurelyrcxf/lazyselect/utils"
)

// AlgorithmReport totals the trials of one algorithm.
type AlgorithmReport struct {
	Algorithm        Algorithm
	Trials           int
	TotalComparisons int64
	TotalElapsed     time.Duration
	Retries          int
	Failures         int
	Mismatches       int
	Summaries        []Summary
}

type Report struct {
	Quick AlgorithmReport
	Lazy  AlgorithmReport
}

type algorithmRun struct {
	selector       algo.Selector[int]
	expectedFactor float64
	sink           *csvSink
	aggregator     *aggregator
	report         *AlgorithmReport
}

// Runner benchmarks quickselect against lazy select over random
// permutations of 0..n-1, for which the element of rank k is k itself.
type Runner struct {
	cfg Config
	rnd *rand.Rand

	// ProgressOutput receives the progress bar when Config.Progress is set.
	ProgressOutput io.Writer
}

func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		cfg:            cfg,
		rnd:            utils.NewRand(cfg.Seed),
		ProgressOutput: os.Stderr,
	}, nil
}

// Run writes the CSV files into the configured output directory.
func (r *Runner) Run() (_ *Report, err error) {
	if err := utils.MkdirIfNotExists(r.cfg.OutputDir); err != nil {
		return nil, errors.Annotatef(errors.ErrInvalidConfig, "can't create output dir '%s': '%v'", r.cfg.OutputDir, err)
	}
	quickFile, err := os.Create(filepath.Join(r.cfg.OutputDir, r.cfg.QuickCSV))
	if err != nil {
		return nil, err
	}
	defer closeFile(quickFile, &err)
	lazyFile, err := os.Create(filepath.Join(r.cfg.OutputDir, r.cfg.LazyCSV))
	if err != nil {
		return nil, err
	}
	defer closeFile(lazyFile, &err)
	return r.RunTo(quickFile, lazyFile)
}

func closeFile(f *os.File, err *error) {
	if closeErr := f.Close(); closeErr != nil && *err == nil {
		*err = closeErr
	}
}

// RunTo runs every configured trial, writing quickselect rows to quickOut
// and lazy select rows to lazyOut.
func (r *Runner) RunTo(quickOut, lazyOut io.Writer) (*Report, error) {
	report := &Report{
		Quick: AlgorithmReport{Algorithm: AlgorithmQuickSelect},
		Lazy:  AlgorithmReport{Algorithm: AlgorithmLazySelect},
	}
	quick, err := r.newAlgorithmRun(algo.NewQuickSelector[int](r.rnd, nil), consts.QuickSelectExpectedComparisonFactor, quickOut, &report.Quick)
	if err != nil {
		return nil, err
	}
	lazy, err := r.newAlgorithmRun(algo.NewLazySelector[int](r.rnd, nil), consts.LazySelectExpectedComparisonFactor, lazyOut, &report.Lazy)
	if err != nil {
		return nil, err
	}
	runs := []*algorithmRun{quick, lazy}

	sizes := r.cfg.SizeList()
	var bar *pb.ProgressBar
	if r.cfg.Progress {
		bar = pb.New(len(sizes) * r.cfg.Runs)
		bar.Output = r.ProgressOutput
		bar.Prefix("Benchmarking...")
		bar.Start()
		defer bar.Finish()
	}

	watch := StartStopwatch()
	for _, size := range sizes {
		for run := 1; run <= r.cfg.Runs; run++ {
			input := utils.RandomSequence(r.rnd, size)
			for _, ar := range runs {
				for _, target := range r.cfg.Targets {
					if err := ar.trial(input, size, run, target, r.cfg.MaxAttempts); err != nil {
						return nil, err
					}
				}
			}
			if bar != nil {
				bar.Increment()
			}
		}
		for _, ar := range runs {
			for _, sum := range ar.aggregator.summaries(size) {
				if err := ar.sink.writeSummary(sum); err != nil {
					return nil, err
				}
			}
			if err := ar.sink.flush(); err != nil {
				return nil, err
			}
		}
		if glog.V(1) {
			glog.Infof("[Runner][RunTo] size %d finished %d runs in %s", size, r.cfg.Runs, watch.Lap())
		}
	}
	for _, ar := range runs {
		ar.report.Summaries = ar.aggregator.allSummaries()
	}
	return report, nil
}

func (r *Runner) newAlgorithmRun(selector algo.Selector[int], expectedFactor float64, out io.Writer, report *AlgorithmReport) (*algorithmRun, error) {
	sink, err := newCSVSink(out)
	if err != nil {
		return nil, err
	}
	return &algorithmRun{
		selector:       selector,
		expectedFactor: expectedFactor,
		sink:           sink,
		aggregator:     newAggregator(r.cfg.Targets),
		report:         report,
	}, nil
}

func (ar *algorithmRun) trial(input []int, size, run int, target Target, maxAttempts int) error {
	k := target.K(size)
	ar.selector.ResetComparisonCount()
	watch := StartStopwatch()
	v, attempts, err := algo.SelectWithRetry(ar.selector, input, k, maxAttempts)
	elapsed := watch.Elapsed()

	ar.report.Trials++
	ar.report.Retries += attempts - 1
	ar.report.TotalElapsed += elapsed
	ar.report.TotalComparisons += ar.selector.ComparisonCount()
	switch {
	case errors.IsInvalidArgumentErr(err):
		return errors.Annotatef(err, "%s size %d run %d target %s", ar.report.Algorithm, size, run, target.Name)
	case err != nil:
		ar.report.Failures++
		glog.Errorf("[Runner][trial] %s size %d run %d target %s(k=%d) failed: '%v'", ar.report.Algorithm, size, run, target.Name, k, err)
	case v != k:
		ar.report.Mismatches++
		glog.Errorf("[Runner][trial] %s size %d run %d target %s selected %d, expect %d", ar.report.Algorithm, size, run, target.Name, v, k)
	}

	rec := Record{
		Size:        size,
		Run:         run,
		Target:      target.Name,
		K:           k,
		Comparisons: ar.selector.ComparisonCount(),
		Expected:    math.Round(ar.expectedFactor*float64(size)*1000) / 1000,
		Elapsed:     elapsed,
		Attempts:    attempts,
	}
	ar.aggregator.add(rec)
	return ar.sink.writeRecord(rec)
}
