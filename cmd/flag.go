package cmd

import (
	"flag"

	"github.com/golang/glog"

	"github.com/leisurelyrcxf/lazyselect/bench"
	"github.com/leisurelyrcxf/lazyselect/consts"
	"github.com/leisurelyrcxf/lazyselect/utils"
)

var (
	flagConfig      *string
	flagSizes       *string
	flagMinSize     *int
	flagMaxSize     *int
	flagGrowth      *int
	flagRuns        *int
	flagSeed        *uint64
	flagMaxAttempts *int
	flagOutputDir   *string
	flagQuickCSV    *string
	flagLazyCSV     *string
	flagProgress    *bool
)

func RegisterBenchFlags() {
	flagConfig = flag.String("config", "", "yaml benchmark config, flags set explicitly override it")
	flagSizes = flag.String("sizes", "", "comma separated array sizes, overrides the size range")
	flagMinSize = flag.Int("min-size", consts.DefaultBenchMinSize, "smallest array size")
	flagMaxSize = flag.Int("max-size", consts.DefaultBenchMaxSize, "largest array size")
	flagGrowth = flag.Int("growth", consts.DefaultBenchGrowth, "array size growth factor")
	flagRuns = flag.Int("runs", consts.DefaultBenchRuns, "runs per array size")
	flagSeed = flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	flagMaxAttempts = flag.Int("max-attempts", consts.DefaultMaxSelectAttempts, "lazy select attempts per trial")
	flagOutputDir = flag.String("out-dir", ".", "directory of the csv files")
	flagQuickCSV = flag.String("quick-csv", consts.DefaultQuickSelectCSV, "quickselect csv file name")
	flagLazyCSV = flag.String("lazy-csv", consts.DefaultLazySelectCSV, "lazy select csv file name")
	flagProgress = flag.Bool("progress", false, "show a progress bar")
}

// NewBenchConfig builds the config from -config, if given, and the flags
// set on the command line. Must be called after flag.Parse.
func NewBenchConfig() bench.Config {
	cfg := bench.DefaultConfig()
	if *flagConfig != "" {
		var err error
		if cfg, err = bench.LoadConfig(*flagConfig); err != nil {
			glog.Fatalf("load config '%s' failed: '%v'", *flagConfig, err)
		}
	}

	setters := map[string]func(){
		"min-size":     func() { cfg.MinSize = *flagMinSize },
		"max-size":     func() { cfg.MaxSize = *flagMaxSize },
		"growth":       func() { cfg.Growth = *flagGrowth },
		"runs":         func() { cfg.Runs = *flagRuns },
		"seed":         func() { cfg.Seed = *flagSeed },
		"max-attempts": func() { cfg.MaxAttempts = *flagMaxAttempts },
		"out-dir":      func() { cfg.OutputDir = *flagOutputDir },
		"quick-csv":    func() { cfg.QuickCSV = *flagQuickCSV },
		"lazy-csv":     func() { cfg.LazyCSV = *flagLazyCSV },
		"progress":     func() { cfg.Progress = *flagProgress },
	}
	flag.Visit(func(f *flag.Flag) {
		if set, ok := setters[f.Name]; ok {
			set()
		}
	})
	if isSizeFlagSet() {
		cfg.Sizes = nil
	}
	if *flagSizes != "" {
		sizes, err := utils.ParseIntList(*flagSizes)
		if err != nil {
			glog.Fatalf("invalid -sizes '%s': '%v'", *flagSizes, err)
		}
		cfg.Sizes = sizes
	}
	if err := cfg.Validate(); err != nil {
		glog.Fatalf("invalid benchmark config: '%v'", err)
	}
	return cfg
}

func isSizeFlagSet() (set bool) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min-size", "max-size", "growth":
			set = true
		}
	})
	return set
}
