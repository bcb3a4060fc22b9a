package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/leisurelyrcxf/lazyselect/bench"
	"github.com/leisurelyrcxf/lazyselect/cmd"
	"github.com/leisurelyrcxf/lazyselect/utils"
)

func main() {
	cmd.RegisterBenchFlags()
	flagVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()
	if *flagVersion {
		fmt.Print(utils.Version())
		return
	}
	defer glog.Flush()

	cfg := cmd.NewBenchConfig()
	runner, err := bench.NewRunner(cfg)
	if err != nil {
		glog.Fatalf("failed to create runner: %v", err)
	}
	glog.Infof("benchmarking sizes %v, %d runs each, csv files in '%s'", cfg.SizeList(), cfg.Runs, cfg.OutputDir)
	report, err := runner.Run()
	if err != nil {
		glog.Fatalf("benchmark failed: %v", err)
	}
	report.Log()
	if !report.Healthy() {
		glog.Errorf("benchmark finished with failed or mismatched selections")
		glog.Flush()
		os.Exit(1)
	}
}
