package bench

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	testifyassert "github.com/stretchr/testify/assert"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Sizes = []int{100, 1000}
	cfg.Runs = 3
	cfg.Seed = 1
	return cfg
}

func readCSV(t *testing.T, r io.Reader) [][]string {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		t.Fatalf("read csv failed: %v", err)
	}
	return rows
}

func TestRunner_RunTo(t *testing.T) {
	assert := testifyassert.New(t)

	runner, err := NewRunner(testConfig())
	assert.NoError(err)
	var quickOut, lazyOut bytes.Buffer
	report, err := runner.RunTo(&quickOut, &lazyOut)
	assert.NoError(err)
	assert.True(report.Healthy(), "%s\n%s", &report.Quick, &report.Lazy)
	assert.Equal(18, report.Quick.Trials)
	assert.Equal(18, report.Lazy.Trials)
	assert.Greater(report.Lazy.TotalComparisons, int64(0))

	for _, out := range []*bytes.Buffer{&quickOut, &lazyOut} {
		rows := readCSV(t, out)
		assert.Len(rows, 1+2*(3*3+3))
		assert.Equal(csvHeader, rows[0])
		assert.Equal([]string{"100", "1", "First"}, rows[1][:3])
		assert.Equal([]string{"100", "Average", "First"}, rows[10][:3])
		assert.Equal([]string{"1000", "Average", "Median"}, rows[len(rows)-1][:3])
	}

	lazy := report.Lazy.Summaries
	assert.Len(lazy, 6)
	assert.Equal(100, lazy[0].Size)
	assert.Equal(1000, lazy[5].Size)
	assert.Equal("Median", lazy[5].Target)
	assert.Equal(2000.0, lazy[5].Expected)
	assert.Equal(3386.0, report.Quick.Summaries[5].Expected)
	assert.GreaterOrEqual(lazy[5].ComparisonsPerElement(), 2.0)
	assert.Contains(report.Lazy.String(), "lazyselect: 18 trials")
	report.Log()
}

func TestRunner_Run(t *testing.T) {
	assert := testifyassert.New(t)

	cfg := testConfig()
	cfg.Sizes = []int{500}
	cfg.Runs = 2
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")
	cfg.Progress = true
	runner, err := NewRunner(cfg)
	assert.NoError(err)
	runner.ProgressOutput = io.Discard

	report, err := runner.Run()
	assert.NoError(err)
	assert.True(report.Healthy())

	for _, name := range []string{cfg.QuickCSV, cfg.LazyCSV} {
		f, err := os.Open(filepath.Join(cfg.OutputDir, name))
		if !assert.NoError(err) {
			continue
		}
		assert.Len(readCSV(t, f), 1+2*3+3)
		_ = f.Close()
	}
}

func TestStopwatch(t *testing.T) {
	assert := testifyassert.New(t)

	watch := StartStopwatch()
	time.Sleep(2 * time.Millisecond)
	lap := watch.Lap()
	assert.GreaterOrEqual(int64(lap), int64(2*time.Millisecond))
	assert.GreaterOrEqual(int64(watch.Elapsed()), int64(lap))
	assert.Less(int64(watch.Lap()), int64(lap)+int64(time.Second))
}
