package bench

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	testifyassert "github.com/stretchr/testify/assert"

	"github.com/leisurelyrcxf/lazyselect/errors"
)

func TestDefaultConfig(t *testing.T) {
	assert := testifyassert.New(t)

	cfg := DefaultConfig()
	assert.NoError(cfg.Validate())
	sizes := cfg.SizeList()
	assert.Len(sizes, 10)
	assert.Equal(10000, sizes[0])
	assert.Equal(5120000, sizes[len(sizes)-1])

	ks := make([]int, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		ks = append(ks, target.K(10000))
	}
	assert.Equal([]int{1, 2500, 5000}, ks)
	assert.Equal(0, Target{Name: "First", Offset: 1}.K(1))
	assert.Equal(4, Target{Name: "Max", Fraction: 1}.K(5))
}

func TestLoadConfig(t *testing.T) {
	assert := testifyassert.New(t)

	path := filepath.Join(t.TempDir(), "bench.yaml")
	assert.NoError(ioutil.WriteFile(path, []byte(`
sizes: [1000, 4000]
runs: 7
seed: 42
targets:
  - name: Median
    fraction: 0.5
`), 0644))
	cfg, err := LoadConfig(path)
	assert.NoError(err)
	assert.Equal([]int{1000, 4000}, cfg.SizeList())
	assert.Equal(7, cfg.Runs)
	assert.Equal(uint64(42), cfg.Seed)
	assert.Equal([]Target{{Name: "Median", Fraction: 0.5}}, cfg.Targets)
	assert.Equal(DefaultConfig().LazyCSV, cfg.LazyCSV)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	errors.AssertIsErr(assert, err, errors.ErrInvalidConfig)

	assert.NoError(ioutil.WriteFile(path, []byte("runs: [1"), 0644))
	_, err = LoadConfig(path)
	errors.AssertIsErr(assert, err, errors.ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	assert := testifyassert.New(t)

	for name, mutate := range map[string]func(c *Config){
		"zero runs":       func(c *Config) { c.Runs = 0 },
		"no targets":      func(c *Config) { c.Targets = nil },
		"unnamed target":  func(c *Config) { c.Targets = []Target{{Fraction: 0.5}} },
		"fraction":        func(c *Config) { c.Targets = []Target{{Name: "x", Fraction: 1.5}} },
		"growth":          func(c *Config) { c.Growth = 1 },
		"size range":      func(c *Config) { c.MaxSize = c.MinSize - 1 },
		"negative size":   func(c *Config) { c.Sizes = []int{10, 0} },
		"max attempts":    func(c *Config) { c.MaxAttempts = 0 },
		"empty csv names": func(c *Config) { c.LazyCSV = "" },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)
		errors.AssertIsErr(assert, cfg.Validate(), errors.ErrInvalidConfig)
		_, err := NewRunner(cfg)
		assert.Error(err, name)
	}
}
