package bench

import (
	"io/ioutil"

	"gopkg.in/yaml.v3"

	"github.com/leisurelyrcxf/lazyselect/consts"
	"github.com/leisurelyrcxf/lazyselect/errors"
	"github.com/leisurelyrcxf/lazyselect/utils"
)

// Target names a rank to select as Fraction*n + Offset, clamped to [0, n-1].
type Target struct {
	Name     string  `yaml:"name"`
	Fraction float64 `yaml:"fraction"`
	Offset   int     `yaml:"offset"`
}

func (t Target) K(n int) int {
	return utils.ClampInt(int(t.Fraction*float64(n))+t.Offset, 0, n-1)
}

type Config struct {
	// Sizes overrides the geometric progression MinSize, MinSize*Growth, ... <= MaxSize.
	Sizes   []int `yaml:"sizes"`
	MinSize int   `yaml:"min_size"`
	MaxSize int   `yaml:"max_size"`
	Growth  int   `yaml:"growth"`

	Runs    int      `yaml:"runs"`
	Targets []Target `yaml:"targets"`

	// Seed of the random source, 0 seeds from the clock.
	Seed        uint64 `yaml:"seed"`
	MaxAttempts int    `yaml:"max_attempts"`

	OutputDir string `yaml:"output_dir"`
	QuickCSV  string `yaml:"quick_csv"`
	LazyCSV   string `yaml:"lazy_csv"`
	Progress  bool   `yaml:"progress"`
}

func DefaultTargets() []Target {
	return []Target{
		{Name: "First", Offset: 1},
		{Name: "25%", Fraction: 0.25},
		{Name: "Median", Fraction: 0.5},
	}
}

func DefaultConfig() Config {
	return Config{
		MinSize:     consts.DefaultBenchMinSize,
		MaxSize:     consts.DefaultBenchMaxSize,
		Growth:      consts.DefaultBenchGrowth,
		Runs:        consts.DefaultBenchRuns,
		Targets:     DefaultTargets(),
		MaxAttempts: consts.DefaultMaxSelectAttempts,
		OutputDir:   ".",
		QuickCSV:    consts.DefaultQuickSelectCSV,
		LazyCSV:     consts.DefaultLazySelectCSV,
	}
}

// LoadConfig reads a YAML config file; keys absent from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Annotatef(errors.ErrInvalidConfig, "read '%s' failed: '%v'", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Annotatef(errors.ErrInvalidConfig, "parse '%s' failed: '%v'", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		if c.MinSize < 1 || c.MaxSize < c.MinSize {
			return errors.Annotatef(errors.ErrInvalidConfig, "size range [%d, %d] invalid", c.MinSize, c.MaxSize)
		}
		if c.Growth < 2 {
			return errors.Annotatef(errors.ErrInvalidConfig, "growth(%d) must be at least 2", c.Growth)
		}
	}
	for _, size := range c.Sizes {
		if size < 1 {
			return errors.Annotatef(errors.ErrInvalidConfig, "size(%d) must be positive", size)
		}
	}
	if c.Runs < 1 {
		return errors.Annotatef(errors.ErrInvalidConfig, "runs(%d) must be positive", c.Runs)
	}
	if len(c.Targets) == 0 {
		return errors.Annotatef(errors.ErrInvalidConfig, "no targets")
	}
	for _, target := range c.Targets {
		if target.Name == "" {
			return errors.Annotatef(errors.ErrInvalidConfig, "target without name")
		}
		if target.Fraction < 0 || target.Fraction > 1 {
			return errors.Annotatef(errors.ErrInvalidConfig, "target %s: fraction(%v) out of [0, 1]", target.Name, target.Fraction)
		}
	}
	if c.MaxAttempts < 1 {
		return errors.Annotatef(errors.ErrInvalidConfig, "max attempts(%d) must be positive", c.MaxAttempts)
	}
	if c.QuickCSV == "" || c.LazyCSV == "" {
		return errors.Annotatef(errors.ErrInvalidConfig, "csv file names must not be empty")
	}
	return nil
}

// SizeList returns the array sizes to benchmark in order.
func (c Config) SizeList() []int {
	if len(c.Sizes) > 0 {
		return c.Sizes
	}
	var sizes []int
	for size := c.MinSize; size <= c.MaxSize; size *= c.Growth {
		sizes = append(sizes, size)
	}
	return sizes
}
