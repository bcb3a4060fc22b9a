package algo

import (
	"golang.org/x/exp/constraints"

	"github.com/leisurelyrcxf/lazyselect/errors"
	"github.com/leisurelyrcxf/lazyselect/utils"
)

// Selector finds the element of rank k (0-based) of an unordered input and
// counts the element comparisons it performs. Implementations are not safe
// for concurrent use.
type Selector[E constraints.Ordered] interface {
	Select(input []E, k int) (E, error)
	ComparisonCount() int64
	ResetComparisonCount()
}

// Counter accumulates element comparisons. Comparisons spent on sorting are
// not counted.
type Counter struct {
	count int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Add(delta int) {
	c.count += int64(delta)
}

func (c *Counter) Count() int64 {
	return c.count
}

func (c *Counter) Reset() {
	c.count = 0
}

// SelectWithRetry reruns s.Select while it fails with a retryable error,
// i.e. while the sampled bracket missed the target. It returns the number of
// attempts made.
func SelectWithRetry[E constraints.Ordered](s Selector[E], input []E, k, maxAttempts int) (result E, attempts int, err error) {
	err = utils.WithRetry(maxAttempts, func(attempt int) error {
		var selectErr error
		attempts = attempt
		result, selectErr = s.Select(input, k)
		return selectErr
	}, errors.IsRetryableErr)
	return result, attempts, err
}

func checkSelectArgs(n, k int) error {
	if n == 0 {
		return errors.Annotatef(errors.ErrInvalidArgument, "empty input")
	}
	if k < 0 || k >= n {
		return errors.Annotatef(errors.ErrInvalidArgument, "k(%d) out of range [0, %d)", k, n)
	}
	return nil
}
