package utils

import (
	"github.com/golang/glog"

	"github.com/leisurelyrcxf/lazyselect/errors"
)

var (
	RetryAnyError = func(_ error) bool {
		return true
	}
)

// WithRetry runs f up to maxAttempts times while it returns a retryable
// error. attempt starts with 1.
func WithRetry(maxAttempts int, f func(attempt int) error, isRetryable func(error) bool) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = f(attempt); err == nil {
			return nil
		}
		if !isRetryable(err) {
			if glog.V(1) {
				glog.Errorf("[WithRetry] attempt %d returned non-retryable error: '%v'", attempt, err)
			}
			return err
		}
		if glog.V(8) {
			glog.Warningf("[WithRetry] attempt %d/%d failed with error '%v', retrying...", attempt, maxAttempts, err)
		}
	}
	if glog.V(1) {
		glog.Errorf("[WithRetry] failed after %d attempts, last error: '%v'", maxAttempts, err)
	}
	return errors.Annotatef(errors.ErrSelectRetriedTooManyTimes, "%d attempts, last error: '%v'", maxAttempts, err)
}
