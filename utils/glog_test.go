package utils

import (
	"testing"

	testifyassert "github.com/stretchr/testify/assert"

	"github.com/golang/glog"
)

func TestSetLogLevel(t *testing.T) {
	LogToStderr()
	restore := SetLogLevel(10)
	defer restore()

	glog.V(11).Infof("11_10")
	glog.V(10).Infof("10_10")

	SetLogLevel(7)
	WithLogLevel(5, func() {
		testifyassert.Equal(t, 5, GetLogLevel())
		testifyassert.False(t, bool(glog.V(6)))
	})
	testifyassert.Equal(t, 7, GetLogLevel())
}
