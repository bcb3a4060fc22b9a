package utils

import (
	"flag"
	"strconv"

	"github.com/golang/glog"
)

// SetLogLevel sets glog's -v and returns a function restoring the old level.
func SetLogLevel(v int) func() {
	gFlag := flag.Lookup("v")
	old := getLogLevel(gFlag)
	setLogLevel(gFlag, v)
	return func() {
		setLogLevel(gFlag, old)
	}
}

func setLogLevel(gFlag *flag.Flag, v int) {
	if err := gFlag.Value.Set(strconv.Itoa(v)); err != nil {
		panic(err)
	}
}

func WithLogLevel(v int, f func()) {
	defer SetLogLevel(v)()
	f()
}

func GetLogLevel() int {
	return getLogLevel(flag.Lookup("v"))
}

func getLogLevel(gFlag *flag.Flag) int {
	if gFlag == nil {
		panic("flag 'v' is nil")
	}
	s := gFlag.Value.String()
	i, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return i
}

// LogToStderr routes glog output to stderr instead of log files.
func LogToStderr() {
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Warningf("[LogToStderr] can't set logtostderr: '%v'", err)
	}
}
