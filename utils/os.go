package utils

import (
	"os"

	"github.com/golang/glog"
)

func MkdirIfNotExists(dir string) error {
	if DirExists(dir) {
		return nil
	}
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		glog.Errorf("[MkdirIfNotExists] can't create directory '%s', err: '%v'", dir, err)
	}
	return err
}

func DirExists(dir string) bool {
	info, err := os.Stat(dir)
	if err == nil {
		return info.IsDir()
	}
	return false
}
