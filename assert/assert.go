// Licensed under the MIT (MIT-LICENSE.txt) license.

package assert

import (
	"fmt"
)

func Must(b bool) {
	if b {
		return
	}
	panic("assertion failed")
}

func Mustf(b bool, format string, args ...interface{}) {
	if b {
		return
	}
	panic(fmt.Sprintf("assertion failed: "+format, args...))
}

func MustNoError(err error) {
	if err == nil {
		return
	}
	panic(fmt.Sprintf("'%s', error happens, assertion failed", err.Error()))
}
