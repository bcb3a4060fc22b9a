package utils

import "github.com/leisurelyrcxf/lazyselect/consts"

var customizedDebugFlag *bool

func SetCustomizedDebugFlag(b bool) {
	customizedDebugFlag = new(bool)
	*customizedDebugFlag = b
}

// IsDebug reports whether the selectors should verify their internal invariants.
func IsDebug() bool {
	if customizedDebugFlag != nil {
		return *customizedDebugFlag
	}
	return consts.BuildOption.IsDebug()
}
