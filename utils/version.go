package utils

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X github.com/leisurelyrcxf/lazyselect/utils.VersionTag=...".
var (
	VersionTag = "dev"
	Revision   = "unknown"
	BuiltAt    = "unknown"
)

// VersionString show version thing
func VersionString(ver, rev, buildAt string) string {
	version := ""
	if IsDebug() {
		version += fmt.Sprintf("Debug\n")
	} else {
		version += fmt.Sprintf("Release\n")
	}
	version += fmt.Sprintf("Version:        %s\n", ver)
	version += fmt.Sprintf("Git hash:       %s\n", rev)
	version += fmt.Sprintf("Built:          %s\n", buildAt)
	version += fmt.Sprintf("Golang version: %s\n", runtime.Version())
	version += fmt.Sprintf("OS/Arch:        %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return version
}

// Version shows version thing
func Version() string {
	return VersionString(VersionTag, Revision, BuiltAt)
}
