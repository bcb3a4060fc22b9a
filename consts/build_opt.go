package consts

type buildOpt bool

func (opt buildOpt) IsDebug() bool {
	return bool(opt)
}

const (
	buildOptDebug   buildOpt = true
	buildOptRelease buildOpt = false
)

// BuildOption enables the extra invariant checks of the selectors in debug builds.
var BuildOption = buildOptRelease
