package consts

const (
	ErrCodeInvalidArgument           = 1
	ErrCodeInternalInconsistency     = 2
	ErrCodeSelectRetriedTooManyTimes = 3
	ErrCodeInvalidConfig             = 10
	ErrCodeAssertFailed              = 100
	ErrCodeUnknown                   = 1111
)
