package errors

import (
	"github.com/leisurelyrcxf/lazyselect/consts"
)

var (
	ErrInvalidArgument = &Error{
		Code: consts.ErrCodeInvalidArgument,
		Msg:  "invalid argument",
	}
	ErrInternalInconsistency = &Error{
		Code: consts.ErrCodeInternalInconsistency,
		Msg:  "internal inconsistency",
	}
	ErrSelectRetriedTooManyTimes = &Error{
		Code: consts.ErrCodeSelectRetriedTooManyTimes,
		Msg:  "select retried too many times",
	}
	ErrInvalidConfig = &Error{
		Code: consts.ErrCodeInvalidConfig,
		Msg:  "invalid config",
	}
	ErrAssertFailed = &Error{
		Code: consts.ErrCodeAssertFailed,
		Msg:  "assert failed",
	}
)
