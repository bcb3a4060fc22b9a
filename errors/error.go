package errors

import (
	"fmt"

	"github.com/leisurelyrcxf/lazyselect/consts"
)

type Error struct {
	Code int
	Msg  string
}

func NewError(code int, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v, err_code:%v", e.Msg, e.Code)
}

func GetErrorCode(e error) int {
	ve, ok := e.(*Error)
	if !ok || ve == nil {
		return consts.ErrCodeUnknown
	}
	return ve.Code
}

func IsInvalidArgumentErr(e error) bool {
	return GetErrorCode(e) == consts.ErrCodeInvalidArgument
}

// IsRetryableErr reports whether running the selection again with fresh
// sampling may succeed.
func IsRetryableErr(e error) bool {
	return GetErrorCode(e) == consts.ErrCodeInternalInconsistency
}
