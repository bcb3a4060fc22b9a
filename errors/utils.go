package errors

import (
	"errors"
	"fmt"
)

func New(s string) error {
	return errors.New(s)
}

func Errorf(format string, v ...interface{}) error {
	return fmt.Errorf(format, v...)
}

func Equal(err1, err2 error) bool {
	if err1 == err2 {
		return true
	}
	if err1 == nil || err2 == nil {
		return false
	}
	if ve1, ok := err1.(*Error); ok {
		if ve2, ok := err2.(*Error); ok {
			return ve1.Code == ve2.Code
		}
	}
	return err1.Error() == err2.Error()
}

func Wrap(err, other error) error {
	if err == nil {
		return other
	}
	if other == nil {
		return err
	}
	if ve, ok := err.(*Error); ok {
		return Annotatef(ve, "%v", other)
	}
	return Errorf("%v: %v", err, other)
}

// Annotatef appends context to err, keeping the error code of coded errors.
func Annotatef(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*Error); ok {
		return &Error{
			Code: ve.Code,
			Msg:  trimMsg(ve.Msg) + ": " + fmt.Sprintf(format, args...),
		}
	}
	return errors.New(trimMsg(err.Error()) + ": " + fmt.Sprintf(format, args...))
}

func trimMsg(msg string) string {
	if len(msg) > 1024 {
		msg = msg[:1024-256]
	}
	return msg
}
