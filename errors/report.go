package errors

import (
	"reflect"
)

const (
	// internalCode is reported for errors that do not carry a registered
	// code. Their message is hidden outside of debug mode.
	internalCode uint32 = 1
	internalLog         = "internal error"
)

type coder interface {
	Code() uint32
}

// CodeOf returns the registered code of err, unwrapping it as needed.
// Zero means there is no error.
func CodeOf(err error) uint32 {
	if errIsNil(err) {
		return 0
	}
	for {
		if c, ok := err.(coder); ok {
			return c.Code()
		}
		c, ok := err.(causer)
		if !ok {
			return internalCode
		}
		err = c.Cause()
	}
}

// Report returns the code of err and a message that can be shown to the
// caller. Panics and errors without a registered code are reported as
// internal errors and their message is redacted unless debug is set.
func Report(err error, debug bool) (uint32, string) {
	code := CodeOf(err)
	switch {
	case code == 0:
		return 0, ""
	case debug:
		return code, err.Error()
	case code == internalCode, ErrPanic.Is(err):
		return code, internalLog
	default:
		return code, err.Error()
	}
}

// errIsNil returns true if value represented by the given error is nil.
// A typed nil pointer stored in the error interface is nil as well.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}
