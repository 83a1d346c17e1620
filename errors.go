package warnings

import (
	stderrs "errors"
	"fmt"
	"strings"
)

// ErrInvalidArgType matches every *ArgTypeError through errors.Is.
var ErrInvalidArgType = stderrs.New("invalid argument type")

// ArgTypeCode is the machine-readable code carried by *ArgTypeError.
const ArgTypeCode = "ERR_INVALID_ARG_TYPE"

// ArgTypeError reports a malformed call to Emit. It is a programmer error and
// is always returned to the caller.
type ArgTypeError struct {
	Param    string
	Expected []string
	Actual   any
}

func newArgTypeError(param string, actual any, expected ...string) *ArgTypeError {
	return &ArgTypeError{Param: param, Expected: expected, Actual: actual}
}

func (e *ArgTypeError) Error() string {
	var want string
	switch len(e.Expected) {
	case 0:
	case 1:
		want = "of type " + e.Expected[0]
	default:
		want = "one of type " + strings.Join(e.Expected[:len(e.Expected)-1], ", ") +
			" or " + e.Expected[len(e.Expected)-1]
	}
	return fmt.Sprintf("The %q argument must be %s. Received %s", e.Param, want, describe(e.Actual))
}

func (e *ArgTypeError) Code() string { return ArgTypeCode }

func (e *ArgTypeError) Is(target error) bool { return target == ErrInvalidArgType }

func describe(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("type %T (%v)", v, v)
}
