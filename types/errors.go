package types

import "fmt"

type ErrorKind int

const (
	Unbalanced ErrorKind = iota
	NotFound
	NotAFunction
	MalformedSpecialForm
	InvalidKey
	WrongType
)

func (k ErrorKind) String() string {
	switch k {
	case Unbalanced:
		return "unbalanced"
	case NotFound:
		return "not found"
	case NotAFunction:
		return "not a function"
	case MalformedSpecialForm:
		return "malformed special form"
	case InvalidKey:
		return "invalid key"
	case WrongType:
		return "wrong type"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the failure value of the reader, environment and evaluator.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrUnbalanced           = &Error{Unbalanced, "unbalanced"}
	ErrNotFound             = &Error{NotFound, "not found"}
	ErrNotAFunction         = &Error{NotAFunction, "not a function"}
	ErrMalformedSpecialForm = &Error{MalformedSpecialForm, "malformed special form"}
	ErrInvalidKey           = &Error{InvalidKey, "invalid key"}
	ErrWrongType            = &Error{WrongType, "wrong type"}
)

func errorf(kind ErrorKind, format string, args ...interface{}) error {
	return &Error{kind, fmt.Sprintf(format, args...)}
}

func Unbalancedf(format string, args ...interface{}) error {
	return errorf(Unbalanced, "unbalanced: "+format, args...)
}

func NotFoundf(name string) error {
	return errorf(NotFound, "'%s' not found", name)
}

func NotAFunctionf(format string, args ...interface{}) error {
	return errorf(NotAFunction, format, args...)
}

func Malformedf(format string, args ...interface{}) error {
	return errorf(MalformedSpecialForm, format, args...)
}

func InvalidKeyf(format string, args ...interface{}) error {
	return errorf(InvalidKey, format, args...)
}

func WrongTypef(format string, args ...interface{}) error {
	return errorf(WrongType, format, args...)
}
