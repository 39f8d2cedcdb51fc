package fails

import (
	"errors"
	"maps"

	"github.com/quintans/slist/internal/lib/values"
)

// Valuer is an error that carries key/value context.
type Valuer interface {
	error
	Values() map[string]any
	With(args ...any) Valuer
}

func New(msg string, args ...any) Valuer {
	return &Error{msg: msg, values: values.Fold(args...)}
}

func NewWithErr(err error, msg string, args ...any) Valuer {
	return &Error{cause: err, msg: msg, values: values.Fold(args...)}
}

type Error struct {
	cause  error
	msg    string
	values values.M
}

func (e *Error) Error() string {
	s := e.msg
	if v := values.Render(e.values); v != "" {
		s += " " + v
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Values merges the values of e with the ones found down its cause chain.
// Outer values win on key clashes.
func (e *Error) Values() map[string]any {
	m := map[string]any{}
	var inner Valuer
	if errors.As(e.cause, &inner) {
		maps.Copy(m, inner.Values())
	}
	maps.Copy(m, e.values)
	return m
}

func (e *Error) With(args ...any) Valuer {
	maps.Copy(e.values, values.Fold(args...))
	return e
}
