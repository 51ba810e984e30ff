package xerrors

import (
	"errors"
	"slices"
	"strings"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindInternal   Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	Cause   error
	// Fields maps a field name to what is wrong with it. only set for KindValidation.
	Fields map[string]string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			b.WriteString(e.Fields[k])
		}
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

func Internal(opts ...Option) *Error { return newErr(KindInternal, "internal error", opts) }

func Validation(fields map[string]string, opts ...Option) *Error {
	e := newErr(KindValidation, "invalid input", opts)
	e.Fields = fields
	return e
}

func newErr(kind Kind, msg string, opts []Option) *Error {
	e := &Error{Kind: kind, Message: msg}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithCause(err error) Option    { return func(e *Error) { e.Cause = err } }

func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// IsValidation reports whether err wraps a validation error.
func IsValidation(err error) bool {
	e := As(err)
	return e != nil && e.Kind == KindValidation
}
