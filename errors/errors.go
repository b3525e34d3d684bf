package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error carries an ErrCode together with the context that the code itself
// deliberately omits. Build one at API boundaries, not on hot paths.
type Error struct {
	Value  any
	Cause  error
	Detail string
	Path   []string
	Code   ErrCode
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(e.Code.Phase().String())
	b.WriteString("] ")
	b.WriteString(e.Code.String())

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches an *Error or a bare ErrCode with the same code word.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case *Error:
		return e.Code == t.Code
	case ErrCode:
		return e.Code == t
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// Describe starts an *Error for code.
func Describe(code ErrCode) *Builder {
	return &Builder{err: Error{Code: code}}
}

// Path sets the location, e.g. module and export name.
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Wrap attaches code and detail to cause.
func Wrap(code ErrCode, cause error, detail string) *Error {
	return &Error{
		Code:   code,
		Cause:  cause,
		Detail: detail,
	}
}

// FuncNotFound reports a missing export.
func FuncNotFound(module, name string) *Error {
	return &Error{
		Code: New(KindFuncNotFound),
		Path: []string{module, name},
	}
}

// HostFailure embeds a host error number under CategoryUserLevelError.
func HostFailure(n uint32, cause error) *Error {
	return &Error{
		Code:  FromUint32(n),
		Cause: cause,
		Value: n,
	}
}

// CodeOf returns the first ErrCode found in err's chain. A nil error is
// KindSuccess; an error without a code is KindRuntimeError.
func CodeOf(err error) ErrCode {
	if err == nil {
		return ErrCode{}
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	var c ErrCode
	if stderrors.As(err, &c) {
		return c
	}
	return New(KindRuntimeError)
}
