package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Code:   New(KindFuncNotFound),
				Path:   []string{"env", "math", "div"},
				Detail: "no such export",
			},
			contains: []string{"[wasmedge runtime]", "wasm function not found", "env.math.div", "no such export"},
		},
		{
			name:     "minimal error",
			err:      &Error{Code: New(KindMemoryOutOfBounds)},
			contains: []string{"[execution]", "out of bounds memory access"},
		},
		{
			name: "error with cause",
			err: &Error{
				Code:   FromUint32(7),
				Detail: "host call",
				Cause:  stderrors.New("underlying error"),
			},
			contains: []string{"[user defined]", "user level error 0x000007", "host call", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				assert.Contains(t, msg, s)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(New(KindHostFuncError), cause, "")

	assert.ErrorIs(t, err.Unwrap(), cause)
	assert.ErrorIs(t, stderrors.Unwrap(err), cause)
	assert.ErrorIs(t, err, cause)
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Code: New(KindTypeCheckFailed),
		Path: []string{"foo"},
	}

	assert.True(t, err.Is(&Error{Code: New(KindTypeCheckFailed)}))
	assert.False(t, err.Is(&Error{Code: New(KindInvalidAlignment)}))
	assert.True(t, err.Is(New(KindTypeCheckFailed)))
	assert.False(t, err.Is(FromUint32(uint32(KindTypeCheckFailed))))
	assert.False(t, err.Is(stderrors.New("type mismatch")))

	wrapped := fmt.Errorf("validate: %w", err)
	assert.ErrorIs(t, wrapped, New(KindTypeCheckFailed))
	assert.ErrorIs(t, wrapped, &Error{Code: New(KindTypeCheckFailed)})
}

func TestBuilder(t *testing.T) {
	cause := stderrors.New("root")
	err := Describe(New(KindIncompatibleImportType)).
		Path("env", "log").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "(i32)->()", "(i64)->()").
		Build()

	assert.Equal(t, New(KindIncompatibleImportType), err.Code)
	assert.Equal(t, []string{"env", "log"}, err.Path)
	assert.Equal(t, 42, err.Value)
	assert.ErrorIs(t, err.Cause, cause)
	assert.Equal(t, "expected (i32)->(), got (i64)->()", err.Detail)

	plain := Describe(New(KindUnreachable)).Detail("100%").Build()
	assert.Equal(t, "100%", plain.Detail)
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("FuncNotFound", func(t *testing.T) {
		err := FuncNotFound("mod", "run")
		assert.True(t, err.Code.Is(KindFuncNotFound))
		assert.Equal(t, []string{"mod", "run"}, err.Path)
	})

	t.Run("HostFailure", func(t *testing.T) {
		cause := stderrors.New("EBADF")
		err := HostFailure(0x0A000009, cause)
		assert.Equal(t, CategoryUserLevelError, err.Code.Category())
		assert.Equal(t, uint32(9), err.Code.Code())
		assert.Equal(t, uint32(0x0A000009), err.Value)
		assert.ErrorIs(t, err, cause)
	})
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrCode
	}{
		{name: "nil", err: nil, want: ErrCode{}},
		{name: "bare code", err: New(KindUnreachable), want: New(KindUnreachable)},
		{name: "wrapped code", err: fmt.Errorf("call: %w", New(KindDivideByZero)), want: New(KindDivideByZero)},
		{name: "structured", err: Wrap(FromUint32(3), nil, "x"), want: FromUint32(3)},
		{
			name: "structured wins over inner code",
			err:  Wrap(New(KindHostFuncError), New(KindUnreachable), ""),
			want: New(KindHostFuncError),
		},
		{name: "foreign", err: stderrors.New("boom"), want: New(KindRuntimeError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}
