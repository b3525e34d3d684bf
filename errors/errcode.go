package errors

import "fmt"

const (
	categoryShift = 24
	codeMask      = 0x00FFFFFF
	phaseShift    = 8
	phaseMask     = 0x0F
)

// ErrCode is a packed 32-bit error code: category in bits 31..24, code in
// bits 23..0. The zero value is KindSuccess.
//
// ErrCode is returned by value and compared with ==, which compares the full
// word. Use Is to compare against a Kind.
type ErrCode struct {
	num uint32
}

// New wraps an authored kind. The category is CategoryWASM.
func New(k Kind) ErrCode {
	return ErrCode{num: uint32(k)}
}

// FromUint32 embeds a host error code under CategoryUserLevelError.
// Bits above the low 24 of n are discarded without notice.
func FromUint32(n uint32) ErrCode {
	return Make(CategoryUserLevelError, n)
}

// Make packs c and n into a code. Bits above the low 24 of n are discarded
// without notice, so Make(c, 0x01000005).Code() == 5.
func Make(c Category, n uint32) ErrCode {
	return ErrCode{num: uint32(c)<<categoryShift | n&codeMask}
}

// FromRaw rebuilds a code from its Uint32 form.
func FromRaw(n uint32) ErrCode {
	return ErrCode{num: n}
}

// Category returns bits 31..24.
func (c ErrCode) Category() Category {
	return Category(c.num >> categoryShift)
}

// Code returns bits 23..0.
func (c ErrCode) Code() uint32 {
	return c.num & codeMask
}

// Kind returns the code as an authored kind. Every non-WASM category collapses
// to KindUserDefError; use Code to read the host code. The result need not
// have a table entry.
func (c ErrCode) Kind() Kind {
	if c.Category() != CategoryWASM {
		return KindUserDefError
	}
	return Kind(c.Code())
}

// Phase returns the phase nibble for CategoryWASM codes and PhaseUserDefined
// otherwise.
func (c ErrCode) Phase() Phase {
	if c.Category() != CategoryWASM {
		return PhaseUserDefined
	}
	return Phase(c.Code()>>phaseShift) & phaseMask
}

// Is reports whether c.Kind() == k. Two codes with different user categories
// are unequal as words but both match KindUserDefError.
func (c ErrCode) Is(k Kind) bool {
	return c.Kind() == k
}

// Equal reports whether c and o are the same word.
func (c ErrCode) Equal(o ErrCode) bool {
	return c.num == o.num
}

// OK reports whether c is KindSuccess.
func (c ErrCode) OK() bool {
	return c.num == 0
}

// Uint32 returns the packed word, category in the top byte.
func (c ErrCode) Uint32() uint32 {
	return c.num
}

func (c ErrCode) String() string {
	if c.Category() != CategoryWASM {
		return fmt.Sprintf("%s 0x%06x", c.Category(), c.Code())
	}
	return c.Kind().String()
}

// Error lets a code travel through error chains. A zero ErrCode is still a
// non-nil error once boxed; convert with Err.
func (c ErrCode) Error() string {
	return c.String()
}

// Err returns nil for KindSuccess and c otherwise.
func (c ErrCode) Err() error {
	if c.OK() {
		return nil
	}
	return c
}
