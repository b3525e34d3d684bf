// Package errors provides the compact error code used on the runtime's hot
// return paths, and the structured error built from it at API boundaries.
//
// An ErrCode is a single 32-bit word:
//
//	31      24 23           12 11    8 7         0
//	+---------+---------------+-------+-----------+
//	| category|            code (24 bits)         |
//	+---------+---------------+-------+-----------+
//	                          | phase |   (CategoryWASM only)
//
// CategoryWASM codes are runtime-internal and map to a named Kind whose value
// also carries the Phase in which the error was raised. Any other category is a
// host or user error space whose 24-bit code is opaque:
//
//	func (m *Machine) div(a, b int32) (int32, errors.ErrCode) {
//		if b == 0 {
//			return 0, errors.New(errors.KindDivideByZero)
//		}
//		return a / b, errors.ErrCode{}
//	}
//
//	if _, ec := m.div(1, 0); ec.Is(errors.KindDivideByZero) {
//		fmt.Println(ec.Phase()) // "execution"
//	}
//
// ErrCode holds no text. Context such as which function failed travels on the
// logging side channel (Report, Field) or in an *Error built at the boundary:
//
//	err := errors.Describe(ec).
//		Path("env", "divide").
//		Detail("divisor was %d", b).
//		Build()
//
// Display strings for phases and kinds come from lookup tables built once at
// package initialisation; formatting never fails.
package errors
