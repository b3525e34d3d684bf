// Package wasmerrcode is the error-code core of a WebAssembly runtime.
//
// Runtime code returns a 4-byte errors.ErrCode by value from every call,
// instruction, and validation check. The packages are organized leaves first:
//
//	wasmerrcode/
//	├── enummap/      Dense and sparse enumerator-to-string tables
//	├── errors/       ErrCode, authored Phase/Kind tables, *Error, log side channel
//	├── engine/       wazero adapter that reports failures as ErrCode
//	└── cmd/errcode/  Decode raw codes, list tables, browse interactively
//
// # Quick Start
//
//	ec := errors.New(errors.KindMalformedSection)
//	ec.Category() // CategoryWASM
//	ec.Phase()    // PhaseLoading
//	ec.Uint32()   // 0x00000105
//
//	host := errors.FromUint32(42) // CategoryUserLevelError, code 42
//	host.Is(errors.KindUserDefError) // true
//
// # Diagnostics
//
// An ErrCode never carries text. Attach context by logging it:
//
//	errors.SetLogger(zapLogger)
//	return errors.Report(ec, "call", zap.String("func", name))
//
// or, at an API boundary, by building an *errors.Error around it.
//
// # Thread Safety
//
// ErrCode is a plain value. The lookup tables are built during package
// initialisation and only read afterwards, so every function here is safe for
// concurrent use.
package wasmerrcode
