package errors

import (
	"fmt"
	"iter"

	"github.com/wippyai/wasm-errcode/enummap"
)

// Phase indicates which stage of the runtime raised an error.
type Phase uint8

const (
	PhaseWasmEdge      Phase = 0x00 // runtime-wide, not tied to a stage
	PhaseLoading       Phase = 0x01 // binary decoding
	PhaseValidation    Phase = 0x02 // module validation
	PhaseInstantiation Phase = 0x03 // linking and instantiation
	PhaseExecution     Phase = 0x04 // running code
	PhaseUserDefined   Phase = 0x05 // non-WASM categories
)

// Category is the top byte of an ErrCode.
type Category uint8

const (
	CategoryWASM           Category = 0x00
	CategoryUserLevelError Category = 0x01
)

// Kind enumerates the runtime-internal error codes. Bits 11..8 of each value
// hold its Phase. Values are persisted by embedders and must never change.
type Kind uint32

// Common
const (
	KindSuccess           Kind = 0x0000
	KindTerminated        Kind = 0x0001
	KindRuntimeError      Kind = 0x0002
	KindCostLimitExceeded Kind = 0x0003
	KindWrongVMWorkflow   Kind = 0x0004
	KindFuncNotFound      Kind = 0x0005
	KindAOTDisabled       Kind = 0x0006
	KindInterrupted       Kind = 0x0007
	KindNotValidated      Kind = 0x0008
	KindNonNullRequired   Kind = 0x0009
	KindSetValueToConst   Kind = 0x000A
	KindSetValueErrorType Kind = 0x000B
	KindUserDefError      Kind = 0x000C
)

// Loading
const (
	KindIllegalPath             Kind = 0x0100
	KindReadError               Kind = 0x0101
	KindUnexpectedEnd           Kind = 0x0102
	KindMalformedMagic          Kind = 0x0103
	KindMalformedVersion        Kind = 0x0104
	KindMalformedSection        Kind = 0x0105
	KindSectionSizeMismatch     Kind = 0x0106
	KindLengthOutOfBounds       Kind = 0x0107
	KindJunkSection             Kind = 0x0108
	KindIncompatibleFuncCode    Kind = 0x0109
	KindIncompatibleDataCount   Kind = 0x010A
	KindDataCountRequired       Kind = 0x010B
	KindMalformedImportKind     Kind = 0x010C
	KindMalformedExportKind     Kind = 0x010D
	KindExpectedZeroByte        Kind = 0x010E
	KindInvalidMut              Kind = 0x010F
	KindTooManyLocals           Kind = 0x0110
	KindMalformedValType        Kind = 0x0111
	KindMalformedElemType       Kind = 0x0112
	KindMalformedRefType        Kind = 0x0113
	KindMalformedUTF8           Kind = 0x0114
	KindIntegerTooLarge         Kind = 0x0115
	KindIntegerTooLong          Kind = 0x0116
	KindIllegalOpCode           Kind = 0x0117
	KindEndCodeExpected         Kind = 0x0118
	KindIllegalGrammar          Kind = 0x0119
	KindSharedMemoryNoMax       Kind = 0x011A
	KindIntrinsicsTableNotFound Kind = 0x011B
	KindMalformedTable          Kind = 0x011C
)

// Validation
const (
	KindInvalidAlignment           Kind = 0x0200
	KindTypeCheckFailed            Kind = 0x0201
	KindInvalidLabelIdx            Kind = 0x0202
	KindInvalidLocalIdx            Kind = 0x0203
	KindInvalidFieldIdx            Kind = 0x0204
	KindInvalidFuncTypeIdx         Kind = 0x0205
	KindInvalidFuncIdx             Kind = 0x0206
	KindInvalidTableIdx            Kind = 0x0207
	KindInvalidMemoryIdx           Kind = 0x0208
	KindInvalidGlobalIdx           Kind = 0x0209
	KindInvalidTagIdx              Kind = 0x020A
	KindInvalidElemIdx             Kind = 0x020B
	KindInvalidDataIdx             Kind = 0x020C
	KindInvalidRefIdx              Kind = 0x020D
	KindConstExprRequired          Kind = 0x020E
	KindDupExportName              Kind = 0x020F
	KindImmutableGlobal            Kind = 0x0210
	KindImmutableField             Kind = 0x0211
	KindImmutableArray             Kind = 0x0212
	KindInvalidResultArity         Kind = 0x0213
	KindMultiTables                Kind = 0x0214
	KindMultiMemories              Kind = 0x0215
	KindInvalidLimit               Kind = 0x0216
	KindInvalidMemPages            Kind = 0x0217
	KindInvalidStartFunc           Kind = 0x0218
	KindInvalidLaneIdx             Kind = 0x0219
	KindInvalidUninitLocal         Kind = 0x021A
	KindInvalidNotDefaultableField Kind = 0x021B
	KindInvalidNotDefaultableArray Kind = 0x021C
	KindInvalidPackedField         Kind = 0x021D
	KindInvalidPackedArray         Kind = 0x021E
	KindInvalidUnpackedField       Kind = 0x021F
	KindInvalidUnpackedArray       Kind = 0x0220
	KindInvalidBrRefType           Kind = 0x0221
	KindArrayTypesMismatch         Kind = 0x0222
	KindArrayTypesNumtypeRequired  Kind = 0x0223
	KindInvalidSubType             Kind = 0x0224
	KindInvalidTagResultType       Kind = 0x0225
)

// Instantiation
const (
	KindModuleNameConflict     Kind = 0x0300
	KindIncompatibleImportType Kind = 0x0301
	KindUnknownImport          Kind = 0x0302
	KindDataSegDoesNotFit      Kind = 0x0303
	KindElemSegDoesNotFit      Kind = 0x0304
)

// Execution
const (
	KindWrongInstanceAddress     Kind = 0x0400
	KindWrongInstanceIndex       Kind = 0x0401
	KindInstrTypeMismatch        Kind = 0x0402
	KindFuncSigMismatch          Kind = 0x0403
	KindDivideByZero             Kind = 0x0404
	KindIntegerOverflow          Kind = 0x0405
	KindInvalidConvToInt         Kind = 0x0406
	KindTableOutOfBounds         Kind = 0x0407
	KindMemoryOutOfBounds        Kind = 0x0408
	KindArrayOutOfBounds         Kind = 0x0409
	KindUnreachable              Kind = 0x040A
	KindUninitializedElement     Kind = 0x040B
	KindUndefinedElement         Kind = 0x040C
	KindIndirectCallTypeMismatch Kind = 0x040D
	KindHostFuncError            Kind = 0x040E
	KindRefTypeMismatch          Kind = 0x040F
	KindUnalignedAtomicAccess    Kind = 0x0410
	KindExpectSharedMemory       Kind = 0x0411
	KindCastNullToNonNull        Kind = 0x0412
	KindAccessNullFunc           Kind = 0x0413
	KindAccessNullStruct         Kind = 0x0414
	KindAccessNullArray          Kind = 0x0415
	KindAccessNullI31            Kind = 0x0416
	KindAccessNullException      Kind = 0x0417
	KindCastFailed               Kind = 0x0418
	KindUncaughtException        Kind = 0x0419
)

var phaseEntries = []enummap.Entry[Phase]{
	{Key: PhaseWasmEdge, Name: "wasmedge runtime"},
	{Key: PhaseLoading, Name: "loading"},
	{Key: PhaseValidation, Name: "validation"},
	{Key: PhaseInstantiation, Name: "instantiation"},
	{Key: PhaseExecution, Name: "execution"},
	{Key: PhaseUserDefined, Name: "user defined"},
}

var kindEntries = []enummap.Entry[Kind]{
	{Key: KindSuccess, Name: "success"},
	{Key: KindTerminated, Name: "terminated"},
	{Key: KindRuntimeError, Name: "generic runtime error"},
	{Key: KindCostLimitExceeded, Name: "cost limit exceeded"},
	{Key: KindWrongVMWorkflow, Name: "wrong VM workflow"},
	{Key: KindFuncNotFound, Name: "wasm function not found"},
	{Key: KindAOTDisabled, Name: "AOT runtime is disabled in this build"},
	{Key: KindInterrupted, Name: "execution interrupted"},
	{Key: KindNotValidated, Name: "wasm module hasn't passed validation yet"},
	{Key: KindNonNullRequired, Name: "set null value into non-nullable value type"},
	{Key: KindSetValueToConst, Name: "set value into const"},
	{Key: KindSetValueErrorType, Name: "set value type mismatch"},
	{Key: KindUserDefError, Name: "user defined error code"},

	{Key: KindIllegalPath, Name: "invalid path"},
	{Key: KindReadError, Name: "read error"},
	{Key: KindUnexpectedEnd, Name: "unexpected end"},
	{Key: KindMalformedMagic, Name: "magic header not detected"},
	{Key: KindMalformedVersion, Name: "unknown binary version"},
	{Key: KindMalformedSection, Name: "malformed section id"},
	{Key: KindSectionSizeMismatch, Name: "section size mismatch"},
	{Key: KindLengthOutOfBounds, Name: "length out of bounds"},
	{Key: KindJunkSection, Name: "unexpected content after last section"},
	{Key: KindIncompatibleFuncCode, Name: "function and code section have inconsistent lengths"},
	{Key: KindIncompatibleDataCount, Name: "data count and data section have inconsistent lengths"},
	{Key: KindDataCountRequired, Name: "data count section required"},
	{Key: KindMalformedImportKind, Name: "malformed import kind"},
	{Key: KindMalformedExportKind, Name: "malformed export kind"},
	{Key: KindExpectedZeroByte, Name: "zero byte expected"},
	{Key: KindInvalidMut, Name: "malformed mutability"},
	{Key: KindTooManyLocals, Name: "too many locals"},
	{Key: KindMalformedValType, Name: "malformed value type"},
	{Key: KindMalformedElemType, Name: "malformed element type"},
	{Key: KindMalformedRefType, Name: "malformed reference type"},
	{Key: KindMalformedUTF8, Name: "malformed UTF-8 encoding"},
	{Key: KindIntegerTooLarge, Name: "integer too large"},
	{Key: KindIntegerTooLong, Name: "integer representation too long"},
	{Key: KindIllegalOpCode, Name: "illegal opcode"},
	{Key: KindEndCodeExpected, Name: "END opcode expected"},
	{Key: KindIllegalGrammar, Name: "invalid wasm grammar"},
	{Key: KindSharedMemoryNoMax, Name: "shared memory must have maximum"},
	{Key: KindIntrinsicsTableNotFound, Name: "intrinsics table not found"},
	{Key: KindMalformedTable, Name: "malformed table"},

	{Key: KindInvalidAlignment, Name: "alignment must not be larger than natural"},
	{Key: KindTypeCheckFailed, Name: "type mismatch"},
	{Key: KindInvalidLabelIdx, Name: "unknown label"},
	{Key: KindInvalidLocalIdx, Name: "unknown local"},
	{Key: KindInvalidFieldIdx, Name: "unknown field"},
	{Key: KindInvalidFuncTypeIdx, Name: "unknown type"},
	{Key: KindInvalidFuncIdx, Name: "unknown function"},
	{Key: KindInvalidTableIdx, Name: "unknown table"},
	{Key: KindInvalidMemoryIdx, Name: "unknown memory"},
	{Key: KindInvalidGlobalIdx, Name: "unknown global"},
	{Key: KindInvalidTagIdx, Name: "unknown tag"},
	{Key: KindInvalidElemIdx, Name: "unknown elem segment"},
	{Key: KindInvalidDataIdx, Name: "unknown data segment"},
	{Key: KindInvalidRefIdx, Name: "undeclared function reference"},
	{Key: KindConstExprRequired, Name: "constant expression required"},
	{Key: KindDupExportName, Name: "duplicate export name"},
	{Key: KindImmutableGlobal, Name: "global is immutable"},
	{Key: KindImmutableField, Name: "field is immutable"},
	{Key: KindImmutableArray, Name: "array is immutable"},
	{Key: KindInvalidResultArity, Name: "invalid result arity"},
	{Key: KindMultiTables, Name: "multiple tables"},
	{Key: KindMultiMemories, Name: "multiple memories"},
	{Key: KindInvalidLimit, Name: "size minimum must not be greater than maximum"},
	{Key: KindInvalidMemPages, Name: "memory size must be at most 65536 pages (4GiB)"},
	{Key: KindInvalidStartFunc, Name: "start function"},
	{Key: KindInvalidLaneIdx, Name: "invalid lane index"},
	{Key: KindInvalidUninitLocal, Name: "uninitialized local"},
	{Key: KindInvalidNotDefaultableField, Name: "field type is not defaultable"},
	{Key: KindInvalidNotDefaultableArray, Name: "array type is not defaultable"},
	{Key: KindInvalidPackedField, Name: "field is packed"},
	{Key: KindInvalidPackedArray, Name: "array is packed"},
	{Key: KindInvalidUnpackedField, Name: "field is unpacked"},
	{Key: KindInvalidUnpackedArray, Name: "array is unpacked"},
	{Key: KindInvalidBrRefType, Name: "invalid br ref type"},
	{Key: KindArrayTypesMismatch, Name: "array types do not match"},
	{Key: KindArrayTypesNumtypeRequired, Name: "array type is not numeric or vector"},
	{Key: KindInvalidSubType, Name: "sub type"},
	{Key: KindInvalidTagResultType, Name: "non-empty tag result type"},

	{Key: KindModuleNameConflict, Name: "module name conflict"},
	{Key: KindIncompatibleImportType, Name: "incompatible import type"},
	{Key: KindUnknownImport, Name: "unknown import"},
	{Key: KindDataSegDoesNotFit, Name: "data segment does not fit"},
	{Key: KindElemSegDoesNotFit, Name: "elements segment does not fit"},

	{Key: KindWrongInstanceAddress, Name: "wrong instance address"},
	{Key: KindWrongInstanceIndex, Name: "wrong instance index"},
	{Key: KindInstrTypeMismatch, Name: "instruction type mismatch"},
	{Key: KindFuncSigMismatch, Name: "function signature mismatch"},
	{Key: KindDivideByZero, Name: "integer divide by zero"},
	{Key: KindIntegerOverflow, Name: "integer overflow"},
	{Key: KindInvalidConvToInt, Name: "invalid conversion to integer"},
	{Key: KindTableOutOfBounds, Name: "out of bounds table access"},
	{Key: KindMemoryOutOfBounds, Name: "out of bounds memory access"},
	{Key: KindArrayOutOfBounds, Name: "out of bounds array access"},
	{Key: KindUnreachable, Name: "unreachable"},
	{Key: KindUninitializedElement, Name: "uninitialized element"},
	{Key: KindUndefinedElement, Name: "undefined element"},
	{Key: KindIndirectCallTypeMismatch, Name: "indirect call type mismatch"},
	{Key: KindHostFuncError, Name: "host function failed"},
	{Key: KindRefTypeMismatch, Name: "reference type mismatch"},
	{Key: KindUnalignedAtomicAccess, Name: "unaligned atomic"},
	{Key: KindExpectSharedMemory, Name: "expected shared memory"},
	{Key: KindCastNullToNonNull, Name: "cast null pointer to non-null"},
	{Key: KindAccessNullFunc, Name: "null function reference"},
	{Key: KindAccessNullStruct, Name: "null structure reference"},
	{Key: KindAccessNullArray, Name: "null array reference"},
	{Key: KindAccessNullI31, Name: "null i31 reference"},
	{Key: KindAccessNullException, Name: "null exception reference"},
	{Key: KindCastFailed, Name: "cast failure"},
	{Key: KindUncaughtException, Name: "uncaught exception"},
}

var (
	phaseNames = enummap.MustDense(phaseEntries)
	kindNames  = enummap.MustSparse(kindEntries)
)

// String returns the phase's display name, or "unknown(0xNN)" for values
// outside the table.
func (p Phase) String() string {
	if name, ok := phaseNames.Get(p); ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02x)", uint8(p))
}

// String returns the kind's display name, or "unknown(0xNNNN)" for values
// outside the table.
func (k Kind) String() string {
	if name, ok := kindNames.Get(k); ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%04x)", uint32(k))
}

// Phase returns the phase encoded in bits 11..8 of k.
func (k Kind) Phase() Phase {
	return Phase(uint32(k)>>8) & 0x0F
}

func (c Category) String() string {
	switch c {
	case CategoryWASM:
		return "wasm"
	case CategoryUserLevelError:
		return "user level error"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Phases yields every authored phase in ascending order.
func Phases() iter.Seq2[Phase, string] {
	return phaseNames.All()
}

// Kinds yields every authored kind in ascending order.
func Kinds() iter.Seq2[Kind, string] {
	return kindNames.All()
}
