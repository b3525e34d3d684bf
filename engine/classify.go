package engine

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/tetratelabs/wazero/sys"

	"github.com/wippyai/wasm-errcode/errors"
)

// rule maps a fragment of a wazero error message to a kind.
type rule struct {
	text string
	kind errors.Kind
}

// Decode errors from CompileModule.
var loadingRules = []rule{
	{"invalid magic number", errors.KindMalformedMagic},
	{"invalid version header", errors.KindMalformedVersion},
	{"function and code section have inconsistent lengths", errors.KindIncompatibleFuncCode},
	{"data count", errors.KindIncompatibleDataCount},
	{"section id", errors.KindMalformedSection},
	{"size mismatch", errors.KindSectionSizeMismatch},
	{"UTF-8", errors.KindMalformedUTF8},
	{"too many locals", errors.KindTooManyLocals},
	{"requires a maximum", errors.KindSharedMemoryNoMax},
	{"overflows a 32-bit integer", errors.KindIntegerTooLarge},
	{"overflows a 64-bit integer", errors.KindIntegerTooLarge},
	{"invalid value type", errors.KindMalformedValType},
	{"invalid import kind", errors.KindMalformedImportKind},
	{"invalid export kind", errors.KindMalformedExportKind},
	{"invalid opcode", errors.KindIllegalOpCode},
	{"invalid instruction", errors.KindIllegalOpCode},
	{"EOF", errors.KindUnexpectedEnd},
}

// Validation errors, also raised by CompileModule.
var validationRules = []rule{
	{"alignment", errors.KindInvalidAlignment},
	{"type mismatch", errors.KindTypeCheckFailed},
	{"cannot pop", errors.KindTypeCheckFailed},
	{"stack underflow", errors.KindTypeCheckFailed},
	{"duplicates name", errors.KindDupExportName},
	{"duplicate export", errors.KindDupExportName},
	{"immutable", errors.KindImmutableGlobal},
	{"at most one table", errors.KindMultiTables},
	{"multiple tables", errors.KindMultiTables},
	{"at most one memory", errors.KindMultiMemories},
	{"multiple memories", errors.KindMultiMemories},
	{"> max", errors.KindInvalidLimit},
	{"start function", errors.KindInvalidStartFunc},
	{"constant expression", errors.KindConstExprRequired},
	{"local index", errors.KindInvalidLocalIdx},
	{"global index", errors.KindInvalidGlobalIdx},
	{"function index", errors.KindInvalidFuncIdx},
	{"type index", errors.KindInvalidFuncTypeIdx},
}

// Link errors from InstantiateModule.
var instantiationRules = []rule{
	{"has already been instantiated", errors.KindModuleNameConflict},
	{"signature mismatch", errors.KindIncompatibleImportType},
	{"not instantiated", errors.KindUnknownImport},
	{"not exported", errors.KindUnknownImport},
	{"data[", errors.KindDataSegDoesNotFit},
	{"elem[", errors.KindElemSegDoesNotFit},
}

// Runtime traps and call errors.
var executionRules = []rule{
	{"integer divide by zero", errors.KindDivideByZero},
	{"integer overflow", errors.KindIntegerOverflow},
	{"invalid conversion to integer", errors.KindInvalidConvToInt},
	{"out of bounds memory access", errors.KindMemoryOutOfBounds},
	{"invalid table access", errors.KindTableOutOfBounds},
	{"indirect call type mismatch", errors.KindIndirectCallTypeMismatch},
	{"unaligned atomic", errors.KindUnalignedAtomicAccess},
	{"expected shared memory", errors.KindExpectSharedMemory},
	{"params, but passed", errors.KindFuncSigMismatch},
	{"unreachable", errors.KindUnreachable},
}

var stageRules = map[errors.Phase][][]rule{
	errors.PhaseLoading:       {loadingRules, validationRules},
	errors.PhaseValidation:    {validationRules, loadingRules},
	errors.PhaseInstantiation: {instantiationRules, executionRules},
	errors.PhaseExecution:     {executionRules},
}

// Classify converts an error returned by wazero during stage into a code.
// It does not log; Engine.Load and Module.Call report the result with the
// wazero error attached.
//
// A nil error is KindSuccess. Exits through sys.ExitError become
// KindTerminated for code 0, KindInterrupted for context cancellation, and a
// CategoryUserLevelError code carrying the exit code otherwise. Errors that
// match no rule are KindRuntimeError.
func Classify(stage errors.Phase, err error) errors.ErrCode {
	if err == nil {
		return errors.ErrCode{}
	}

	var exit *sys.ExitError
	if stderrors.As(err, &exit) {
		switch exit.ExitCode() {
		case 0:
			return errors.New(errors.KindTerminated)
		case sys.ExitCodeContextCanceled, sys.ExitCodeDeadlineExceeded:
			return errors.New(errors.KindInterrupted)
		default:
			return errors.FromUint32(exit.ExitCode())
		}
	}

	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return errors.New(errors.KindInterrupted)
	}

	msg := err.Error()
	for _, rules := range stageRules[stage] {
		for _, r := range rules {
			if strings.Contains(msg, r.text) {
				return errors.New(r.kind)
			}
		}
	}
	return errors.New(errors.KindRuntimeError)
}
