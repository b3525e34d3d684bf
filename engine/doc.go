// Package engine runs core WebAssembly modules on wazero and reports every
// failure as an errors.ErrCode.
//
// wazero signals problems with Go errors whose text names the cause. Classify
// maps those onto the authored kinds for the stage that produced them:
//
//	eng := engine.New(ctx, &engine.Config{MemoryLimitPages: 256})
//	defer eng.Close(ctx)
//
//	mod, ec := eng.Load(ctx, "math", wasmBytes)
//	if !ec.OK() {
//	    return ec // e.g. KindMalformedMagic, phase "loading"
//	}
//
//	res, ec := mod.Call(ctx, "div", api.EncodeI32(1), api.EncodeI32(0))
//	if ec.Is(errors.KindDivideByZero) {
//	    ...
//	}
//
// The wazero error itself is not kept in the code. It is written to the
// configured zap logger together with the code, module, and function names.
//
// # Thread Safety
//
// Engine is safe for concurrent use. Module follows wazero's api.Module: calls
// to different exports may run concurrently, but a module must not be closed
// while calls are in flight.
package engine
