package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/experimental"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-errcode/errors"
)

// Engine owns a wazero runtime.
type Engine struct {
	runtime wazero.Runtime
	log     *zap.Logger
}

// Config holds configuration for engine creation
type Config struct {
	// Logger receives a record for every failed load or call.
	// nil uses Logger().
	Logger *zap.Logger

	// MemoryLimitPages sets the maximum memory per instance in pages (64KB each).
	// 0 means default (65536 pages = 4GB).
	MemoryLimitPages uint32

	// CloseOnContextDone stops running calls when their context is cancelled.
	// Such calls report KindInterrupted.
	CloseOnContextDone bool

	// EnableThreads enables the WebAssembly threads proposal (experimental).
	// This allows shared memory and atomic operations within WASM modules.
	EnableThreads bool
}

// New creates an engine. A nil cfg uses defaults.
func New(ctx context.Context, cfg *Config) *Engine {
	runtimeCfg := wazero.NewRuntimeConfig()
	log := Logger()

	if cfg != nil {
		if cfg.MemoryLimitPages > 0 {
			runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
		}
		if cfg.CloseOnContextDone {
			runtimeCfg = runtimeCfg.WithCloseOnContextDone(true)
		}
		if cfg.EnableThreads {
			runtimeCfg = runtimeCfg.WithCoreFeatures(api.CoreFeaturesV2 | experimental.CoreFeaturesThreads)
		}
		if cfg.Logger != nil {
			log = cfg.Logger
		}
	}

	return &Engine{
		runtime: wazero.NewRuntimeWithConfig(ctx, runtimeCfg),
		log:     log,
	}
}

// Close releases the runtime and every module loaded through it.
func (e *Engine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Load compiles and instantiates bin under name. Decode and validation
// failures carry loading or validation kinds, link failures instantiation
// kinds, and a trapping start function execution kinds.
func (e *Engine) Load(ctx context.Context, name string, bin []byte) (*Module, errors.ErrCode) {
	compiled, err := e.runtime.CompileModule(ctx, bin)
	if err != nil {
		ec := Classify(errors.PhaseLoading, err)
		return nil, errors.ReportTo(e.log, ec, "compile module",
			zap.String("module", name), zap.Error(err))
	}

	mod, err := e.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		_ = compiled.Close(ctx)
		ec := Classify(errors.PhaseInstantiation, err)
		return nil, errors.ReportTo(e.log, ec, "instantiate module",
			zap.String("module", name), zap.Error(err))
	}

	return &Module{mod: mod, compiled: compiled, name: name, log: e.log}, errors.ErrCode{}
}

// Module is an instantiated module.
type Module struct {
	mod      api.Module
	compiled wazero.CompiledModule
	log      *zap.Logger
	name     string
}

// Name returns the name the module was loaded under.
func (m *Module) Name() string {
	return m.name
}

// Call invokes the exported function fn. Parameters and results use wazero's
// uint64 encoding (see api.EncodeI32 and friends).
func (m *Module) Call(ctx context.Context, fn string, params ...uint64) ([]uint64, errors.ErrCode) {
	f := m.mod.ExportedFunction(fn)
	if f == nil {
		return nil, errors.ReportTo(m.log, errors.New(errors.KindFuncNotFound), "call",
			zap.String("module", m.name), zap.String("func", fn))
	}

	res, err := f.Call(ctx, params...)
	if err != nil {
		ec := Classify(errors.PhaseExecution, err)
		return nil, errors.ReportTo(m.log, ec, "call",
			zap.String("module", m.name), zap.String("func", fn), zap.Error(err))
	}
	return res, errors.ErrCode{}
}

// Close closes the module instance and releases its compiled code.
func (m *Module) Close(ctx context.Context) error {
	err := m.mod.Close(ctx)
	if cerr := m.compiled.Close(ctx); err == nil {
		err = cerr
	}
	return err
}
