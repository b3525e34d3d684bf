package engine

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
	nopLogger  = zap.NewNop()
)

// Logger returns the engine's default logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = nopLogger
		}
	})
	if l := logger; l != nil {
		return l
	}
	return nopLogger
}

// SetLogger configures the logger used by engines created without
// Config.Logger. This must be called before New.
func SetLogger(l *zap.Logger) {
	logger = l
}
