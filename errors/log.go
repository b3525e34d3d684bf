package errors

import (
	"strconv"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
	nopLogger  = zap.NewNop()
)

// Logger returns the logger used by Report.
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

// SetLogger configures the logger used by Report.
// This must be called before any code is reported. nil restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	logger = l
}

// MarshalLogObject implements zapcore.ObjectMarshaler. It never fails.
func (c ErrCode) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("code", "0x"+strconv.FormatUint(uint64(c.num), 16))
	enc.AddString("category", c.Category().String())
	enc.AddString("phase", c.Phase().String())
	enc.AddString("kind", c.Kind().String())
	return nil
}

// Field logs c under key.
func Field(key string, c ErrCode) zap.Field {
	return zap.Object(key, c)
}

// Report logs msg with c and fields through Logger, then returns c.
// Success and Terminated are logged at debug level, everything else at error
// level.
//
//	return errors.Report(errors.New(errors.KindFuncNotFound), "call",
//		zap.String("func", name))
func Report(c ErrCode, msg string, fields ...zap.Field) ErrCode {
	return ReportTo(Logger(), c, msg, fields...)
}

// ReportTo is Report with an explicit logger. A nil l falls back to Logger.
func ReportTo(l *zap.Logger, c ErrCode, msg string, fields ...zap.Field) ErrCode {
	if l == nil {
		l = Logger()
	}
	lvl := zapcore.ErrorLevel
	if c.OK() || c.Is(KindTerminated) {
		lvl = zapcore.DebugLevel
	}
	if ce := l.Check(lvl, msg); ce != nil {
		ce.Write(append(fields, Field("error", c))...)
	}
	return c
}
