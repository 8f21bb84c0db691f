// Package log is the service logger. It is a thin layer over zap that pulls the correlation id
// out of the context so every entry of one request or event can be joined together.
package log

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

type Level = zapcore.Level

func DebugLogLevel() Level { return zapcore.DebugLevel }

func InfoLogLevel() Level { return zapcore.InfoLevel }

// ParseLevel falls back to def when s is empty or unknown.
func ParseLevel(s string, def Level) Level {
	if s == "" {
		return def
	}

	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return def
	}

	return lvl
}

// Init replaces the global logger with a JSON logger writing to stdout.
func Init(appName, env string, level Level) error {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(os.Stdout),
		zap.NewAtomicLevelAt(level),
	)

	l := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	).With(
		zap.String("service", appName),
		zap.String("env", env),
	)

	logger.Store(l)
	return nil
}

// InitForTest discards every entry.
func InitForTest() {
	logger.Store(zap.NewNop())
}

// Logger exposes the underlying zap logger, e.g. for the New Relic log bridge.
func Logger() *zap.Logger {
	return logger.Load()
}

func Sync() {
	_ = logger.Load().Sync()
}

func String(key, val string) Field { return zap.String(key, val) }

func Int(key string, val int) Field { return zap.Int(key, val) }

func Int64(key string, val int64) Field { return zap.Int64(key, val) }

func Bool(key string, val bool) Field { return zap.Bool(key, val) }

func Any(key string, val any) Field { return zap.Any(key, val) }

func Err(err error) Field { return zap.Error(err) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }

func Time(key string, val time.Time) Field { return zap.Time(key, val) }

func withContext(ctx context.Context, fields []Field) []Field {
	if id := GetCorrelationID(ctx); id != "" {
		fields = append(fields, zap.String(correlationIDField, id))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Error(msg, withContext(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	logger.Load().Debug(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}

func Infof(ctx context.Context, format string, args ...any) {
	logger.Load().Info(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	logger.Load().Warn(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	logger.Load().Error(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	logger.Load().Fatal(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}
