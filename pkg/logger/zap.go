package logger

import (
	"context"

	"github.com/Gunvolt24/wc_paymeta/pkg/ctxmeta"
	"go.uber.org/zap"
)

type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	loggerWrap := Wrap(logger)
	loggerWrap.isProd = isProd

	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// Wrap — обёртка над готовым *zap.Logger (например, zaptest/zap.NewNop в тестах).
func Wrap(base *zap.Logger) *ZapLogger {
	return &ZapLogger{base: base, sugar: base.Sugar()}
}

// withCtx — добавляет к логгеру метаданные запроса из контекста.
func (z *ZapLogger) withCtx(ctx context.Context) *zap.SugaredLogger {
	s := z.sugar
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		s = s.With("request_id", rid)
	}
	if tr, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		s = s.With("trace_id", tr)
	}
	if cust, ok := ctxmeta.CustomerFromContext(ctx); ok {
		s = s.With("customer", cust)
	}
	return s
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Infow(ctx context.Context, msg string, keysAndValues ...any) {
	z.withCtx(ctx).Infow(msg, keysAndValues...)
}
func (z *ZapLogger) Warnw(ctx context.Context, msg string, keysAndValues ...any) {
	z.withCtx(ctx).Warnw(msg, keysAndValues...)
}
func (z *ZapLogger) Errorw(ctx context.Context, msg string, keysAndValues ...any) {
	z.withCtx(ctx).Errorw(msg, keysAndValues...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
