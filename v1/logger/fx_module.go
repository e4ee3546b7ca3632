package logger

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// FXModule provides *LoggerClient and the Logger interface and flushes the logger
// on shutdown. A logger.Config must be available in the container.
//
// Usage:
//
//	app := fx.New(
//	    fx.Supply(logger.Config{Level: logger.Info}),
//	    logger.FXModule,
//	    logger.WithFxLogger,
//	)
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
		func(l *LoggerClient) Logger { return l },
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// WithFxLogger routes Fx's own startup events through the zap logger.
var WithFxLogger = fx.WithLogger(func(l *LoggerClient) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: l.Zap}
})

// RegisterLoggerLifecycle syncs the zap logger when the application stops so
// that buffered entries are not lost.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// stderr returns EINVAL/ENOTTY on Sync on some platforms.
			_ = client.Zap.Sync()
			return nil
		},
	})
}
