package logging

import (
	"github.com/pseudomuto/poise/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Module provides the application *zap.Logger, built from the log section of
// the config, and installs it as fx's own event logger.
var Module = fx.Module("logging",
	fx.Provide(func(cfg *config.Config) (*zap.Logger, error) {
		return New(cfg.Log.Level, cfg.Log.Format)
	}),
	fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
		lc.Append(fx.StopHook(func() {
			_ = logger.Sync()
		}))
	}),
)

// EventLogger adapts the application logger for fx.WithLogger. fx lifecycle
// chatter is logged at debug so it stays out of the way at the default level.
func EventLogger(logger *zap.Logger) fxevent.Logger {
	l := &fxevent.ZapLogger{Logger: logger.Named("fx")}
	l.UseLogLevel(zap.DebugLevel)
	return l
}
