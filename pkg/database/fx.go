package database

import (
	"github.com/pseudomuto/poise/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the *Provider for the configured database and closes it
// when the application stops.
var Module = fx.Module("database", fx.Provide(
	func(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*Provider, error) {
		p, err := Open(cfg.Database, logger.Named("database"))
		if err != nil {
			return nil, err
		}

		lc.Append(fx.StopHook(p.Close))
		return p, nil
	},
))
