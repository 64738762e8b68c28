package config

import (
	"go.uber.org/fx"
)

// Module provides the resolved *Config. A missing poise.yaml is not an error;
// commands such as init and --version run on the defaults.
var Module = fx.Module("config", fx.Provide(
	func() (*Config, error) {
		return Load("")
	},
))
