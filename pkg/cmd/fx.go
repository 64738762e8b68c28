package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(dev, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(exportCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(initCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(list, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(menuCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(schemaCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
