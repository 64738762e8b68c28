package repository

import (
	"time"

	"go.uber.org/fx"
)

// Module provides the person, project and search repositories.
var Module = fx.Module("repository",
	fx.Provide(
		func() Clock { return time.Now },
		NewPeople,
		NewProjectRepository,
		NewProjectSearch,
	),
)
