package cmd

import (
	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/menu"
	"github.com/pseudomuto/poise/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// storeParams are the dependencies shared by the commands that read or write
// records.
type storeParams struct {
	fx.In

	Provider *database.Provider
	People   *repository.People
	Projects *repository.ProjectRepository
	Search   *repository.ProjectSearch
	Logger   *zap.Logger
}

func (p storeParams) stores() menu.Stores {
	return menu.Stores{
		People:   p.People,
		Projects: p.Projects,
		Search:   p.Search,
	}
}
