package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pseudomuto/poise/pkg/cmd/testutil"
	"github.com/pseudomuto/poise/pkg/config"
	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/model"
	"github.com/pseudomuto/poise/pkg/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixtureParams(f *testutil.Fixture) storeParams {
	return storeParams{
		Provider: f.Provider,
		People:   f.People,
		Projects: f.Projects,
		Search:   f.Search,
		Logger:   f.Logger,
	}
}

// emptyParams returns storeParams for a SQLite database without any tables.
func emptyParams(t *testing.T) storeParams {
	t.Helper()

	logger := zap.NewNop()
	p, err := database.Open(config.Database{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "empty.db"),
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	return storeParams{
		Provider: p,
		People:   repository.NewPeople(p, logger),
		Projects: repository.NewProjectRepository(p, logger),
		Search:   repository.NewProjectSearch(p, logger, time.Now),
		Logger:   logger,
	}
}

// seedProjects adds an overdue project, a finalised one and one that is
// still on schedule, in that order.
func seedProjects(f *testutil.Fixture) {
	f.WithProject("Clinic", model.NewDate(2025, time.January, 1), false)
	f.WithProject("Tower", model.NewDate(2025, time.December, 1), true)
	f.WithProject("Mall", model.NewDate(2025, time.December, 1), false)
}
