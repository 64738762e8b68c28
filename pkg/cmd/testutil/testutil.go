// Package testutil holds fixtures shared by the command tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pseudomuto/poise/pkg/config"
	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/model"
	"github.com/pseudomuto/poise/pkg/repository"
	"github.com/pseudomuto/poise/pkg/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Today is the date the fixture's ProjectSearch treats as the current day.
var Today = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// Fixture is an isolated SQLite database with the schema applied and
// repositories bound to it.
type Fixture struct {
	Dir      string
	Config   *config.Config
	Provider *database.Provider
	Logger   *zap.Logger
	People   *repository.People
	Projects *repository.ProjectRepository
	Search   *repository.ProjectSearch
	t        *testing.T
}

// NewFixture creates a fixture in a fresh temp directory.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Database = config.Database{Driver: "sqlite", Path: filepath.Join(dir, "poise.db")}

	logger := zap.NewNop()
	p, err := database.Open(cfg.Database, logger)
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { _ = p.Close() })

	require.NoError(t, schema.Apply(context.Background(), p, logger), "Failed to apply schema")

	return &Fixture{
		Dir:      dir,
		Config:   cfg,
		Provider: p,
		Logger:   logger,
		People:   repository.NewPeople(p, logger),
		Projects: repository.NewProjectRepository(p, logger),
		Search:   repository.NewProjectSearch(p, logger, func() time.Time { return Today }),
		t:        t,
	}
}

// WithPerson adds a person named first to table and returns its id.
func (f *Fixture) WithPerson(table model.Table, first string) int64 {
	f.t.Helper()

	id, err := f.People.For(table).Add(context.Background(), model.PersonDetails{
		FirstName:   first,
		LastName:    "Doe",
		PhoneNumber: "0112223333",
		Email:       first + "@example.com",
		Address:     "1 Main Rd",
		PostCode:    "0001",
	})
	require.NoError(f.t, err, "Failed to add %s", table)
	return id
}

// WithProject adds a project named name with the given deadline and returns
// its number. A fresh architect, contractor and customer are created for it.
func (f *Fixture) WithProject(name string, deadline model.Date, finalised bool) int64 {
	f.t.Helper()

	n, err := f.Projects.Create(context.Background(), model.ProjectFields{
		Name:         name,
		BuildingType: "House",
		Address:      "3 Oak Ave",
		ErfNumber:    "42",
		TotalFee:     decimal.RequireFromString("1000"),
		PaidToDate:   decimal.Zero,
		Deadline:     deadline,
		Finalised:    finalised,
		ArchitectID:  f.WithPerson(model.TableArchitect, "Ann"),
		ContractorID: f.WithPerson(model.TableContractor, "Bob"),
		CustomerID:   f.WithPerson(model.TableCustomer, "Cid"),
	})
	require.NoError(f.t, err, "Failed to add project %s", name)
	return n
}
