package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pseudomuto/poise/pkg/config"
	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/model"
	"github.com/pseudomuto/poise/pkg/repository"
	"github.com/pseudomuto/poise/pkg/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// today is the fixed date used by every ProjectSearch in these tests.
var today = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

type fixture struct {
	provider *database.Provider
	people   *repository.People
	projects *repository.ProjectRepository
	search   *repository.ProjectSearch
}

func newFixture(p *database.Provider) *fixture {
	logger := zap.NewNop()
	return &fixture{
		provider: p,
		people:   repository.NewPeople(p, logger),
		projects: repository.NewProjectRepository(p, logger),
		search:   repository.NewProjectSearch(p, logger, fixedClock),
	}
}

// newSQLite returns a fixture backed by a fresh SQLite file with the schema
// applied.
func newSQLite(t *testing.T) *fixture {
	t.Helper()

	p, err := database.Open(config.Database{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "poise.db"),
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	require.NoError(t, schema.Apply(context.Background(), p, zap.NewNop()))
	return newFixture(p)
}

// newMock returns a fixture backed by sqlmock with exact query matching.
func newMock(t *testing.T, dialect database.Dialect) (*fixture, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return newFixture(database.New(db, dialect, zap.NewNop())), mock
}

func janeDoe() model.PersonDetails {
	return model.PersonDetails{
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "0112223333",
		Email:       "jane@x.com",
		Address:     "1 Main Rd",
		PostCode:    "0001",
	}
}

func person(first string) model.PersonDetails {
	d := janeDoe()
	d.FirstName = first
	d.Email = first + "@x.com"
	return d
}

func clinic(architect, contractor, customer int64) model.ProjectFields {
	return model.ProjectFields{
		Name:         "Clinic",
		BuildingType: "Medical",
		Address:      "2 Elm St",
		ErfNumber:    "123456",
		TotalFee:     decimal.RequireFromString("100000.00"),
		PaidToDate:   decimal.RequireFromString("25000.00"),
		Deadline:     model.NewDate(2025, time.January, 1),
		Finalised:    false,
		ArchitectID:  architect,
		ContractorID: contractor,
		CustomerID:   customer,
	}
}

// seedPeople adds one architect, contractor and customer and returns their ids.
func seedPeople(t *testing.T, f *fixture) (int64, int64, int64) {
	t.Helper()
	ctx := context.Background()

	a, err := f.people.Architects.Add(ctx, janeDoe())
	require.NoError(t, err)
	c, err := f.people.Contractors.Add(ctx, person("Bob"))
	require.NoError(t, err)
	u, err := f.people.Customers.Add(ctx, person("Carol"))
	require.NoError(t, err)

	return a, c, u
}

// requireSameFields compares project fields, treating amounts as equal when
// they are numerically equal.
func requireSameFields(t *testing.T, want, got model.ProjectFields) {
	t.Helper()

	require.True(t, want.TotalFee.Equal(got.TotalFee), "total fee: want %s, got %s", want.TotalFee, got.TotalFee)
	require.True(t, want.PaidToDate.Equal(got.PaidToDate), "paid to date: want %s, got %s", want.PaidToDate, got.PaidToDate)

	want.TotalFee, got.TotalFee = decimal.Zero, decimal.Zero
	want.PaidToDate, got.PaidToDate = decimal.Zero, decimal.Zero
	require.Equal(t, want, got)
}

func countProjects(t *testing.T, f *fixture) int {
	t.Helper()

	var n int
	err := f.provider.WithConn(context.Background(), "count", func(q database.Querier) error {
		return q.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM projects").Scan(&n)
	})
	require.NoError(t, err)
	return n
}
