package repository_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/docker"
	"github.com/pseudomuto/poise/pkg/model"
	"github.com/pseudomuto/poise/pkg/schema"
	"github.com/pseudomuto/poise/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/zap"
)

func TestPostgresIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container := docker.New()
	require.NoError(t, container.Start(ctx))
	t.Cleanup(func() { _ = container.Stop(context.Background()) })

	cfg, err := container.Config(ctx)
	require.NoError(t, err)

	p, err := database.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	require.NoError(t, schema.Apply(ctx, p, zap.NewNop()))
	// applying twice is harmless
	require.NoError(t, schema.Apply(ctx, p, zap.NewNop()))

	f := newFixture(p)
	a, c, u := seedPeople(t, f)

	t.Run("jane doe clinic round trip", func(t *testing.T) {
		architect, err := f.people.Architects.FindByID(ctx, a)
		require.NoError(t, err)
		require.Equal(t, janeDoe(), architect.PersonDetails)

		fields := clinic(a, c, u)
		number, err := f.projects.Create(ctx, fields)
		require.NoError(t, err)

		got, err := f.search.ByNumber(ctx, number)
		require.NoError(t, err)
		requireSameFields(t, fields, got.ProjectFields)
	})

	t.Run("partial update touches one column", func(t *testing.T) {
		fields := clinic(a, c, u)
		number, err := f.projects.Create(ctx, fields)
		require.NoError(t, err)

		fee := decimal.RequireFromString("120000.50")
		res, err := f.projects.Update(ctx, number, model.ProjectPatch{TotalFee: &fee})
		require.NoError(t, err)
		require.Equal(t, []string{"total_fee_gbp"}, res.Columns)

		got, err := f.search.ByNumber(ctx, number)
		require.NoError(t, err)
		fields.TotalFee = fee
		requireSameFields(t, fields, got.ProjectFields)
	})

	t.Run("past deadline and incomplete", func(t *testing.T) {
		done := clinic(a, c, u)
		done.Name = "Finished"
		done.Completion = utils.Ptr(model.NewDate(2024, time.December, 1))
		done.Finalised = true
		_, err := f.projects.Create(ctx, done)
		require.NoError(t, err)

		late, err := f.search.ListPastDeadline(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, late)
		for _, p := range late {
			require.NotEqual(t, "Finished", p.Name)
		}

		open, err := f.search.ListIncomplete(ctx)
		require.NoError(t, err)
		for _, p := range open {
			require.False(t, p.Finalised)
		}
	})

	t.Run("long text is stored unchanged", func(t *testing.T) {
		details := janeDoe()
		details.FirstName = strings.Repeat("J", 300)
		details.PostCode = "SW1A 1AA-EXTENDED"
		id, err := f.people.Customers.Add(ctx, details)
		require.NoError(t, err)

		got, err := f.people.Customers.FindByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, details, got.PersonDetails)

		fields := clinic(a, c, id)
		fields.ErfNumber = "123456789012"
		fields.TotalFee = decimal.RequireFromString("123456789012345.67")
		number, err := f.projects.Create(ctx, fields)
		require.NoError(t, err)

		project, err := f.search.ByNumber(ctx, number)
		require.NoError(t, err)
		requireSameFields(t, fields, project.ProjectFields)
	})

	t.Run("unknown architect", func(t *testing.T) {
		before := countProjects(t, f)

		_, err := f.projects.Create(ctx, clinic(a+1000, c, u))
		require.True(t, model.IsForeignKey(err))
		require.Equal(t, before, countProjects(t, f))
	})
}
