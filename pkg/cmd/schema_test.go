package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/poise/pkg/cmd/testutil"
	"github.com/pseudomuto/poise/pkg/config"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func TestSchemaCommand_Dump(t *testing.T) {
	f := testutil.NewFixture(t)
	command := func() *cli.Command {
		return schemaCmd(config.Default(), f.Provider, zap.NewNop())
	}

	t.Run("configured driver", func(t *testing.T) {
		out, err := testutil.CaptureCommand(t, command(), []string{"dump"})
		require.NoError(t, err)
		require.Contains(t, out, "PostgreSQL")
		require.Contains(t, out, "SERIAL PRIMARY KEY")
	})

	t.Run("explicit dialect", func(t *testing.T) {
		out, err := testutil.CaptureCommand(t, command(), []string{"dump", "--dialect", "sqlite"})
		require.NoError(t, err)
		require.Contains(t, out, "CREATE TABLE IF NOT EXISTS architect")
		require.Contains(t, out, "AUTOINCREMENT")
	})

	t.Run("to file", func(t *testing.T) {
		path := filepath.Join(f.Dir, "schema.sql")
		out, err := testutil.CaptureCommand(t, command(), []string{"dump", "--dialect", "mysql", "--out", path})
		require.NoError(t, err)
		require.Empty(t, out)
		testutil.RequireFileExists(t, path, testutil.RequireFileContains(t, "CREATE TABLE IF NOT EXISTS projects"))
	})

	t.Run("unknown dialect", func(t *testing.T) {
		err := testutil.RunCommand(t, command(), []string{"dump", "--dialect", "oracle"})
		require.Error(t, err)
		require.Contains(t, err.Error(), `no schema for dialect "oracle"`)
	})
}

func TestSchemaCommand_Apply(t *testing.T) {
	p := emptyParams(t)
	command := func() *cli.Command {
		return schemaCmd(config.Default(), p.Provider, zap.NewNop())
	}

	// applying twice leaves the existing tables alone
	for range 2 {
		out, err := testutil.CaptureCommand(t, command(), []string{"apply"})
		require.NoError(t, err)
		require.Equal(t, "Schema applied (sqlite)\n", out)
	}

	people, err := p.People.Customers.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, people)
}
