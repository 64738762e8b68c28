package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/config"
	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/schema"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// schemaCmd returns the parent of the schema commands.
//
// Available subcommands:
//   - dump: print the DDL for a dialect
//   - apply: create the missing tables in the configured database
func schemaCmd(cfg *config.Config, p *database.Provider, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Commands for working with the database schema",
		Commands: []*cli.Command{
			schemaDump(cfg),
			schemaApply(p, logger),
		},
	}
}

func schemaDump(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "Print the schema script for a SQL dialect",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dialect",
				Usage:       "SQL dialect (postgres, mysql or sqlite)",
				DefaultText: "configured driver",
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "Output file path for the schema",
				DefaultText: "stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dialect := cmd.String("dialect")
			if dialect == "" {
				dialect = cfg.Database.Driver
			}

			w := cmd.Root().Writer
			if out := cmd.String("out"); out != "" {
				f, err := os.Create(out)
				if err != nil {
					return errors.Wrapf(err, "failed to create %s", out)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			return schema.Dump(w, dialect)
		},
	}
}

func schemaApply(p *database.Provider, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "apply",
		Usage: "Create any missing tables in the configured database",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := schema.Apply(ctx, p, logger); err != nil {
				return err
			}

			fmt.Fprintf(cmd.Root().Writer, "Schema applied (%s)\n", p.Dialect().Name)
			return nil
		},
	}
}
