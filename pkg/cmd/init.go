package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/config"
	"github.com/pseudomuto/poise/pkg/consts"
	"github.com/urfave/cli/v3"
)

// initCmd returns a command that writes a poise.yaml holding the defaults for
// the selected driver. An existing file is only replaced with --force.
//
// Example usage:
//
//	# PostgreSQL on localhost
//	poise init
//
//	# A local SQLite file
//	poise init --driver sqlite
func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a configuration file with default settings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "driver",
				Aliases: []string{"d"},
				Usage:   "Database driver (postgres, mysql or sqlite)",
				Value:   consts.DefaultDriver,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Path of the configuration file",
				Value:   consts.ConfigFile,
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Overwrite an existing configuration file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("out")
			if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
				return errors.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg, err := config.ForDriver(cmd.String("driver"))
			if err != nil {
				return err
			}

			f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, consts.ModeFile)
			if err != nil {
				return errors.Wrapf(err, "failed to create %s", path)
			}
			defer func() { _ = f.Close() }()

			if err := cfg.Write(f); err != nil {
				return err
			}

			fmt.Fprintf(cmd.Root().Writer, "Wrote %s (%s)\n", path, cfg.Database.Driver)
			return nil
		},
	}
}
