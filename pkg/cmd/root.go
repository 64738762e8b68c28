package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Logger     *zap.Logger
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run registers the poise CLI application to start with the fx application.
//
// The application is built from every command provided to the "commands"
// group. With no arguments the interactive menu is started, so running the
// bare binary behaves like the classic console program.
//
// Example usage:
//
//	# Interactive menu against the configured database
//	poise
//
//	# Create the four tables
//	poise schema apply
//
//	# Print projects that are past their deadline
//	poise list projects --overdue
//
// The command runs on its own goroutine once fx has started, and the fx
// application is shut down with exit code 1 if it fails or 0 otherwise.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p.Version.Version, p.Commands)

	p.Lifecycle.Append(fx.StartHook(func() {
		go func() {
			if err := app.Run(p.Ctx, p.Args); err != nil {
				p.Logger.Error("Error running command", zap.Error(err))
				_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
				return
			}

			_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
		}()
	}))
}

func newApp(version string, commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  "poise",
		Usage: "Project management records for Poised",
		Description: `poise keeps the projects, architects, contractors and customers of a
structural engineering firm in a SQL database. Run it without a command to
use the interactive menu.`,
		Version:        version,
		DefaultCommand: "menu",
		Commands:       commands,
	}
}
