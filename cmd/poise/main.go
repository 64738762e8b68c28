package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pseudomuto/poise/pkg/cmd"
	"github.com/pseudomuto/poise/pkg/config"
	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/logging"
	"github.com/pseudomuto/poise/pkg/repository"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fx.New(
		fx.Supply(os.Args, &cmd.Version{
			Version:   version,
			Commit:    commit,
			Timestamp: date,
		}),
		fx.Provide(func() context.Context { return ctx }),
		fx.WithLogger(logging.EventLogger),
		config.Module,
		logging.Module,
		database.Module,
		repository.Module,
		cmd.Module,
	).Run()
}
