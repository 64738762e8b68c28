package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/pseudomuto/poise/pkg/consts"
	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/docker"
	"github.com/pseudomuto/poise/pkg/menu"
	"github.com/pseudomuto/poise/pkg/repository"
	"github.com/pseudomuto/poise/pkg/schema"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// dev returns a command that runs the interactive menu against a throwaway
// PostgreSQL container. The container and its data are removed when the
// menu exits.
func dev(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "dev",
		Usage: "Run the menu against a disposable PostgreSQL container",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "postgres-version",
				Usage: "PostgreSQL image tag",
				Value: consts.DefaultPostgresVersion,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDev(ctx, cmd, logger)
		},
	}
}

func runDev(ctx context.Context, cmd *cli.Command, logger *zap.Logger) error {
	w := cmd.Root().Writer
	container := docker.NewWithOptions(docker.DockerOptions{
		Version: cmd.String("postgres-version"),
	})

	fmt.Fprintf(w, "Starting %s...\n", container.Image())
	if err := container.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()

		if err := container.Stop(stopCtx); err != nil {
			logger.Warn("failed to stop development container", zap.Error(err))
		}
	}()

	cfg, err := container.Config(ctx)
	if err != nil {
		return err
	}

	p, err := database.Open(cfg, logger.Named("database"))
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	if err := schema.Apply(ctx, p, logger); err != nil {
		return err
	}

	logger.Info("development database ready",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name),
	)
	fmt.Fprintf(w, "Development database listening on %s:%d\n", cfg.Host, cfg.Port)

	stores := menu.Stores{
		People:   repository.NewPeople(p, logger),
		Projects: repository.NewProjectRepository(p, logger),
		Search:   repository.NewProjectSearch(p, logger, time.Now),
	}

	return menu.New(cmd.Root().Reader, w, stores, logger).Run(ctx)
}
