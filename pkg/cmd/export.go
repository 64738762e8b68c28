package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/poise/pkg/consts"
	"github.com/pseudomuto/poise/pkg/export"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// exportCmd returns a command that writes every project to an Excel
// workbook. "-" writes the workbook to stdout.
func exportCmd(p storeParams) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write all projects to an Excel workbook",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Path of the workbook, or - for stdout",
				Value:   consts.DefaultExportFile,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			projects, err := p.Search.List(ctx)
			if err != nil {
				return err
			}

			out := cmd.String("out")
			if out == "-" {
				return export.WriteProjects(cmd.Root().Writer, projects)
			}

			if err := export.SaveProjects(out, projects); err != nil {
				return err
			}

			p.Logger.Info("projects exported", zap.String("path", out), zap.Int("projects", len(projects)))
			fmt.Fprintf(cmd.Root().Writer, "Exported %d projects to %s.\n", len(projects), out)
			return nil
		},
	}
}
