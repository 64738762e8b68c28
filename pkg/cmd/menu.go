package cmd

import (
	"context"

	"github.com/pseudomuto/poise/pkg/menu"
	"github.com/pseudomuto/poise/pkg/schema"
	"github.com/urfave/cli/v3"
)

// menuCmd returns the interactive console. Missing tables are created before
// the main menu is shown unless --skip-schema is given.
func menuCmd(p storeParams) *cli.Command {
	return &cli.Command{
		Name:  "menu",
		Usage: "Start the interactive menu",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "skip-schema",
				Usage: "Do not create missing tables before starting",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if !cmd.Bool("skip-schema") {
				if err := schema.Apply(ctx, p.Provider, p.Logger); err != nil {
					return err
				}
			}

			root := cmd.Root()
			return menu.New(root.Reader, root.Writer, p.stores(), p.Logger).Run(ctx)
		},
	}
}
