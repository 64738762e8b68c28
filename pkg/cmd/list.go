package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/format"
	"github.com/pseudomuto/poise/pkg/model"
	"github.com/urfave/cli/v3"
)

// list returns a command that prints every record of one table, one record
// per line, in the same layout the interactive menu uses.
//
// Example usage:
//
//	poise list architects
//	poise list projects --incomplete
//	poise list projects --overdue
func list(p storeParams) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "Print the records of a table",
		ArgsUsage: "<projects|architects|contractors|customers>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "incomplete",
				Usage: "Only projects that are not finalised",
			},
			&cli.BoolFlag{
				Name:  "overdue",
				Usage: "Only projects past their deadline without a completion date",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return errors.New("expected exactly one table name")
			}

			table, err := model.ParseTable(cmd.Args().First())
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			f := format.New(format.Defaults)

			if table.IsPerson() {
				if cmd.Bool("incomplete") || cmd.Bool("overdue") {
					return errors.New("--incomplete and --overdue only apply to projects")
				}

				people, err := p.People.For(table).List(ctx)
				if err != nil {
					return err
				}
				if len(people) == 0 {
					fmt.Fprintf(w, "No %ss found.\n", table.Name())
					return nil
				}

				return f.People(w, people...)
			}

			projects, err := listProjects(ctx, p, cmd)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(w, "No projects found.")
				return nil
			}

			return f.Projects(w, projects...)
		},
	}
}

func listProjects(ctx context.Context, p storeParams, cmd *cli.Command) ([]model.Project, error) {
	incomplete, overdue := cmd.Bool("incomplete"), cmd.Bool("overdue")

	switch {
	case incomplete && overdue:
		return nil, errors.New("--incomplete and --overdue cannot be combined")
	case incomplete:
		return p.Search.ListIncomplete(ctx)
	case overdue:
		return p.Search.ListPastDeadline(ctx)
	default:
		return p.Search.List(ctx)
	}
}
