package menu

import (
	"context"

	"github.com/pseudomuto/poise/pkg/model"
)

var (
	searchScreen = screen{
		title: "Project Search Menu",
		options: []string{
			"Search for a project",
			"List all projects",
			"List incomplete projects",
			"List projects beyond deadline",
		},
		back: "Back to main menu",
	}

	searchOptionsScreen = screen{
		title: "Search Options Menu",
		options: []string{
			"Search by project name",
			"Search by project number",
		},
		back: "Back to project search menu",
	}
)

func (m *Menu) searchMenu(ctx context.Context) error {
	search := m.stores.Search

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.show(searchScreen)
		choice, err := m.choose(len(searchScreen.options))
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			err = m.searchOptionsMenu(ctx)
		case 2:
			m.println("List all projects selected.")
			m.println()
			err = m.action(ctx, "list projects", m.listing(search.List))
		case 3:
			m.println("List incomplete projects selected.")
			m.println()
			err = m.action(ctx, "list incomplete projects", m.listing(search.ListIncomplete))
		case 4:
			m.println("List projects beyond deadline selected.")
			m.println()
			err = m.action(ctx, "list overdue projects", m.listing(search.ListPastDeadline))
		}

		if err != nil {
			return err
		}
	}
}

func (m *Menu) searchOptionsMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.show(searchOptionsScreen)
		choice, err := m.choose(len(searchOptionsScreen.options))
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			err = m.action(ctx, "search projects by name", m.searchByName)
		case 2:
			err = m.action(ctx, "search projects by number", m.searchByNumber)
		}

		if err != nil {
			return err
		}
	}
}

func (m *Menu) searchByName(ctx context.Context) error {
	m.println("Enter project name to search:")
	name, err := m.readLine()
	if err != nil {
		return err
	}

	projects, err := m.stores.Search.ByName(ctx, name)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		m.println("No projects found with that name.")
		m.println()
		return nil
	}

	return m.formatter.Projects(m.out, projects...)
}

func (m *Menu) searchByNumber(ctx context.Context) error {
	m.println("Enter project number to search:")
	line, err := m.readLine()
	if err != nil {
		return err
	}

	number, err := model.ParseID("project number", line)
	if err != nil {
		return err
	}

	p, err := m.stores.Search.ByNumber(ctx, number)
	if err != nil {
		return err
	}

	m.println(m.formatter.Project(p))
	return nil
}

// listing adapts a ProjectSearch list query into a menu action.
func (m *Menu) listing(query func(context.Context) ([]model.Project, error)) func(context.Context) error {
	return func(ctx context.Context) error {
		projects, err := query(ctx)
		if err != nil {
			return err
		}

		if len(projects) == 0 {
			m.println("No projects found.")
		} else if err := m.formatter.Projects(m.out, projects...); err != nil {
			return err
		}

		m.println()
		return nil
	}
}
