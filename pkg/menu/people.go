package menu

import (
	"context"
	"strings"

	"github.com/pseudomuto/poise/pkg/model"
	"github.com/pseudomuto/poise/pkg/repository"
)

var personPrompts = []string{
	"First Name",
	"Last Name",
	"Telephone Number",
	"Email Address",
	"Home Address",
	"Post Code",
}

func personScreen(t model.Table) screen {
	noun := strings.ToLower(t.Label())
	article := "a"
	if strings.ContainsRune("aeiou", rune(noun[0])) {
		article = "an"
	}

	return screen{
		title: t.Label() + "s Menu",
		options: []string{
			"Add a new " + noun,
			"Update an existing " + noun,
			"Delete " + article + " " + noun,
			"Search for " + article + " " + noun,
			"List all " + noun + "s",
		},
		back: "Back to main menu",
	}
}

func (m *Menu) personMenu(ctx context.Context, repo *repository.PersonRepository) error {
	s := personScreen(repo.Table())
	noun := strings.ToLower(repo.Table().Label())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.show(s)
		choice, err := m.choose(len(s.options))
		if err != nil {
			return err
		}

		if choice == 0 {
			return nil
		}

		m.printf("%s selected.\n", s.options[choice-1])
		m.println()

		var act func(context.Context) error
		switch choice {
		case 1:
			act = func(ctx context.Context) error { return m.addPerson(ctx, repo) }
		case 2:
			act = func(ctx context.Context) error { return m.updatePerson(ctx, repo) }
		case 3:
			act = func(ctx context.Context) error { return m.deletePerson(ctx, repo) }
		case 4:
			act = func(ctx context.Context) error { return m.findPerson(ctx, repo) }
		case 5:
			act = func(ctx context.Context) error { return m.listPeople(ctx, repo) }
		}

		name := strings.ToLower(strings.SplitN(s.options[choice-1], " ", 2)[0]) + " " + noun
		if err := m.action(ctx, name, act); err != nil {
			return err
		}
	}
}

func (m *Menu) personDetails(update bool) (model.PersonDetails, error) {
	prefix := "Enter "
	if update {
		prefix = "Enter updated "
	}

	values := make([]string, len(personPrompts))
	for i, label := range personPrompts {
		v, err := m.prompt(prefix + label + ": ")
		if err != nil {
			return model.PersonDetails{}, err
		}
		values[i] = strings.TrimSpace(v)
	}

	return model.PersonDetails{
		FirstName:   values[0],
		LastName:    values[1],
		PhoneNumber: values[2],
		Email:       values[3],
		Address:     values[4],
		PostCode:    values[5],
	}, nil
}

func (m *Menu) addPerson(ctx context.Context, repo *repository.PersonRepository) error {
	details, err := m.personDetails(false)
	if err != nil {
		return err
	}

	id, err := repo.Add(ctx, details)
	if err != nil {
		return err
	}

	m.printf("A new %s has been added successfully (ID %d).\n", strings.ToLower(repo.Table().Label()), id)
	m.println()
	return nil
}

func (m *Menu) askPersonID(ctx context.Context, repo *repository.PersonRepository, verb string) (int64, bool, error) {
	label := repo.Table().Label()
	noun := strings.ToLower(label)

	id, ok, err := m.askTarget(
		"Enter "+label+" ID to "+verb+" (or 0 to return to the "+noun+" menu): ",
		"ID",
		func(id int64) (bool, error) { return repo.Exists(ctx, id) },
	)
	if err == nil && !ok {
		m.printf("Returning to the %s menu.\n", noun)
		m.println()
	}

	return id, ok, err
}

func (m *Menu) updatePerson(ctx context.Context, repo *repository.PersonRepository) error {
	id, ok, err := m.askPersonID(ctx, repo, "update")
	if err != nil || !ok {
		return err
	}

	details, err := m.personDetails(true)
	if err != nil {
		return err
	}

	if err := repo.Update(ctx, id, details); err != nil {
		return err
	}

	m.printf("%s has been updated successfully.\n", repo.Table().Label())
	m.println()
	return nil
}

func (m *Menu) deletePerson(ctx context.Context, repo *repository.PersonRepository) error {
	id, ok, err := m.askPersonID(ctx, repo, "delete")
	if err != nil || !ok {
		return err
	}

	if err := repo.Delete(ctx, id); err != nil {
		return err
	}

	m.printf("%s has been deleted successfully.\n", repo.Table().Label())
	m.println()
	return nil
}

func (m *Menu) findPerson(ctx context.Context, repo *repository.PersonRepository) error {
	line, err := m.prompt("Enter " + repo.Table().Label() + " ID to search: ")
	if err != nil {
		return err
	}

	id, err := model.ParseID(repo.Table().Label()+" ID", line)
	if err != nil {
		return err
	}

	p, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	m.println(m.formatter.Person(p))
	m.println()
	return nil
}

func (m *Menu) listPeople(ctx context.Context, repo *repository.PersonRepository) error {
	people, err := repo.List(ctx)
	if err != nil {
		return err
	}

	if len(people) == 0 {
		m.printf("No %ss found.\n", strings.ToLower(repo.Table().Label()))
	} else if err := m.formatter.People(m.out, people...); err != nil {
		return err
	}

	m.println()
	return nil
}
