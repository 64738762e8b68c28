package menu

import (
	"context"
	"strings"

	"github.com/pseudomuto/poise/pkg/model"
	"github.com/pseudomuto/poise/pkg/repository"
)

// projectField is one prompt of the add and update project forms.
type projectField struct {
	add, update string
	dst         func(*model.ProjectInput) *string
	check       func(string) error
	optional    bool
}

var projectFields = []projectField{
	{
		add:      "Enter project name: ",
		update:   "Enter new project name: ",
		dst:      func(in *model.ProjectInput) *string { return &in.Name },
		check:    func(string) error { return nil },
		optional: true,
	},
	{
		add:    "Enter building type: ",
		update: "Enter new building type: ",
		dst:    func(in *model.ProjectInput) *string { return &in.BuildingType },
		check:  checkRequired("building type"),
	},
	{
		add:    "Enter project address: ",
		update: "Enter new project address: ",
		dst:    func(in *model.ProjectInput) *string { return &in.Address },
		check:  checkRequired("project address"),
	},
	{
		add:    "Enter ERF number (up to 10 digits): ",
		update: "Enter new ERF number (up to 10 digits): ",
		dst:    func(in *model.ProjectInput) *string { return &in.ErfNumber },
		check:  checkRequired("ERF number"),
	},
	{
		add:    "Enter total fee (GBP): ",
		update: "Enter new total fee (GBP): ",
		dst:    func(in *model.ProjectInput) *string { return &in.TotalFee },
		check:  checkMoney("total fee"),
	},
	{
		add:    "Enter amount paid to date (GBP): ",
		update: "Enter new amount paid to date (GBP): ",
		dst:    func(in *model.ProjectInput) *string { return &in.PaidToDate },
		check:  checkMoney("amount paid to date"),
	},
	{
		add:    "Enter deadline date (YYYY-MM-DD): ",
		update: "Enter new deadline date (YYYY-MM-DD): ",
		dst:    func(in *model.ProjectInput) *string { return &in.Deadline },
		check:  checkDate("deadline date"),
	},
	{
		add:      "Enter completion date (YYYY-MM-DD), or leave blank: ",
		update:   "Enter new completion date (YYYY-MM-DD), if applicable: ",
		dst:      func(in *model.ProjectInput) *string { return &in.Completion },
		check:    checkDate("completion date"),
		optional: true,
	},
	{
		add:    "Is the project finalised (true/false): ",
		update: "Is the project finalised (true/false): ",
		dst:    func(in *model.ProjectInput) *string { return &in.Finalised },
		check:  checkBool("finalised"),
	},
	{
		add:    "Enter architect ID: ",
		update: "Enter new architect ID (or leave blank to retain current): ",
		dst:    func(in *model.ProjectInput) *string { return &in.ArchitectID },
		check:  checkID("architect ID"),
	},
	{
		add:    "Enter contractor ID: ",
		update: "Enter new contractor ID (or leave blank to retain current): ",
		dst:    func(in *model.ProjectInput) *string { return &in.ContractorID },
		check:  checkID("contractor ID"),
	},
	{
		add:    "Enter customer ID: ",
		update: "Enter new customer ID (or leave blank to retain current): ",
		dst:    func(in *model.ProjectInput) *string { return &in.CustomerID },
		check:  checkID("customer ID"),
	},
}

// projectInput collects the project form. On update every field may be left
// blank.
func (m *Menu) projectInput(update bool) (model.ProjectInput, error) {
	var in model.ProjectInput
	for _, f := range projectFields {
		text, check := f.add, f.check
		if update {
			text = f.update
		}
		if update || f.optional {
			check = optional(check)
		}

		v, err := m.ask(text, check)
		if err != nil {
			return model.ProjectInput{}, err
		}
		*f.dst(&in) = v
	}

	return in, nil
}

func (m *Menu) addProject(ctx context.Context) error {
	m.println("Enter the details for the new project:")
	in, err := m.projectInput(false)
	if err != nil {
		return err
	}

	fields, err := model.ParseNewProject(in)
	if err != nil {
		return err
	}

	number, err := m.stores.Projects.Create(ctx, fields)
	if err != nil {
		return err
	}

	m.printf("New project added successfully (project number %d).\n", number)
	return nil
}

func (m *Menu) askProjectNumber(ctx context.Context, verb string) (int64, bool, error) {
	number, ok, err := m.askTarget(
		"Enter Project Number to "+verb+" (or 0 to return to the main menu): ",
		"project number",
		func(n int64) (bool, error) {
			return m.stores.Projects.IDExists(ctx, model.TableProjects, n)
		},
	)
	if err == nil && !ok {
		m.println("Returning to the main menu.")
	}

	return number, ok, err
}

func (m *Menu) updateProject(ctx context.Context) error {
	number, ok, err := m.askProjectNumber(ctx, "update")
	if err != nil || !ok {
		return err
	}

	m.println("Enter the new details for the project or leave the input blank to keep current values:")
	in, err := m.projectInput(true)
	if err != nil {
		return err
	}

	patch, err := model.ParseProjectPatch(in)
	if err != nil {
		return err
	}

	res, err := m.stores.Projects.Update(ctx, number, patch)
	if err != nil {
		return err
	}

	if res.Status == repository.NoChanges {
		m.println("No fields were updated. SQL update not executed.")
		return nil
	}

	m.printf("Project updated successfully (%s).\n", strings.Join(res.Columns, ", "))
	return nil
}

func (m *Menu) deleteProject(ctx context.Context) error {
	number, ok, err := m.askProjectNumber(ctx, "delete")
	if err != nil || !ok {
		return err
	}

	if err := m.stores.Projects.Delete(ctx, number); err != nil {
		return err
	}

	m.println("Project deleted successfully.")
	return nil
}
