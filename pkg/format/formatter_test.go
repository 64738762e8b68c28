package format_test

import (
	"errors"
	"testing"
	"time"

	. "github.com/pseudomuto/poise/pkg/format"
	"github.com/pseudomuto/poise/pkg/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFormatter_Person(t *testing.T) {
	p := model.Person{ID: 7, PersonDetails: model.PersonDetails{FirstName: "Jane", LastName: "Doe"}}

	require.Equal(t,
		"ID: 7 | First Name: Jane | Last Name: Doe | Phone Number:  | Email:  | Address:  | Post Code: ",
		New(Defaults).Person(p),
	)
}

func TestFormatter_Options(t *testing.T) {
	p := model.Project{Number: 3, ProjectFields: model.ProjectFields{
		TotalFee:   decimal.RequireFromString("12.345"),
		PaidToDate: decimal.RequireFromString("1"),
		Deadline:   model.NewDate(2025, time.March, 9),
	}}

	got := New(FormatterOptions{Separator: "; ", NullText: "-", MoneyPlaces: 1}).Project(p)
	require.Contains(t, got, "Project Number: 3; Project Name: ; ")
	require.Contains(t, got, "Total Fee: 12.3; Paid To Date: 1.0; ")
	require.Contains(t, got, "Completion Date: -; ")

	// blank separator falls back to the default one
	got = New(FormatterOptions{}).Project(p)
	require.Contains(t, got, "Project Number: 3 | Project Name:  | ")
	require.Contains(t, got, "Total Fee: 12 | ")
}

func TestFormatter_WriteErrors(t *testing.T) {
	f := New(Defaults)

	err := f.People(failingWriter{}, model.Person{ID: 1})
	require.ErrorContains(t, err, "failed to write person")

	err = f.Projects(failingWriter{}, model.Project{Number: 1})
	require.ErrorContains(t, err, "failed to write project")

	// nothing to write is not an error
	require.NoError(t, f.Projects(failingWriter{}))
}
