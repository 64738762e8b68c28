package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/model"
)

// FormatterOptions controls formatting behavior
type FormatterOptions struct {
	// Separator is placed between the fields of a record
	Separator string
	// NullText stands in for missing optional values
	NullText string
	// MoneyPlaces is the number of decimal places used for amounts
	MoneyPlaces int32
}

// Defaults matches the console output of the menu.
var Defaults = FormatterOptions{
	Separator:   " | ",
	NullText:    "null",
	MoneyPlaces: 2,
}

// Formatter renders records as single lines.
type Formatter struct {
	options FormatterOptions
}

type field struct {
	label string
	value string
}

// New creates a new Formatter with the specified options. A blank separator
// falls back to the default one.
func New(options FormatterOptions) *Formatter {
	if options.Separator == "" {
		options.Separator = Defaults.Separator
	}

	return &Formatter{options: options}
}

// Person renders an architect, contractor or customer.
func (f *Formatter) Person(p model.Person) string {
	return f.line(
		field{"ID", strconv.FormatInt(p.ID, 10)},
		field{"First Name", p.FirstName},
		field{"Last Name", p.LastName},
		field{"Phone Number", p.PhoneNumber},
		field{"Email", p.Email},
		field{"Address", p.Address},
		field{"Post Code", p.PostCode},
	)
}

// Project renders a project.
func (f *Formatter) Project(p model.Project) string {
	completion := f.options.NullText
	if p.IsComplete() {
		completion = p.Completion.String()
	}

	return f.line(
		field{"Project Number", strconv.FormatInt(p.Number, 10)},
		field{"Project Name", p.Name},
		field{"Building Type", p.BuildingType},
		field{"Address", p.Address},
		field{"ERF Number", p.ErfNumber},
		field{"Total Fee", p.TotalFee.StringFixed(f.options.MoneyPlaces)},
		field{"Paid To Date", p.PaidToDate.StringFixed(f.options.MoneyPlaces)},
		field{"Deadline Date", p.Deadline.String()},
		field{"Completion Date", completion},
		field{"Finalised", strconv.FormatBool(p.Finalised)},
		field{"Architect ID", strconv.FormatInt(p.ArchitectID, 10)},
		field{"Contractor ID", strconv.FormatInt(p.ContractorID, 10)},
		field{"Customer ID", strconv.FormatInt(p.CustomerID, 10)},
	)
}

// People writes one line per person to w.
func (f *Formatter) People(w io.Writer, people ...model.Person) error {
	for _, p := range people {
		if _, err := fmt.Fprintln(w, f.Person(p)); err != nil {
			return errors.Wrap(err, "failed to write person")
		}
	}

	return nil
}

// Projects writes one line per project to w.
func (f *Formatter) Projects(w io.Writer, projects ...model.Project) error {
	for _, p := range projects {
		if _, err := fmt.Fprintln(w, f.Project(p)); err != nil {
			return errors.Wrap(err, "failed to write project")
		}
	}

	return nil
}

func (f *Formatter) line(fields ...field) string {
	var sb strings.Builder
	for i, fld := range fields {
		if i > 0 {
			sb.WriteString(f.options.Separator)
		}
		sb.WriteString(fld.label)
		sb.WriteString(": ")
		sb.WriteString(fld.value)
	}

	return sb.String()
}
