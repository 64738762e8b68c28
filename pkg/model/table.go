package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Table identifies one of the four PoisePMS tables.
//
// Table names are never taken from user input. Any SQL that has to embed a
// table name (existence checks, person CRUD) receives a Table value and asks it
// for the identifier, which keeps the set of names that can reach a statement
// closed.
type Table int

const (
	// TableArchitect is the architect table
	TableArchitect Table = iota + 1

	// TableContractor is the contractor table
	TableContractor

	// TableCustomer is the customer table
	TableCustomer

	// TableProjects is the projects table
	TableProjects
)

var (
	// ErrUnknownTable is returned when a Table value outside the enumerated set is used.
	ErrUnknownTable = errors.New("unknown table")

	tableNames = map[Table]string{
		TableArchitect:  "architect",
		TableContractor: "contractor",
		TableCustomer:   "customer",
		TableProjects:   "projects",
	}

	tableLabels = map[Table]string{
		TableArchitect:  "Architect",
		TableContractor: "Contractor",
		TableCustomer:   "Customer",
		TableProjects:   "Project",
	}
)

// PersonTables lists the tables holding person-like records, in menu order.
var PersonTables = []Table{TableArchitect, TableContractor, TableCustomer}

// Name returns the SQL table name.
func (t Table) Name() string {
	return tableNames[t]
}

// Label returns the singular, human readable entity name ("Architect").
func (t Table) Label() string {
	return tableLabels[t]
}

// KeyColumn returns the primary key column of the table.
func (t Table) KeyColumn() string {
	if t == TableProjects {
		return "project_number"
	}

	return "id"
}

// IsPerson reports whether the table stores person-like records.
func (t Table) IsPerson() bool {
	return t == TableArchitect || t == TableContractor || t == TableCustomer
}

// Valid reports whether t is one of the enumerated tables.
func (t Table) Valid() bool {
	_, ok := tableNames[t]
	return ok
}

// String implements fmt.Stringer.
func (t Table) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Table(%d)", int(t))
	}

	return t.Name()
}

// ParseTable maps a table name (as used on the command line) onto a Table.
// Plural forms are accepted: "architects" and "architect" are equivalent.
func ParseTable(name string) (Table, error) {
	for t, n := range tableNames {
		if name == n || name == n+"s" || (t == TableProjects && name == "project") {
			return t, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownTable, "%q", name)
}
