package model

import (
	"github.com/shopspring/decimal"
)

type (
	// ProjectFields holds every writable column of a project.
	ProjectFields struct {
		Name         string
		BuildingType string
		Address      string
		ErfNumber    string
		TotalFee     decimal.Decimal
		PaidToDate   decimal.Decimal
		Deadline     Date
		Completion   *Date
		Finalised    bool
		ArchitectID  int64
		ContractorID int64
		CustomerID   int64
	}

	// Project is a stored project.
	Project struct {
		Number int64
		ProjectFields
	}

	// ProjectInput is raw operator input for a project, one string per field.
	// It is turned into ProjectFields by ParseNewProject and into a
	// ProjectPatch by ParseProjectPatch.
	ProjectInput struct {
		Name         string
		BuildingType string
		Address      string
		ErfNumber    string
		TotalFee     string
		PaidToDate   string
		Deadline     string
		Completion   string
		Finalised    string
		ArchitectID  string
		ContractorID string
		CustomerID   string
	}

	// ProjectPatch is a partial project update. A nil field is left unchanged.
	ProjectPatch struct {
		Name         *string
		BuildingType *string
		Address      *string
		ErfNumber    *string
		TotalFee     *decimal.Decimal
		PaidToDate   *decimal.Decimal
		Deadline     *Date
		Completion   *Date
		Finalised    *bool
		ArchitectID  *int64
		ContractorID *int64
		CustomerID   *int64
	}

	// Assignment is a single column = value pair of an UPDATE statement.
	Assignment struct {
		Column string
		Value  any
	}

	// Reference is a foreign key held by a project.
	Reference struct {
		Table Table
		ID    int64
	}
)

// ProjectColumns lists the writable project columns. This is also the order
// in which a partial update lists its SET assignments.
var ProjectColumns = []string{
	"project_name",
	"building_type",
	"project_address",
	"erf_number",
	"total_fee_gbp",
	"paid_to_date_gbp",
	"deadline_date",
	"completion_date",
	"finalised",
	"architect_id",
	"contractor_id",
	"customer_id",
}

// Values returns the field values in ProjectColumns order. A missing
// completion date is written as NULL.
func (f ProjectFields) Values() []any {
	var completion any
	if f.Completion != nil {
		completion = *f.Completion
	}

	return []any{
		f.Name,
		f.BuildingType,
		f.Address,
		f.ErfNumber,
		f.TotalFee,
		f.PaidToDate,
		f.Deadline,
		completion,
		f.Finalised,
		f.ArchitectID,
		f.ContractorID,
		f.CustomerID,
	}
}

// References returns the architect, contractor and customer keys of f.
func (f ProjectFields) References() []Reference {
	return []Reference{
		{Table: TableArchitect, ID: f.ArchitectID},
		{Table: TableContractor, ID: f.ContractorID},
		{Table: TableCustomer, ID: f.CustomerID},
	}
}

// IsComplete reports whether the project has a completion date.
func (f ProjectFields) IsComplete() bool {
	return f.Completion != nil
}

// IsEmpty reports whether the patch changes nothing.
func (p ProjectPatch) IsEmpty() bool {
	return len(p.Assignments()) == 0
}

// Assignments returns the supplied fields as column assignments, in
// ProjectColumns order.
func (p ProjectPatch) Assignments() []Assignment {
	var out []Assignment
	add := func(column string, supplied bool, value func() any) {
		if supplied {
			out = append(out, Assignment{Column: column, Value: value()})
		}
	}

	add("project_name", p.Name != nil, func() any { return *p.Name })
	add("building_type", p.BuildingType != nil, func() any { return *p.BuildingType })
	add("project_address", p.Address != nil, func() any { return *p.Address })
	add("erf_number", p.ErfNumber != nil, func() any { return *p.ErfNumber })
	add("total_fee_gbp", p.TotalFee != nil, func() any { return *p.TotalFee })
	add("paid_to_date_gbp", p.PaidToDate != nil, func() any { return *p.PaidToDate })
	add("deadline_date", p.Deadline != nil, func() any { return *p.Deadline })
	add("completion_date", p.Completion != nil, func() any { return *p.Completion })
	add("finalised", p.Finalised != nil, func() any { return *p.Finalised })
	add("architect_id", p.ArchitectID != nil, func() any { return *p.ArchitectID })
	add("contractor_id", p.ContractorID != nil, func() any { return *p.ContractorID })
	add("customer_id", p.CustomerID != nil, func() any { return *p.CustomerID })

	return out
}

// References returns the foreign keys supplied by the patch.
func (p ProjectPatch) References() []Reference {
	var refs []Reference
	if p.ArchitectID != nil {
		refs = append(refs, Reference{Table: TableArchitect, ID: *p.ArchitectID})
	}
	if p.ContractorID != nil {
		refs = append(refs, Reference{Table: TableContractor, ID: *p.ContractorID})
	}
	if p.CustomerID != nil {
		refs = append(refs, Reference{Table: TableCustomer, ID: *p.CustomerID})
	}

	return refs
}

// Apply returns a copy of f with the patch applied.
func (p ProjectPatch) Apply(f ProjectFields) ProjectFields {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.BuildingType != nil {
		f.BuildingType = *p.BuildingType
	}
	if p.Address != nil {
		f.Address = *p.Address
	}
	if p.ErfNumber != nil {
		f.ErfNumber = *p.ErfNumber
	}
	if p.TotalFee != nil {
		f.TotalFee = *p.TotalFee
	}
	if p.PaidToDate != nil {
		f.PaidToDate = *p.PaidToDate
	}
	if p.Deadline != nil {
		f.Deadline = *p.Deadline
	}
	if p.Completion != nil {
		c := *p.Completion
		f.Completion = &c
	}
	if p.Finalised != nil {
		f.Finalised = *p.Finalised
	}
	if p.ArchitectID != nil {
		f.ArchitectID = *p.ArchitectID
	}
	if p.ContractorID != nil {
		f.ContractorID = *p.ContractorID
	}
	if p.CustomerID != nil {
		f.CustomerID = *p.CustomerID
	}

	return f
}
