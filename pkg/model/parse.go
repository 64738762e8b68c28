package model

import (
	"strconv"
	"strings"

	"github.com/pseudomuto/poise/pkg/utils"
	"github.com/shopspring/decimal"
)

const (
	reasonBlank    = "this field cannot be left blank"
	reasonMoney    = "please enter a numeric value"
	reasonDate     = "please enter the date in YYYY-MM-DD format"
	reasonBool     = "please enter 'true' or 'false'"
	reasonID       = "IDs are positive numeric values only"
	reasonNegative = "amounts cannot be negative"
	reasonCents    = "amounts cannot have more than two decimal places"
)

// ParseRequired returns the trimmed value, or a ValidationError when it is blank.
func ParseRequired(field, s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", &ValidationError{Field: field, Reason: reasonBlank}
	}

	return v, nil
}

// ParseMoney parses a decimal currency amount such as "100000.00". Amounts
// are whole pence: "1.005" is rejected rather than rounded, while "1.500" and
// "1e5" are accepted.
func ParseMoney(field, s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return decimal.Zero, &ValidationError{Field: field, Reason: reasonBlank}
	}

	amount, err := decimal.NewFromString(v)
	if err != nil || !utils.IsNumericValue(v) {
		return decimal.Zero, &ValidationError{Field: field, Value: s, Reason: reasonMoney}
	}

	if amount.IsNegative() {
		return decimal.Zero, &ValidationError{Field: field, Value: s, Reason: reasonNegative}
	}

	if !amount.Equal(amount.Truncate(2)) {
		return decimal.Zero, &ValidationError{Field: field, Value: s, Reason: reasonCents}
	}

	return amount, nil
}

// ParseDateField parses a required YYYY-MM-DD date.
func ParseDateField(field, s string) (Date, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Date{}, &ValidationError{Field: field, Reason: reasonBlank}
	}

	d, err := ParseDate(v)
	if err != nil {
		return Date{}, &ValidationError{Field: field, Value: s, Reason: reasonDate}
	}

	return d, nil
}

// ParseOptionalDate parses a YYYY-MM-DD date, returning nil for blank input.
func ParseOptionalDate(field, s string) (*Date, error) {
	if isBlank(s) {
		return nil, nil
	}

	d, err := ParseDateField(field, s)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// ParseBool accepts exactly "true" or "false", ignoring case and surrounding
// space. Anything else is a ValidationError; nothing is coerced.
func ParseBool(field, s string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if !utils.IsBooleanValue(v) {
		return false, &ValidationError{Field: field, Value: s, Reason: reasonBool}
	}

	return v == "true", nil
}

// ParseID parses a record id or project number. Ids are positive integers.
func ParseID(field, s string) (int64, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return 0, &ValidationError{Field: field, Reason: reasonBlank}
	}

	if !utils.IsDigits(v) {
		return 0, &ValidationError{Field: field, Value: s, Reason: reasonID}
	}

	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Field: field, Value: s, Reason: reasonID}
	}

	return id, nil
}

// ParseNewProject validates input for a new project. Building type, address,
// ERF number, both amounts, the deadline, the finalised flag and all three
// ids are required; the name and completion date may be blank.
//
// Foreign keys are only checked for shape here. Whether the referenced rows
// exist is checked by the repository when the project is written.
func ParseNewProject(in ProjectInput) (ProjectFields, error) {
	var (
		f   ProjectFields
		err error
	)

	f.Name = strings.TrimSpace(in.Name)

	if f.BuildingType, err = ParseRequired("building type", in.BuildingType); err != nil {
		return ProjectFields{}, err
	}
	if f.Address, err = ParseRequired("project address", in.Address); err != nil {
		return ProjectFields{}, err
	}
	if f.ErfNumber, err = ParseRequired("ERF number", in.ErfNumber); err != nil {
		return ProjectFields{}, err
	}
	if f.TotalFee, err = ParseMoney("total fee", in.TotalFee); err != nil {
		return ProjectFields{}, err
	}
	if f.PaidToDate, err = ParseMoney("amount paid to date", in.PaidToDate); err != nil {
		return ProjectFields{}, err
	}
	if f.Deadline, err = ParseDateField("deadline date", in.Deadline); err != nil {
		return ProjectFields{}, err
	}
	if f.Completion, err = ParseOptionalDate("completion date", in.Completion); err != nil {
		return ProjectFields{}, err
	}
	if f.Finalised, err = ParseBool("finalised", in.Finalised); err != nil {
		return ProjectFields{}, err
	}
	if f.ArchitectID, err = ParseID("architect ID", in.ArchitectID); err != nil {
		return ProjectFields{}, err
	}
	if f.ContractorID, err = ParseID("contractor ID", in.ContractorID); err != nil {
		return ProjectFields{}, err
	}
	if f.CustomerID, err = ParseID("customer ID", in.CustomerID); err != nil {
		return ProjectFields{}, err
	}

	return f, nil
}

// ParseProjectPatch validates input for a partial update. Every field is
// optional and a blank field means "leave unchanged"; a supplied field must
// still parse. Unlike ParseNewProject, blank foreign keys are allowed here.
func ParseProjectPatch(in ProjectInput) (ProjectPatch, error) {
	var p ProjectPatch

	text := func(s string) *string {
		if v := strings.TrimSpace(s); v != "" {
			return utils.Ptr(v)
		}
		return nil
	}

	p.Name = text(in.Name)
	p.BuildingType = text(in.BuildingType)
	p.Address = text(in.Address)
	p.ErfNumber = text(in.ErfNumber)

	if !isBlank(in.TotalFee) {
		v, err := ParseMoney("total fee", in.TotalFee)
		if err != nil {
			return ProjectPatch{}, err
		}
		p.TotalFee = &v
	}

	if !isBlank(in.PaidToDate) {
		v, err := ParseMoney("amount paid to date", in.PaidToDate)
		if err != nil {
			return ProjectPatch{}, err
		}
		p.PaidToDate = &v
	}

	var err error
	if p.Deadline, err = ParseOptionalDate("deadline date", in.Deadline); err != nil {
		return ProjectPatch{}, err
	}
	if p.Completion, err = ParseOptionalDate("completion date", in.Completion); err != nil {
		return ProjectPatch{}, err
	}

	if !isBlank(in.Finalised) {
		v, err := ParseBool("finalised", in.Finalised)
		if err != nil {
			return ProjectPatch{}, err
		}
		p.Finalised = &v
	}

	ids := []struct {
		field string
		raw   string
		dst   **int64
	}{
		{"architect ID", in.ArchitectID, &p.ArchitectID},
		{"contractor ID", in.ContractorID, &p.ContractorID},
		{"customer ID", in.CustomerID, &p.CustomerID},
	}
	for _, id := range ids {
		if isBlank(id.raw) {
			continue
		}

		v, err := ParseID(id.field, id.raw)
		if err != nil {
			return ProjectPatch{}, err
		}
		*id.dst = &v
	}

	return p, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
