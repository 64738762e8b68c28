package model_test

import (
	"testing"
	"time"

	. "github.com/pseudomuto/poise/pkg/model"
	"github.com/pseudomuto/poise/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func clinicFields() ProjectFields {
	return ProjectFields{
		Name:         "Clinic",
		BuildingType: "Medical",
		Address:      "2 Elm St",
		ErfNumber:    "123456",
		TotalFee:     decimal.RequireFromString("100000.00"),
		PaidToDate:   decimal.RequireFromString("25000.00"),
		Deadline:     NewDate(2025, time.January, 1),
		ArchitectID:  1,
		ContractorID: 2,
		CustomerID:   3,
	}
}

func TestProjectFields_Values(t *testing.T) {
	f := clinicFields()

	values := f.Values()
	require.Len(t, values, len(ProjectColumns))
	require.Equal(t, "Clinic", values[0])
	require.Nil(t, values[7])
	require.Equal(t, false, values[8])
	require.Equal(t, int64(3), values[11])

	f.Completion = utils.Ptr(NewDate(2025, time.February, 1))
	require.Equal(t, NewDate(2025, time.February, 1), f.Values()[7])
	require.True(t, f.IsComplete())
}

func TestProjectFields_References(t *testing.T) {
	require.Equal(t, []Reference{
		{Table: TableArchitect, ID: 1},
		{Table: TableContractor, ID: 2},
		{Table: TableCustomer, ID: 3},
	}, clinicFields().References())
}

func TestProjectPatch_Assignments(t *testing.T) {
	fee := decimal.RequireFromString("1.50")
	p := ProjectPatch{
		CustomerID: utils.Ptr(int64(9)),
		TotalFee:   &fee,
		Name:       utils.Ptr("Hospital"),
	}

	require.Equal(t, []Assignment{
		{Column: "project_name", Value: "Hospital"},
		{Column: "total_fee_gbp", Value: fee},
		{Column: "customer_id", Value: int64(9)},
	}, p.Assignments())

	require.Equal(t, []Reference{{Table: TableCustomer, ID: 9}}, p.References())
	require.Empty(t, ProjectPatch{}.Assignments())
	require.Empty(t, ProjectPatch{}.References())
	require.True(t, ProjectPatch{}.IsEmpty())
}

func TestProjectPatch_Apply(t *testing.T) {
	before := clinicFields()
	fee := decimal.RequireFromString("150000")

	after := ProjectPatch{
		TotalFee:   &fee,
		Finalised:  utils.Ptr(true),
		Completion: utils.Ptr(NewDate(2025, time.March, 3)),
	}.Apply(before)

	require.True(t, fee.Equal(after.TotalFee))
	require.True(t, after.Finalised)
	require.Equal(t, NewDate(2025, time.March, 3), *after.Completion)

	// untouched fields carry over
	require.Equal(t, before.Name, after.Name)
	require.Equal(t, before.Deadline, after.Deadline)
	require.Equal(t, before.ArchitectID, after.ArchitectID)
	require.True(t, before.PaidToDate.Equal(after.PaidToDate))

	// before is not modified
	require.Nil(t, before.Completion)
	require.False(t, before.Finalised)
}

func TestPersonDetails_Values(t *testing.T) {
	d := PersonDetails{
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "0112223333",
		Email:       "jane@x.com",
		Address:     "1 Main Rd",
		PostCode:    "0001",
	}

	require.Equal(t, []any{"Jane", "Doe", "0112223333", "jane@x.com", "1 Main Rd", "0001"}, d.Values())
	require.Len(t, PersonColumns, len(d.Values()))
}
