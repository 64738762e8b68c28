package model_test

import (
	"testing"

	. "github.com/pseudomuto/poise/pkg/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	tests := []struct {
		table  Table
		name   string
		label  string
		key    string
		person bool
	}{
		{TableArchitect, "architect", "Architect", "id", true},
		{TableContractor, "contractor", "Contractor", "id", true},
		{TableCustomer, "customer", "Customer", "id", true},
		{TableProjects, "projects", "Project", "project_number", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.table.Valid())
			require.Equal(t, tt.name, tt.table.Name())
			require.Equal(t, tt.name, tt.table.String())
			require.Equal(t, tt.label, tt.table.Label())
			require.Equal(t, tt.key, tt.table.KeyColumn())
			require.Equal(t, tt.person, tt.table.IsPerson())
		})
	}
}

func TestTable_Invalid(t *testing.T) {
	var tbl Table
	require.False(t, tbl.Valid())
	require.False(t, tbl.IsPerson())
	require.Equal(t, "Table(0)", tbl.String())
	require.Equal(t, "Table(42)", Table(42).String())
}

func TestParseTable(t *testing.T) {
	tests := map[string]Table{
		"architect":   TableArchitect,
		"architects":  TableArchitect,
		"contractors": TableContractor,
		"customer":    TableCustomer,
		"project":     TableProjects,
		"projects":    TableProjects,
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			tbl, err := ParseTable(input)
			require.NoError(t, err)
			require.Equal(t, expected, tbl)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseTable("users; DROP TABLE projects")
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrUnknownTable))
	})
}

func TestPersonTables(t *testing.T) {
	require.Equal(t, []Table{TableArchitect, TableContractor, TableCustomer}, PersonTables)
}
