package model_test

import (
	"database/sql"
	"testing"

	. "github.com/pseudomuto/poise/pkg/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	require.EqualError(t,
		&ForeignKeyError{Table: TableArchitect, ID: 99},
		"ID 99 does not exist in the architect table",
	)
	require.EqualError(t,
		&NotFoundError{Table: TableProjects, ID: 5},
		"project number 5 not found",
	)
	require.EqualError(t,
		&NotFoundError{Table: TableCustomer, ID: 6},
		"customer ID 6 not found",
	)
	require.EqualError(t,
		&ValidationError{Field: "finalised", Value: "yes", Reason: "please enter 'true' or 'false'"},
		`invalid finalised "yes": please enter 'true' or 'false'`,
	)
}

func TestDatabaseError(t *testing.T) {
	require.NoError(t, NewDatabaseError("insert", nil))

	err := NewDatabaseError("insert architect", sql.ErrConnDone)
	require.EqualError(t, err, "database error: insert architect: sql: connection is already closed")
	require.True(t, errors.Is(err, sql.ErrConnDone))
	require.Equal(t, sql.ErrConnDone, errors.Cause(err))
}

func TestErrorPredicates(t *testing.T) {
	wrap := func(err error) error { return errors.Wrap(err, "menu action") }

	require.True(t, IsValidation(wrap(&ValidationError{Field: "x"})))
	require.True(t, IsForeignKey(wrap(&ForeignKeyError{Table: TableCustomer, ID: 1})))
	require.True(t, IsNotFound(wrap(&NotFoundError{Table: TableProjects, ID: 1})))
	require.True(t, IsDatabase(wrap(NewDatabaseError("select", sql.ErrNoRows))))

	plain := errors.New("boom")
	require.False(t, IsValidation(plain))
	require.False(t, IsForeignKey(plain))
	require.False(t, IsNotFound(plain))
	require.False(t, IsDatabase(plain))
}
