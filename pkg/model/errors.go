package model

import (
	"fmt"

	"github.com/pkg/errors"
)

type (
	// ValidationError is returned when operator input cannot be turned into a
	// valid value: a blank required field, or an unparseable number, date,
	// boolean or id.
	ValidationError struct {
		Field  string
		Value  string
		Reason string
	}

	// ForeignKeyError is returned when a project references an architect,
	// contractor or customer that does not exist.
	ForeignKeyError struct {
		Table Table
		ID    int64
	}

	// NotFoundError is returned when an operation targets a record that does
	// not exist.
	NotFoundError struct {
		Table Table
		ID    int64
	}

	// DatabaseError wraps a connection or statement failure.
	DatabaseError struct {
		Op  string
		Err error
	}
)

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}

	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("ID %d does not exist in the %s table", e.ID, e.Table.Name())
}

func (e *NotFoundError) Error() string {
	if e.Table == TableProjects {
		return fmt.Sprintf("project number %d not found", e.ID)
	}

	return fmt.Sprintf("%s ID %d not found", e.Table.Name(), e.ID)
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying driver error.
func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// Cause supports errors.Cause from github.com/pkg/errors.
func (e *DatabaseError) Cause() error {
	return e.Err
}

// NewDatabaseError wraps err as a DatabaseError for op. A nil err yields nil.
func NewDatabaseError(op string, err error) error {
	if err == nil {
		return nil
	}

	return &DatabaseError{Op: op, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsForeignKey reports whether err is (or wraps) a ForeignKeyError.
func IsForeignKey(err error) bool {
	var target *ForeignKeyError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsDatabase reports whether err is (or wraps) a DatabaseError.
func IsDatabase(err error) bool {
	var target *DatabaseError
	return errors.As(err, &target)
}
