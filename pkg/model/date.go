package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/consts"
)

// Date is a calendar date without a time of day or location.
//
// Dates are written to the database as YYYY-MM-DD text, which every supported
// dialect accepts for a DATE column, and can be scanned back from a time.Time,
// a string or a byte slice depending on what the driver hands out.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(consts.DateLayout, s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}

	return d.Day < other.Day
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	case nil:
		return errors.New("cannot scan NULL into Date")
	default:
		return errors.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanText(s string) error {
	// Some drivers hand back DATE values with a time component attached.
	if len(s) > len(consts.DateLayout) {
		s = s[:len(consts.DateLayout)]
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return errors.Wrapf(err, "invalid date value %q", s)
	}

	*d = parsed
	return nil
}
