package menu

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/model"
	"github.com/pseudomuto/poise/pkg/utils"
)

var (
	// ErrNotANumber is returned by ParseChoice for input that is not a plain
	// decimal number.
	ErrNotANumber = errors.New("not a number")

	// ErrOutOfRange is returned by ParseChoice for a number that is not on the
	// menu.
	ErrOutOfRange = errors.New("choice out of range")
)

// ParseChoice validates a menu selection. The input must consist of digits
// only (surrounding space is ignored), must not have leading zeros unless it
// is exactly "0", and must lie within [min, max].
func ParseChoice(input string, min, max int) (int, error) {
	v := strings.TrimSpace(input)
	if !utils.IsDigits(v) || utils.HasLeadingZero(v) {
		return 0, ErrNotANumber
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, ErrNotANumber
	}

	if n < min || n > max {
		return 0, ErrOutOfRange
	}

	return n, nil
}

// readLine returns the next line without its line ending. A final line
// without a newline is returned before io.EOF. Lines have no length limit.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	case errors.Is(err, io.EOF):
		return "", io.EOF
	default:
		return "", errors.Wrap(err, "failed to read input")
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) prompt(text string) (string, error) {
	m.printf("%s", text)
	return m.readLine()
}

// choose reads a selection between 0 and max, asking again until one is valid.
func (m *Menu) choose(max int) (int, error) {
	for {
		line, err := m.prompt("Please select an option: ")
		if err != nil {
			return 0, err
		}

		n, err := ParseChoice(line, 0, max)
		switch {
		case err == nil:
			return n, nil
		case errors.Is(err, ErrOutOfRange):
			m.println("Invalid choice. Please enter a number from the menu.")
		default:
			m.println("Invalid input. Please enter a number.")
		}
	}
}

// ask prompts until check accepts the input and returns the accepted line.
// Validation failures are explained and asked again; any other error is
// returned.
func (m *Menu) ask(text string, check func(string) error) (string, error) {
	for {
		line, err := m.prompt(text)
		if err != nil {
			return "", err
		}

		err = check(line)
		if err == nil {
			return line, nil
		}

		var verr *model.ValidationError
		if !errors.As(err, &verr) {
			return "", err
		}
		m.println(sentence(verr) + " Please try again.")
	}
}

// optional accepts blank input and otherwise defers to check.
func optional(check func(string) error) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return check(s)
	}
}

func checkRequired(field string) func(string) error {
	return func(s string) error {
		_, err := model.ParseRequired(field, s)
		return err
	}
}

func checkMoney(field string) func(string) error {
	return func(s string) error {
		_, err := model.ParseMoney(field, s)
		return err
	}
}

func checkDate(field string) func(string) error {
	return func(s string) error {
		_, err := model.ParseDateField(field, s)
		return err
	}
}

func checkBool(field string) func(string) error {
	return func(s string) error {
		_, err := model.ParseBool(field, s)
		return err
	}
}

func checkID(field string) func(string) error {
	return func(s string) error {
		_, err := model.ParseID(field, s)
		return err
	}
}

// askTarget asks for the id of an existing record, re-prompting on malformed
// or unknown ids. ok is false when the operator entered 0 to go back.
func (m *Menu) askTarget(text, field string, exists func(int64) (bool, error)) (int64, bool, error) {
	for {
		line, err := m.prompt(text)
		if err != nil {
			return 0, false, err
		}

		if strings.TrimSpace(line) == "0" {
			return 0, false, nil
		}

		id, err := model.ParseID(field, line)
		if err != nil {
			m.printf("Invalid entry. %s are numeric values only. Please try again.\n", idNoun(field))
			continue
		}

		found, err := exists(id)
		if err != nil {
			return 0, false, err
		}
		if !found {
			m.printf("%s not found. Please try again.\n", upperFirst(field))
			continue
		}

		return id, true, nil
	}
}

func idNoun(field string) string {
	if field == "project number" {
		return "Project numbers"
	}

	return "IDs"
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
