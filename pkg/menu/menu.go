// Package menu implements the interactive PoisePMS console.
//
// A Menu reads operator input line by line from an io.Reader and writes
// prompts, records and status messages to an io.Writer. Every numbered
// choice is validated with ParseChoice and invalid input is asked for
// again, so a session only ends when the operator picks Exit from the main
// menu, the input is exhausted, or the context is cancelled.
//
// Each action runs with its own correlation id, attached to every log line
// the repositories write while serving it.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/format"
	"github.com/pseudomuto/poise/pkg/logging"
	"github.com/pseudomuto/poise/pkg/model"
	"github.com/pseudomuto/poise/pkg/repository"
	"go.uber.org/zap"
)

type (
	// Stores groups the repositories the menu works against.
	Stores struct {
		People   *repository.People
		Projects *repository.ProjectRepository
		Search   *repository.ProjectSearch
	}

	// Menu is an interactive console session.
	Menu struct {
		in        *bufio.Reader
		out       io.Writer
		stores    Stores
		formatter *format.Formatter
		logger    *zap.Logger
	}

	// screen is a numbered list of options. Option i is chosen with i+1 and
	// 0 always selects back.
	screen struct {
		title   string
		options []string
		back    string
	}
)

var mainScreen = screen{
	title: "Main Menu",
	options: []string{
		"Add a new project",
		"Update existing project",
		"Delete a project",
		"Projects search menu",
		"Architects menu",
		"Contractors menu",
		"Customers menu",
		"Export projects to a spreadsheet",
	},
	back: "Exit",
}

// New creates a Menu reading from in and writing to out.
func New(in io.Reader, out io.Writer, stores Stores, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Menu{
		in:        bufio.NewReader(in),
		out:       out,
		stores:    stores,
		formatter: format.New(format.Defaults),
		logger:    logger.Named("menu"),
	}
}

// Run shows the main menu until the operator exits. Running out of input
// ends the session without an error.
func (m *Menu) Run(ctx context.Context) error {
	err := m.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		m.println()
		m.println("Input closed. Exiting program.")
		return nil
	}

	return err
}

func (m *Menu) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.println()
		m.show(mainScreen)

		choice, err := m.choose(len(mainScreen.options))
		if err != nil {
			return err
		}
		m.println()

		switch choice {
		case 1:
			m.println("Add a new project selected.")
			err = m.action(ctx, "add project", m.addProject)
		case 2:
			m.println("Update a project selected.")
			err = m.action(ctx, "update project", m.updateProject)
		case 3:
			m.println("Delete a project selected.")
			err = m.action(ctx, "delete project", m.deleteProject)
		case 4:
			err = m.searchMenu(ctx)
		case 5, 6, 7:
			err = m.personMenu(ctx, m.stores.People.For(model.PersonTables[choice-5]))
		case 8:
			m.println("Export projects selected.")
			err = m.action(ctx, "export projects", m.exportProjects)
		case 0:
			m.println("Exiting program.")
			return nil
		}

		if err != nil {
			return err
		}
	}
}

// action runs fn with a fresh correlation id. Domain failures are reported
// to the operator and swallowed; only end of input and cancellation stop the
// session.
func (m *Menu) action(ctx context.Context, name string, fn func(context.Context) error) error {
	logger := m.logger.With(
		zap.String("correlation_id", uuid.NewString()),
		zap.String("action", name),
	)
	logger.Debug("action started")

	err := fn(logging.WithLogger(ctx, logger))
	switch {
	case err == nil:
		logger.Debug("action finished")
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		return err
	}

	logger.Warn("action failed", zap.Error(err))
	m.report(err)
	return nil
}

// report prints a one line explanation of a failed action.
func (m *Menu) report(err error) {
	var (
		fk  *model.ForeignKeyError
		nf  *model.NotFoundError
		val *model.ValidationError
		db  *model.DatabaseError
	)

	switch {
	case errors.As(err, &fk):
		m.printf("%s ID not found. No ID %d exists in the %s table.\n", fk.Table.Label(), fk.ID, fk.Table.Name())
	case errors.As(err, &nf):
		if nf.Table == model.TableProjects {
			m.println("Project number not found.")
		} else {
			m.printf("%s ID not found.\n", nf.Table.Label())
		}
	case errors.As(err, &val):
		m.println(sentence(val))
	case errors.As(err, &db):
		m.println(sentence(db))
	default:
		m.printf("Error: %v\n", err)
	}
}

func (m *Menu) show(s screen) {
	m.printf("%s:\n", s.title)
	for i, opt := range s.options {
		m.printf("%d: %s\n", i+1, opt)
	}
	m.printf("0: %s\n", s.back)
	m.println()
}

func (m *Menu) printf(msg string, args ...any) {
	_, _ = fmt.Fprintf(m.out, msg, args...)
}

func (m *Menu) println(args ...any) {
	_, _ = fmt.Fprintln(m.out, args...)
}

// sentence turns an error message into a capitalised sentence.
func sentence(err error) string {
	msg := err.Error()
	r, size := utf8.DecodeRuneInString(msg)
	msg = string(unicode.ToUpper(r)) + msg[size:]

	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}

	return msg
}
