package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/logging"
	"github.com/pseudomuto/poise/pkg/model"
	"github.com/pseudomuto/poise/pkg/utils"
	"go.uber.org/zap"
)

type (
	// Clock returns the current time. ListPastDeadline compares against the
	// calendar date of the time it returns.
	Clock func() time.Time

	// ProjectSearch runs the read-only project queries.
	ProjectSearch struct {
		db     *database.Provider
		logger *zap.Logger
		now    Clock
	}
)

// NewProjectSearch creates a ProjectSearch. A nil clock defaults to time.Now.
func NewProjectSearch(db *database.Provider, logger *zap.Logger, now Clock) *ProjectSearch {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}

	return &ProjectSearch{
		db:     db,
		logger: logger.With(zap.Stringer("table", model.TableProjects)),
		now:    now,
	}
}

// ByNumber returns the project with the given number, or a
// *model.NotFoundError.
func (s *ProjectSearch) ByNumber(ctx context.Context, number int64) (model.Project, error) {
	logger := logging.FromContext(ctx, s.logger)
	const op = "find project"

	var project model.Project
	err := s.db.WithConn(ctx, op, func(q database.Querier) error {
		query, args := s.selectAll().Where(model.TableProjects.KeyColumn(), "=", number).Build()
		logger.Debug("executing query", zap.String("op", op), zap.String("sql", query))

		p, err := scanProject(q.QueryRowContext(ctx, query, args...))
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return &model.NotFoundError{Table: model.TableProjects, ID: number}
		case err != nil:
			return model.NewDatabaseError(op, err)
		}

		project = p
		return nil
	})

	return project, err
}

// ByName returns the projects whose name contains substring. LIKE wildcards in
// substring match literally. Whether the match is case sensitive depends on
// the column collation.
func (s *ProjectSearch) ByName(ctx context.Context, substring string) ([]model.Project, error) {
	b := s.selectAll().
		WhereLike("project_name", utils.ContainsPattern(substring)).
		OrderBy(model.TableProjects.KeyColumn())

	return s.list(ctx, "search projects by name", b)
}

// List returns every project ordered by project number.
func (s *ProjectSearch) List(ctx context.Context) ([]model.Project, error) {
	return s.list(ctx, "list projects", s.selectAll().OrderBy(model.TableProjects.KeyColumn()))
}

// ListIncomplete returns the projects that are not finalised.
func (s *ProjectSearch) ListIncomplete(ctx context.Context) ([]model.Project, error) {
	b := s.selectAll().
		Where("finalised", "=", false).
		OrderBy(model.TableProjects.KeyColumn())

	return s.list(ctx, "list incomplete projects", b)
}

// ListPastDeadline returns the projects whose deadline is before today and
// that have no completion date.
func (s *ProjectSearch) ListPastDeadline(ctx context.Context) ([]model.Project, error) {
	today := model.DateOf(s.now())
	b := s.selectAll().
		Where("deadline_date", "<", today).
		WhereNull("completion_date").
		OrderBy(model.TableProjects.KeyColumn())

	return s.list(ctx, "list overdue projects", b)
}

func (s *ProjectSearch) list(ctx context.Context, op string, b *utils.SQLBuilder) ([]model.Project, error) {
	logger := logging.FromContext(ctx, s.logger)

	projects := []model.Project{}
	err := s.db.WithConn(ctx, op, func(q database.Querier) error {
		query, args := b.Build()
		logger.Debug("executing query", zap.String("op", op), zap.String("sql", query))

		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return model.NewDatabaseError(op, err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			p, err := scanProject(rows)
			if err != nil {
				return model.NewDatabaseError(op, err)
			}
			projects = append(projects, p)
		}

		return model.NewDatabaseError(op, rows.Err())
	})
	if err != nil {
		logger.Error("query failed", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return projects, nil
}

func (s *ProjectSearch) selectAll() *utils.SQLBuilder {
	columns := append([]string{model.TableProjects.KeyColumn()}, model.ProjectColumns...)
	return s.db.Dialect().Builder().Select(columns...).From(model.TableProjects.Name())
}

func scanProject(s rowScanner) (model.Project, error) {
	var (
		p          model.Project
		name       sql.NullString
		completion sql.Null[model.Date]
	)

	err := s.Scan(
		&p.Number,
		&name,
		&p.BuildingType,
		&p.Address,
		&p.ErfNumber,
		&p.TotalFee,
		&p.PaidToDate,
		&p.Deadline,
		&completion,
		&p.Finalised,
		&p.ArchitectID,
		&p.ContractorID,
		&p.CustomerID,
	)
	if err != nil {
		return model.Project{}, err
	}

	p.Name = name.String
	if completion.Valid {
		p.Completion = &completion.V
	}

	return p, nil
}
