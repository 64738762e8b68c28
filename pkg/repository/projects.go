package repository

import (
	"context"

	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/logging"
	"github.com/pseudomuto/poise/pkg/model"
	"go.uber.org/zap"
)

// UpdateStatus describes the outcome of a project update.
type UpdateStatus int

const (
	// Updated means an UPDATE statement was executed.
	Updated UpdateStatus = iota

	// NoChanges means the patch was empty and no statement was executed.
	NoChanges
)

type (
	// UpdateResult is returned by ProjectRepository.Update.
	UpdateResult struct {
		Status UpdateStatus

		// Columns lists the columns that were assigned, in statement order.
		Columns []string
	}

	// ProjectRepository writes project records.
	ProjectRepository struct {
		db     *database.Provider
		logger *zap.Logger
	}
)

// String implements fmt.Stringer.
func (s UpdateStatus) String() string {
	if s == NoChanges {
		return "no changes"
	}

	return "updated"
}

// NewProjectRepository creates a ProjectRepository.
func NewProjectRepository(db *database.Provider, logger *zap.Logger) *ProjectRepository {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ProjectRepository{
		db:     db,
		logger: logger.With(zap.Stringer("table", model.TableProjects)),
	}
}

// Create inserts a project and returns its project number.
//
// The architect, contractor and customer must already exist. When one does
// not, a *model.ForeignKeyError is returned and nothing is inserted.
func (r *ProjectRepository) Create(ctx context.Context, fields model.ProjectFields) (int64, error) {
	logger := logging.FromContext(ctx, r.logger)
	const op = "insert project"

	var number int64
	err := r.db.WithConn(ctx, op, func(q database.Querier) error {
		if err := checkReferences(ctx, q, r.db.Dialect(), fields.References()); err != nil {
			return err
		}

		b := r.db.Dialect().Builder().
			InsertInto(model.TableProjects.Name(), model.ProjectColumns...).
			Values(fields.Values()...)

		var err error
		number, err = insert(ctx, q, r.db.Dialect(), b, model.TableProjects.KeyColumn(), op, logger)
		return err
	})
	if err != nil {
		logger.Warn("project not created", zap.Error(err))
		return 0, err
	}

	logger.Info("project created", zap.Int64("project_number", number))
	return number, nil
}

// Update applies a partial update to a project.
//
// A *model.NotFoundError is returned when the project does not exist. An
// empty patch executes nothing and reports NoChanges. Otherwise any foreign
// keys in the patch are checked and a single UPDATE assigning only the
// supplied columns is executed.
func (r *ProjectRepository) Update(ctx context.Context, number int64, patch model.ProjectPatch) (UpdateResult, error) {
	logger := logging.FromContext(ctx, r.logger).With(zap.Int64("project_number", number))
	const op = "update project"

	result := UpdateResult{Status: NoChanges}
	err := r.db.WithConn(ctx, op, func(q database.Querier) error {
		ok, err := idExists(ctx, q, r.db.Dialect(), model.TableProjects, number)
		if err != nil {
			return err
		}
		if !ok {
			return &model.NotFoundError{Table: model.TableProjects, ID: number}
		}

		assignments := patch.Assignments()
		if len(assignments) == 0 {
			return nil
		}

		if err := checkReferences(ctx, q, r.db.Dialect(), patch.References()); err != nil {
			return err
		}

		b := r.db.Dialect().Builder().Update(model.TableProjects.Name())
		columns := make([]string, 0, len(assignments))
		for _, a := range assignments {
			b.Set(a.Column, a.Value)
			columns = append(columns, a.Column)
		}
		query, args := b.Where(model.TableProjects.KeyColumn(), "=", number).Build()

		if _, err := exec(ctx, q, query, args, op, logger); err != nil {
			return err
		}

		result = UpdateResult{Status: Updated, Columns: columns}
		return nil
	})
	if err != nil {
		return UpdateResult{}, err
	}

	if result.Status == NoChanges {
		logger.Info("no fields were updated")
	} else {
		logger.Info("project updated", zap.Strings("columns", result.Columns))
	}

	return result, nil
}

// Delete removes a project.
func (r *ProjectRepository) Delete(ctx context.Context, number int64) error {
	logger := logging.FromContext(ctx, r.logger)
	const op = "delete project"

	err := r.db.WithConn(ctx, op, func(q database.Querier) error {
		ok, err := idExists(ctx, q, r.db.Dialect(), model.TableProjects, number)
		if err != nil {
			return err
		}
		if !ok {
			return &model.NotFoundError{Table: model.TableProjects, ID: number}
		}

		query, args := r.db.Dialect().Builder().
			DeleteFrom(model.TableProjects.Name()).
			Where(model.TableProjects.KeyColumn(), "=", number).
			Build()

		_, err = exec(ctx, q, query, args, op, logger)
		return err
	})
	if err != nil {
		return err
	}

	logger.Info("project deleted", zap.Int64("project_number", number))
	return nil
}

// IDExists reports whether a row keyed by id exists in table. It serves the
// foreign key checks and the menu's id prompts.
func (r *ProjectRepository) IDExists(ctx context.Context, table model.Table, id int64) (bool, error) {
	var ok bool
	err := r.db.WithConn(ctx, "check "+table.Name()+" id", func(q database.Querier) error {
		var err error
		ok, err = idExists(ctx, q, r.db.Dialect(), table, id)
		return err
	})

	return ok, err
}
