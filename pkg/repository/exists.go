package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/model"
	"github.com/pseudomuto/poise/pkg/utils"
	"go.uber.org/zap"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// idExists reports whether a row with the given key exists in table. The
// identifier comes from the table enum; only id is bound from input.
func idExists(ctx context.Context, q database.Querier, d database.Dialect, table model.Table, id int64) (bool, error) {
	if !table.Valid() {
		return false, errors.Wrapf(model.ErrUnknownTable, "%s", table)
	}

	query, args := d.Builder().
		SelectRaw("1").
		From(table.Name()).
		Where(table.KeyColumn(), "=", id).
		Build()

	var one int
	switch err := q.QueryRowContext(ctx, query, args...).Scan(&one); {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	default:
		return false, model.NewDatabaseError("check "+table.Name()+" id", err)
	}
}

// checkReferences returns a *model.ForeignKeyError for the first reference
// that does not exist.
func checkReferences(ctx context.Context, q database.Querier, d database.Dialect, refs []model.Reference) error {
	for _, ref := range refs {
		ok, err := idExists(ctx, q, d, ref.Table, ref.ID)
		if err != nil {
			return err
		}
		if !ok {
			return &model.ForeignKeyError{Table: ref.Table, ID: ref.ID}
		}
	}

	return nil
}

// insert runs an INSERT built by b and returns the generated key. Dialects
// with RETURNING read the key from the statement; the rest use LastInsertId.
func insert(ctx context.Context, q database.Querier, d database.Dialect, b *utils.SQLBuilder, key, op string, logger *zap.Logger) (int64, error) {
	if d.Returning {
		query, args := b.Returning(key).Build()
		logger.Debug("executing statement", zap.String("op", op), zap.String("sql", query))

		var id int64
		if err := q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			logger.Error("statement failed", zap.String("op", op), zap.Error(err))
			return 0, model.NewDatabaseError(op, err)
		}
		return id, nil
	}

	query, args := b.Build()
	res, err := exec(ctx, q, query, args, op, logger)
	if err != nil {
		return 0, err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return 0, model.NewDatabaseError(op, errors.New("no rows were inserted"))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, model.NewDatabaseError(op, errors.Wrap(err, "failed to read generated key"))
	}

	return id, nil
}

// exec runs a single statement, logging it at debug.
func exec(ctx context.Context, q database.Querier, query string, args []any, op string, logger *zap.Logger) (sql.Result, error) {
	logger.Debug("executing statement", zap.String("op", op), zap.String("sql", query), zap.Int("args", len(args)))

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error("statement failed", zap.String("op", op), zap.Error(err))
		return nil, model.NewDatabaseError(op, err)
	}

	return res, nil
}
