package database

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/config"
	"github.com/pseudomuto/poise/pkg/model"
	"go.uber.org/zap"
)

type (
	// Querier is the subset of *sql.Conn used by the repositories.
	Querier interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
		QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
		QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	}

	// Provider hands out one connection per operation.
	//
	// Each call to WithConn acquires a connection, runs the operation and
	// releases the connection again on every exit path. A Provider created by
	// Open keeps no idle connections, so a released connection is closed and
	// nothing is held open between operations.
	Provider struct {
		db      *sql.DB
		dialect Dialect
		logger  *zap.Logger
	}
)

// Open creates a Provider for cfg. No connection is made until the first
// operation; connection failures surface from WithConn as a
// *model.DatabaseError.
func Open(cfg config.Database, logger *zap.Logger) (*Provider, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := dialect.DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, model.NewDatabaseError("open", err)
	}
	db.SetMaxIdleConns(0)

	logger.Debug("database configured",
		zap.String("driver", dialect.Name),
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name),
		zap.String("path", cfg.Path),
	)

	return New(db, dialect, logger), nil
}

// New wraps an existing *sql.DB. The pool settings of db are left alone.
func New(db *sql.DB, dialect Dialect, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Provider{db: db, dialect: dialect, logger: logger}
}

// Dialect returns the SQL dialect of the underlying database.
func (p *Provider) Dialect() Dialect {
	return p.dialect
}

// WithConn acquires a connection, passes it to fn and releases it when fn
// returns. op names the operation in errors and logs.
func (p *Provider) WithConn(ctx context.Context, op string, fn func(Querier) error) error {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		p.logger.Error("failed to acquire connection", zap.String("op", op), zap.Error(err))
		return model.NewDatabaseError(op, errors.Wrap(err, "failed to acquire connection"))
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			p.logger.Warn("failed to release connection", zap.String("op", op), zap.Error(cerr))
		}
	}()

	return fn(conn)
}

// Ping checks that a connection can be established.
func (p *Provider) Ping(ctx context.Context) error {
	return p.WithConn(ctx, "ping", func(q Querier) error {
		var one int
		return model.NewDatabaseError("ping", q.QueryRowContext(ctx, "SELECT 1").Scan(&one))
	})
}

// Close closes the underlying *sql.DB.
func (p *Provider) Close() error {
	return errors.Wrap(p.db.Close(), "failed to close database")
}
