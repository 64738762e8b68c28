package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/logging"
	"github.com/pseudomuto/poise/pkg/model"
	"github.com/pseudomuto/poise/pkg/utils"
	"go.uber.org/zap"
)

type (
	// PersonRepository stores architects, contractors or customers. The three
	// tables share a layout, so a single implementation is bound to one of
	// them by its model.Table.
	PersonRepository struct {
		db     *database.Provider
		table  model.Table
		logger *zap.Logger
	}

	// People groups the three person repositories.
	People struct {
		Architects  *PersonRepository
		Contractors *PersonRepository
		Customers   *PersonRepository
	}
)

// NewPersonRepository returns a repository for table, which must be one of
// the person tables.
func NewPersonRepository(db *database.Provider, table model.Table, logger *zap.Logger) (*PersonRepository, error) {
	if !table.IsPerson() {
		return nil, errors.Wrapf(model.ErrUnknownTable, "%s is not a person table", table)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PersonRepository{
		db:     db,
		table:  table,
		logger: logger.With(zap.Stringer("table", table)),
	}, nil
}

// NewArchitects returns the architect repository.
func NewArchitects(db *database.Provider, logger *zap.Logger) *PersonRepository {
	return mustPerson(db, model.TableArchitect, logger)
}

// NewContractors returns the contractor repository.
func NewContractors(db *database.Provider, logger *zap.Logger) *PersonRepository {
	return mustPerson(db, model.TableContractor, logger)
}

// NewCustomers returns the customer repository.
func NewCustomers(db *database.Provider, logger *zap.Logger) *PersonRepository {
	return mustPerson(db, model.TableCustomer, logger)
}

// NewPeople returns all three person repositories.
func NewPeople(db *database.Provider, logger *zap.Logger) *People {
	return &People{
		Architects:  NewArchitects(db, logger),
		Contractors: NewContractors(db, logger),
		Customers:   NewCustomers(db, logger),
	}
}

// For returns the repository bound to table, or nil for a non-person table.
func (p *People) For(table model.Table) *PersonRepository {
	switch table {
	case model.TableArchitect:
		return p.Architects
	case model.TableContractor:
		return p.Contractors
	case model.TableCustomer:
		return p.Customers
	default:
		return nil
	}
}

// Table returns the table the repository is bound to.
func (r *PersonRepository) Table() model.Table {
	return r.table
}

// Add inserts a new record and returns its database-assigned id.
func (r *PersonRepository) Add(ctx context.Context, details model.PersonDetails) (int64, error) {
	logger := logging.FromContext(ctx, r.logger)
	op := "insert " + r.table.Name()

	var id int64
	err := r.db.WithConn(ctx, op, func(q database.Querier) error {
		b := r.db.Dialect().Builder().
			InsertInto(r.table.Name(), model.PersonColumns...).
			Values(details.Values()...)

		var err error
		id, err = insert(ctx, q, r.db.Dialect(), b, r.table.KeyColumn(), op, logger)
		return err
	})
	if err != nil {
		return 0, err
	}

	logger.Info("record added", zap.Int64("id", id))
	return id, nil
}

// Update overwrites all fields of the record with the given id.
func (r *PersonRepository) Update(ctx context.Context, id int64, details model.PersonDetails) error {
	logger := logging.FromContext(ctx, r.logger)
	op := "update " + r.table.Name()

	err := r.db.WithConn(ctx, op, func(q database.Querier) error {
		if err := r.requireExists(ctx, q, id); err != nil {
			return err
		}

		values := details.Values()
		b := r.db.Dialect().Builder().Update(r.table.Name())
		for i, col := range model.PersonColumns {
			b.Set(col, values[i])
		}
		query, args := b.Where(r.table.KeyColumn(), "=", id).Build()

		_, err := exec(ctx, q, query, args, op, logger)
		return err
	})
	if err != nil {
		return err
	}

	logger.Info("record updated", zap.Int64("id", id))
	return nil
}

// Delete removes the record with the given id. Projects referencing it are
// left untouched.
func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	logger := logging.FromContext(ctx, r.logger)
	op := "delete " + r.table.Name()

	err := r.db.WithConn(ctx, op, func(q database.Querier) error {
		if err := r.requireExists(ctx, q, id); err != nil {
			return err
		}

		query, args := r.db.Dialect().Builder().
			DeleteFrom(r.table.Name()).
			Where(r.table.KeyColumn(), "=", id).
			Build()

		_, err := exec(ctx, q, query, args, op, logger)
		return err
	})
	if err != nil {
		return err
	}

	logger.Info("record deleted", zap.Int64("id", id))
	return nil
}

// FindByID returns the record with the given id.
func (r *PersonRepository) FindByID(ctx context.Context, id int64) (model.Person, error) {
	logger := logging.FromContext(ctx, r.logger)
	op := "find " + r.table.Name()

	var person model.Person
	err := r.db.WithConn(ctx, op, func(q database.Querier) error {
		query, args := r.selectAll().Where(r.table.KeyColumn(), "=", id).Build()
		logger.Debug("executing query", zap.String("op", op), zap.String("sql", query))

		p, err := scanPerson(q.QueryRowContext(ctx, query, args...))
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return &model.NotFoundError{Table: r.table, ID: id}
		case err != nil:
			return model.NewDatabaseError(op, err)
		}

		person = p
		return nil
	})

	return person, err
}

// List returns every record ordered by id.
func (r *PersonRepository) List(ctx context.Context) ([]model.Person, error) {
	logger := logging.FromContext(ctx, r.logger)
	op := "list " + r.table.Name()

	people := []model.Person{}
	err := r.db.WithConn(ctx, op, func(q database.Querier) error {
		query, args := r.selectAll().OrderBy(r.table.KeyColumn()).Build()
		logger.Debug("executing query", zap.String("op", op), zap.String("sql", query))

		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return model.NewDatabaseError(op, err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			p, err := scanPerson(rows)
			if err != nil {
				return model.NewDatabaseError(op, err)
			}
			people = append(people, p)
		}

		return model.NewDatabaseError(op, rows.Err())
	})
	if err != nil {
		return nil, err
	}

	return people, nil
}

// Exists reports whether a record with the given id exists.
func (r *PersonRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.WithConn(ctx, "check "+r.table.Name()+" id", func(q database.Querier) error {
		var err error
		ok, err = idExists(ctx, q, r.db.Dialect(), r.table, id)
		return err
	})

	return ok, err
}

func (r *PersonRepository) requireExists(ctx context.Context, q database.Querier, id int64) error {
	ok, err := idExists(ctx, q, r.db.Dialect(), r.table, id)
	if err != nil {
		return err
	}
	if !ok {
		return &model.NotFoundError{Table: r.table, ID: id}
	}

	return nil
}

func (r *PersonRepository) selectAll() *utils.SQLBuilder {
	columns := append([]string{r.table.KeyColumn()}, model.PersonColumns...)
	return r.db.Dialect().Builder().Select(columns...).From(r.table.Name())
}

func scanPerson(s rowScanner) (model.Person, error) {
	var p model.Person
	err := s.Scan(&p.ID, &p.FirstName, &p.LastName, &p.PhoneNumber, &p.Email, &p.Address, &p.PostCode)
	return p, err
}

func mustPerson(db *database.Provider, table model.Table, logger *zap.Logger) *PersonRepository {
	r, err := NewPersonRepository(db, table, logger)
	if err != nil {
		panic(err)
	}

	return r
}
