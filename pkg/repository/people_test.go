package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/model"
	"github.com/pseudomuto/poise/pkg/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewPersonRepository(t *testing.T) {
	_, err := repository.NewPersonRepository(nil, model.TableProjects, zap.NewNop())
	require.ErrorIs(t, err, model.ErrUnknownTable)

	r, err := repository.NewPersonRepository(nil, model.TableCustomer, nil)
	require.NoError(t, err)
	require.Equal(t, model.TableCustomer, r.Table())
}

func TestPeople_For(t *testing.T) {
	people := repository.NewPeople(nil, zap.NewNop())

	for _, tbl := range model.PersonTables {
		require.Equal(t, tbl, people.For(tbl).Table())
	}
	require.Nil(t, people.For(model.TableProjects))
}

func TestPersonRepository(t *testing.T) {
	ctx := context.Background()

	for _, tbl := range model.PersonTables {
		t.Run(tbl.Name(), func(t *testing.T) {
			f := newSQLite(t)
			repo := f.people.For(tbl)

			t.Run("add then find returns the same record", func(t *testing.T) {
				id, err := repo.Add(ctx, janeDoe())
				require.NoError(t, err)
				require.Positive(t, id)

				got, err := repo.FindByID(ctx, id)
				require.NoError(t, err)
				require.Equal(t, model.Person{ID: id, PersonDetails: janeDoe()}, got)

				ok, err := repo.Exists(ctx, id)
				require.NoError(t, err)
				require.True(t, ok)
			})

			t.Run("update overwrites every field", func(t *testing.T) {
				id, err := repo.Add(ctx, person("Ann"))
				require.NoError(t, err)

				changed := model.PersonDetails{
					FirstName:   "Annie",
					LastName:    "Smith",
					PhoneNumber: "0219998888",
					Email:       "annie@y.com",
					Address:     "9 Long St",
					PostCode:    "8001",
				}
				require.NoError(t, repo.Update(ctx, id, changed))

				got, err := repo.FindByID(ctx, id)
				require.NoError(t, err)
				require.Equal(t, changed, got.PersonDetails)
			})

			t.Run("delete then find reports not found", func(t *testing.T) {
				id, err := repo.Add(ctx, person("Gone"))
				require.NoError(t, err)
				require.NoError(t, repo.Delete(ctx, id))

				_, err = repo.FindByID(ctx, id)
				require.True(t, model.IsNotFound(err))

				ok, err := repo.Exists(ctx, id)
				require.NoError(t, err)
				require.False(t, ok)
			})

			t.Run("unknown ids", func(t *testing.T) {
				var nf *model.NotFoundError

				err := repo.Update(ctx, 9999, janeDoe())
				require.True(t, errors.As(err, &nf))
				require.Equal(t, tbl, nf.Table)
				require.Equal(t, int64(9999), nf.ID)

				require.True(t, model.IsNotFound(repo.Delete(ctx, 9999)))

				_, err = repo.FindByID(ctx, 9999)
				require.True(t, model.IsNotFound(err))
			})

			t.Run("list is ordered by id", func(t *testing.T) {
				people, err := repo.List(ctx)
				require.NoError(t, err)
				require.Len(t, people, 2)
				require.Less(t, people[0].ID, people[1].ID)
				require.Equal(t, "Jane", people[0].FirstName)
				require.Equal(t, "Annie", people[1].FirstName)
			})
		})
	}

	t.Run("empty list", func(t *testing.T) {
		people, err := newSQLite(t).people.Customers.List(ctx)
		require.NoError(t, err)
		require.NotNil(t, people)
		require.Empty(t, people)
	})

	t.Run("deleting a referenced person leaves the project", func(t *testing.T) {
		f := newSQLite(t)
		a, c, u := seedPeople(t, f)

		number, err := f.projects.Create(ctx, clinic(a, c, u))
		require.NoError(t, err)
		require.NoError(t, f.people.Architects.Delete(ctx, a))

		p, err := f.search.ByNumber(ctx, number)
		require.NoError(t, err)
		require.Equal(t, a, p.ArchitectID)
	})
}

func TestPersonRepository_SQL(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "first_name", "last_name", "phone_number", "email", "address", "post_code"}

	t.Run("postgres add uses RETURNING", func(t *testing.T) {
		f, mock := newMock(t, database.Postgres)

		mock.ExpectQuery(`INSERT INTO "architect" ("first_name", "last_name", "phone_number", "email", "address", "post_code") VALUES ($1, $2, $3, $4, $5, $6) RETURNING "id"`).
			WithArgs("Jane", "Doe", "0112223333", "jane@x.com", "1 Main Rd", "0001").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

		id, err := f.people.Architects.Add(ctx, janeDoe())
		require.NoError(t, err)
		require.Equal(t, int64(12), id)
	})

	t.Run("mysql add uses LastInsertId", func(t *testing.T) {
		f, mock := newMock(t, database.MySQL)

		mock.ExpectExec("INSERT INTO `customer` (`first_name`, `last_name`, `phone_number`, `email`, `address`, `post_code`) VALUES (?, ?, ?, ?, ?, ?)").
			WithArgs("Jane", "Doe", "0112223333", "jane@x.com", "1 Main Rd", "0001").
			WillReturnResult(sqlmock.NewResult(5, 1))

		id, err := f.people.Customers.Add(ctx, janeDoe())
		require.NoError(t, err)
		require.Equal(t, int64(5), id)
	})

	t.Run("no inserted rows is a database error", func(t *testing.T) {
		f, mock := newMock(t, database.MySQL)

		mock.ExpectExec("INSERT INTO `customer` (`first_name`, `last_name`, `phone_number`, `email`, `address`, `post_code`) VALUES (?, ?, ?, ?, ?, ?)").
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := f.people.Customers.Add(ctx, janeDoe())
		require.True(t, model.IsDatabase(err))
	})

	t.Run("update checks existence first", func(t *testing.T) {
		f, mock := newMock(t, database.Postgres)

		mock.ExpectQuery(`SELECT 1 FROM "contractor" WHERE "id" = $1`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
		mock.ExpectExec(`UPDATE "contractor" SET "first_name" = $1, "last_name" = $2, "phone_number" = $3, "email" = $4, "address" = $5, "post_code" = $6 WHERE "id" = $7`).
			WithArgs("Jane", "Doe", "0112223333", "jane@x.com", "1 Main Rd", "0001", int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, f.people.Contractors.Update(ctx, 3, janeDoe()))
	})

	t.Run("delete of unknown id issues no DELETE", func(t *testing.T) {
		f, mock := newMock(t, database.Postgres)

		mock.ExpectQuery(`SELECT 1 FROM "architect" WHERE "id" = $1`).
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

		require.True(t, model.IsNotFound(f.people.Architects.Delete(ctx, 8)))
	})

	t.Run("find", func(t *testing.T) {
		f, mock := newMock(t, database.Postgres)

		mock.ExpectQuery(`SELECT "id", "first_name", "last_name", "phone_number", "email", "address", "post_code" FROM "customer" WHERE "id" = $1`).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(2, "Jane", "Doe", "0112223333", "jane@x.com", "1 Main Rd", "0001"))

		got, err := f.people.Customers.FindByID(ctx, 2)
		require.NoError(t, err)
		require.Equal(t, model.Person{ID: 2, PersonDetails: janeDoe()}, got)
	})

	t.Run("statement failure is a database error", func(t *testing.T) {
		f, mock := newMock(t, database.Postgres)

		mock.ExpectQuery(`SELECT "id", "first_name", "last_name", "phone_number", "email", "address", "post_code" FROM "architect" ORDER BY "id"`).
			WillReturnError(errors.New("connection reset by peer"))

		_, err := f.people.Architects.List(ctx)
		require.True(t, model.IsDatabase(err))
		require.Contains(t, err.Error(), "list architect")
		require.Contains(t, err.Error(), "connection reset by peer")
	})
}
