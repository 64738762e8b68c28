// Package database connects poise to its record store.
//
// A Dialect captures what differs between the supported drivers: the
// database/sql driver name, identifier quoting, placeholder style, whether
// INSERT ... RETURNING is available, and how a DSN is built from
// config.Database.
//
// Supported dialects:
//   - postgres: github.com/lib/pq, $N placeholders, RETURNING
//   - mysql: github.com/go-sql-driver/mysql, ? placeholders, LastInsertId
//   - sqlite: modernc.org/sqlite, ? placeholders, LastInsertId
//
// A Provider wraps a *sql.DB and lends out one connection per operation
// through WithConn. Every driver error is returned as a *model.DatabaseError
// naming the operation that failed.
//
// Example:
//
//	p, err := database.Open(cfg.Database, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	err = p.WithConn(ctx, "ping", func(q database.Querier) error {
//		_, err := q.ExecContext(ctx, "SELECT 1")
//		return err
//	})
package database
