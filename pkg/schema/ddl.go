package schema

import (
	"bufio"
	"context"
	"embed"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/database"
	"github.com/pseudomuto/poise/pkg/logging"
	"github.com/pseudomuto/poise/pkg/model"
	"go.uber.org/zap"
)

//go:embed ddl/*.sql
var ddl embed.FS

// DDL returns the schema script for a dialect ("postgres", "mysql" or "sqlite").
func DDL(dialect string) (string, error) {
	data, err := ddl.ReadFile("ddl/" + dialect + ".sql")
	if err != nil {
		return "", errors.Wrapf(err, "no schema for dialect %q", dialect)
	}

	return string(data), nil
}

// Statements splits the schema script for dialect into individual
// statements. Comment lines and blank lines are dropped and the trailing
// semicolon is removed.
//
// Example:
//
//	stmts, err := schema.Statements("sqlite")
//	// stmts[0]: CREATE TABLE IF NOT EXISTS architect (...)
func Statements(dialect string) ([]string, error) {
	script, err := DDL(dialect)
	if err != nil {
		return nil, err
	}

	var (
		stmts []string
		cur   strings.Builder
	)

	scanner := bufio.NewScanner(strings.NewReader(script))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}

		if cur.Len() > 0 {
			cur.WriteString("\n")
		}
		cur.WriteString(scanner.Text())

		if strings.HasSuffix(line, ";") {
			stmts = append(stmts, strings.TrimSuffix(strings.TrimSpace(cur.String()), ";"))
			cur.Reset()
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read schema")
	}

	if rest := strings.TrimSpace(cur.String()); rest != "" {
		stmts = append(stmts, rest)
	}

	return stmts, nil
}

// Dump writes the schema script for dialect to w.
func Dump(w io.Writer, dialect string) error {
	script, err := DDL(dialect)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, script)
	return errors.Wrap(err, "failed to write schema")
}

// Apply creates any of the four tables that do not exist yet. Existing tables
// are left alone.
func Apply(ctx context.Context, p *database.Provider, logger *zap.Logger) error {
	logger = logging.FromContext(ctx, logger)

	stmts, err := Statements(p.Dialect().Name)
	if err != nil {
		return err
	}

	return p.WithConn(ctx, "apply schema", func(q database.Querier) error {
		for i, stmt := range stmts {
			logger.Debug("applying schema statement", zap.Int("index", i), zap.String("sql", stmt))
			if _, err := q.ExecContext(ctx, stmt); err != nil {
				return model.NewDatabaseError("apply schema", err)
			}
		}

		logger.Info("schema applied", zap.String("dialect", p.Dialect().Name), zap.Int("statements", len(stmts)))
		return nil
	})
}
