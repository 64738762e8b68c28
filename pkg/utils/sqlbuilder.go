package utils

import (
	"strconv"
	"strings"
)

type (
	// Placeholder renders the bind parameter for the nth argument (1-based).
	Placeholder func(n int) string

	// Quoter quotes a table or column identifier.
	Quoter func(name string) string

	// SQLBuilder provides a fluent interface for building parameterized DML
	// statements. Values passed to Set, Values and Where are never inlined into
	// the SQL text; they are collected as bind arguments and replaced by the
	// configured placeholder.
	//
	// Example usage:
	//
	//	query, args := NewSQLBuilder(DollarPlaceholder, DoubleQuoteIdentifier).
	//		Update("projects").
	//		Set("total_fee_gbp", fee).
	//		Set("finalised", true).
	//		Where("project_number", "=", 7).
	//		Build()
	//	// query: UPDATE "projects" SET "total_fee_gbp" = $1, "finalised" = $2 WHERE "project_number" = $3
	//	// args:  [fee true 7]
	SQLBuilder struct {
		parts       []string
		args        []any
		placeholder Placeholder
		quote       Quoter
		clause      string
	}
)

// DollarPlaceholder renders PostgreSQL style placeholders: $1, $2, ...
func DollarPlaceholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// QuestionPlaceholder renders the positional ? placeholder used by MySQL and
// SQLite.
func QuestionPlaceholder(int) string {
	return "?"
}

// NewSQLBuilder creates a new SQLBuilder. A nil placeholder defaults to
// QuestionPlaceholder and a nil quoter leaves identifiers as they are.
//
// Example:
//
//	builder := utils.NewSQLBuilder(utils.DollarPlaceholder, utils.DoubleQuoteIdentifier)
func NewSQLBuilder(placeholder Placeholder, quote Quoter) *SQLBuilder {
	if placeholder == nil {
		placeholder = QuestionPlaceholder
	}
	if quote == nil {
		quote = func(name string) string { return name }
	}

	return &SQLBuilder{
		parts:       make([]string, 0, 16),
		placeholder: placeholder,
		quote:       quote,
	}
}

// Select adds a SELECT clause listing the given columns.
//
// Example:
//
//	builder.Select("id", "first_name")  // SELECT "id", "first_name"
func (b *SQLBuilder) Select(columns ...string) *SQLBuilder {
	b.parts = append(b.parts, "SELECT", b.columnList(columns))
	b.clause = "SELECT"
	return b
}

// SelectRaw adds a SELECT clause with a literal expression.
//
// Example:
//
//	builder.SelectRaw("1")  // SELECT 1
func (b *SQLBuilder) SelectRaw(expr string) *SQLBuilder {
	b.parts = append(b.parts, "SELECT", expr)
	b.clause = "SELECT"
	return b
}

// From adds a FROM clause.
//
// Example:
//
//	builder.From("architect")  // FROM "architect"
func (b *SQLBuilder) From(table string) *SQLBuilder {
	b.parts = append(b.parts, "FROM", b.quote(table))
	b.clause = "FROM"
	return b
}

// InsertInto adds an INSERT INTO clause with a column list.
//
// Example:
//
//	builder.InsertInto("customer", "first_name", "last_name")  // INSERT INTO "customer" ("first_name", "last_name")
func (b *SQLBuilder) InsertInto(table string, columns ...string) *SQLBuilder {
	b.parts = append(b.parts, "INSERT", "INTO", b.quote(table), "("+b.columnList(columns)+")")
	b.clause = "INSERT"
	return b
}

// Values adds a VALUES clause with one placeholder per value.
//
// Example:
//
//	builder.Values("Jane", "Doe")  // VALUES ($1, $2)
func (b *SQLBuilder) Values(values ...any) *SQLBuilder {
	params := make([]string, len(values))
	for i, v := range values {
		params[i] = b.bind(v)
	}

	b.parts = append(b.parts, "VALUES", "("+strings.Join(params, ", ")+")")
	b.clause = "VALUES"
	return b
}

// Update adds an UPDATE clause.
//
// Example:
//
//	builder.Update("projects")  // UPDATE "projects"
func (b *SQLBuilder) Update(table string) *SQLBuilder {
	b.parts = append(b.parts, "UPDATE", b.quote(table))
	b.clause = "UPDATE"
	return b
}

// Set adds a column assignment. The first call opens the SET clause and later
// calls are comma separated, so the statement never ends in a separator.
//
// Example:
//
//	builder.Set("email", "j@x.com").Set("address", "1 Main Rd")  // SET "email" = $1, "address" = $2
func (b *SQLBuilder) Set(column string, value any) *SQLBuilder {
	assignment := b.quote(column) + " = " + b.bind(value)
	if b.clause == "SET" {
		b.parts[len(b.parts)-1] += ","
	} else {
		b.parts = append(b.parts, "SET")
		b.clause = "SET"
	}

	b.parts = append(b.parts, assignment)
	return b
}

// DeleteFrom adds a DELETE FROM clause.
//
// Example:
//
//	builder.DeleteFrom("contractor")  // DELETE FROM "contractor"
func (b *SQLBuilder) DeleteFrom(table string) *SQLBuilder {
	b.parts = append(b.parts, "DELETE", "FROM", b.quote(table))
	b.clause = "DELETE"
	return b
}

// Where adds a column comparison with a bound value. The first condition
// opens the WHERE clause and later conditions are joined with AND.
//
// Example:
//
//	builder.Where("id", "=", 3)              // WHERE "id" = $1
//	builder.Where("deadline_date", "<", d)   // AND "deadline_date" < $2
func (b *SQLBuilder) Where(column, op string, value any) *SQLBuilder {
	return b.condition(b.quote(column) + " " + op + " " + b.bind(value))
}

// WhereNull adds an IS NULL condition.
//
// Example:
//
//	builder.WhereNull("completion_date")  // WHERE "completion_date" IS NULL
func (b *SQLBuilder) WhereNull(column string) *SQLBuilder {
	return b.condition(b.quote(column) + " IS NULL")
}

// WhereLike adds a LIKE condition using '!' as the escape character. The
// pattern is bound as given, so callers escape it with EscapeLike first.
//
// Example:
//
//	builder.WhereLike("project_name", "%Clinic%")  // WHERE "project_name" LIKE $1 ESCAPE '!'
func (b *SQLBuilder) WhereLike(column, pattern string) *SQLBuilder {
	return b.condition(b.quote(column) + " LIKE " + b.bind(pattern) + " ESCAPE '" + string(LikeEscape) + "'")
}

// OrderBy adds an ORDER BY clause.
//
// Example:
//
//	builder.OrderBy("project_number")  // ORDER BY "project_number"
func (b *SQLBuilder) OrderBy(columns ...string) *SQLBuilder {
	if len(columns) > 0 {
		b.parts = append(b.parts, "ORDER", "BY", b.columnList(columns))
		b.clause = "ORDER"
	}
	return b
}

// Returning adds a RETURNING clause (PostgreSQL).
//
// Example:
//
//	builder.Returning("id")  // RETURNING "id"
func (b *SQLBuilder) Returning(columns ...string) *SQLBuilder {
	if len(columns) > 0 {
		b.parts = append(b.parts, "RETURNING", b.columnList(columns))
		b.clause = "RETURNING"
	}
	return b
}

// String returns the SQL text without a trailing semicolon.
func (b *SQLBuilder) String() string {
	return strings.Join(b.parts, " ")
}

// Build returns the SQL text and its bind arguments.
func (b *SQLBuilder) Build() (string, []any) {
	return b.String(), b.args
}

func (b *SQLBuilder) bind(value any) string {
	b.args = append(b.args, value)
	return b.placeholder(len(b.args))
}

func (b *SQLBuilder) condition(expr string) *SQLBuilder {
	if b.clause == "WHERE" {
		b.parts = append(b.parts, "AND", expr)
	} else {
		b.parts = append(b.parts, "WHERE", expr)
		b.clause = "WHERE"
	}
	return b
}

func (b *SQLBuilder) columnList(columns []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = b.quote(c)
	}
	return strings.Join(quoted, ", ")
}
