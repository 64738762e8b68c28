// Package utils provides common utility functions used throughout the poise codebase.
//
// This package contains shared helpers used by the model, repository and
// schema packages so that SQL text and input checks are produced the same way
// everywhere.
//
// # SQL Builder (sqlbuilder.go)
//
// SQLBuilder builds parameterized DML. It is dialect agnostic: the caller
// supplies a Placeholder ($N for PostgreSQL, ? for MySQL and SQLite) and a
// Quoter for identifiers. Values are always bound, never inlined.
//
//	query, args := utils.NewSQLBuilder(utils.QuestionPlaceholder, utils.BacktickIdentifier).
//		Select("id", "first_name").
//		From("architect").
//		Where("id", "=", 3).
//		Build()
//	// query: SELECT `id`, `first_name` FROM `architect` WHERE `id` = ?
//	// args:  [3]
//
// The partial project update relies on Set: each call appends one
// assignment, so a statement only ever lists the columns that were supplied
// and never ends in a dangling separator.
//
// # Identifier Utilities (identifier.go)
//
// QuoteIdentifier and its BacktickIdentifier / DoubleQuoteIdentifier
// shorthands quote table and column names. Only names taken from the closed
// table enum or fixed column lists are ever quoted; user input never reaches
// an identifier position.
//
// EscapeLike and ContainsPattern prepare user input for a LIKE match using
// LikeEscape as the escape character:
//
//	pattern := utils.ContainsPattern("50%")
//	// Result: %50!%%
//
// # Value Type Utilities (validation.go)
//
// IsNumericValue, IsBooleanValue and IsDigits back the field parsers in the
// model package and the menu choice parser.
//
//	utils.IsNumericValue("100000.00") // true
//	utils.IsBooleanValue("FALSE")     // true
//	utils.IsDigits("007")             // true
//	utils.HasLeadingZero("007")       // true
package utils
