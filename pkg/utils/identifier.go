package utils

import "strings"

// LikeEscape is the escape character used for LIKE patterns. It is not special
// in string literals of any supported dialect.
const LikeEscape = '!'

// QuoteIdentifier wraps each dot separated part of name in the quote
// character q, doubling any embedded quote characters.
//
// Examples:
//   - ("projects", '"') -> "\"projects\""
//   - ("poise.projects", '`') -> "`poise`.`projects`"
//   - ("`projects`", '`') -> "`projects`" (already quoted, not double-quoted)
//   - ("", '"') -> ""
func QuoteIdentifier(name string, q byte) string {
	if name == "" {
		return ""
	}

	if IsQuoted(name, q) {
		return name
	}

	quote := string(q)
	parts := strings.Split(name, ".")
	for i, part := range parts {
		if IsQuoted(part, q) {
			continue
		}
		parts[i] = quote + strings.ReplaceAll(part, quote, quote+quote) + quote
	}

	return strings.Join(parts, ".")
}

// BacktickIdentifier quotes name the way MySQL expects.
//
// Examples:
//   - "architect" -> "`architect`"
//   - "db.architect" -> "`db`.`architect`"
func BacktickIdentifier(name string) string {
	return QuoteIdentifier(name, '`')
}

// DoubleQuoteIdentifier quotes name the way PostgreSQL and SQLite expect.
//
// Examples:
//   - "customer" -> "\"customer\""
//   - "public.customer" -> "\"public\".\"customer\""
func DoubleQuoteIdentifier(name string) string {
	return QuoteIdentifier(name, '"')
}

// IsQuoted checks if s is a single identifier wrapped in q.
//
// Examples:
//   - ("`table`", '`') -> true
//   - ("table", '`') -> false
//   - ("`db`.`table`", '`') -> false (qualified name, not a single identifier)
func IsQuoted(s string, q byte) bool {
	if len(s) < 2 || s[0] != q || s[len(s)-1] != q {
		return false
	}

	inner := strings.ReplaceAll(s[1:len(s)-1], string(q)+string(q), "")
	return !strings.ContainsRune(inner, rune(q))
}

// EscapeLike escapes the LIKE wildcards in s (and the escape character itself)
// so that s only ever matches literally.
//
// Examples:
//   - "Clinic" -> "Clinic"
//   - "50%_off" -> "50!%!_off"
func EscapeLike(s string) string {
	esc := string(LikeEscape)
	return strings.NewReplacer(esc, esc+esc, "%", esc+"%", "_", esc+"_").Replace(s)
}

// ContainsPattern returns a LIKE pattern matching any value containing s.
//
// Example:
//   - "Clinic" -> "%Clinic%"
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
