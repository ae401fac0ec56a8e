package dialect

import (
	"strings"
)

// Dialect abstracts the SQL differences between PostgreSQL, MySQL and SQLite
// that matter to the record layer.
type Dialect interface {
	// Name returns the dialect name ("postgresql", "mysql", "sqlite")
	Name() string

	// QuoteIdentifier quotes a table or column identifier
	// PostgreSQL: "employees", MySQL: `employees`, SQLite: "employees"
	QuoteIdentifier(name string) string

	// MapType maps a logical column type to the SQL type of the database
	// Example: "decimal" -> "NUMERIC(10, 2)" (PostgreSQL) or "DECIMAL(10, 2)" (MySQL)
	MapType(logicalType string, isNullable bool) string

	// GetPlaceholder returns the parameter placeholder for a 1-based index
	// PostgreSQL: $1, $2, MySQL: ?, ?, SQLite: ?, ?
	GetPlaceholder(index int) string

	// GetCurrentDateFunction returns the expression for today's date
	GetCurrentDateFunction() string

	// Concat joins SQL expressions as a string concatenation
	// PostgreSQL/SQLite: a || b, MySQL: CONCAT(a, b)
	Concat(parts ...string) string

	// GetDriverName returns the database/sql driver name
	// PostgreSQL: "pgx", MySQL: "mysql", SQLite: "sqlite3"
	GetDriverName() string
}

// GetDialect returns the dialect for a provider name
func GetDialect(provider string) Dialect {
	provider = strings.ToLower(strings.TrimSpace(provider))

	switch provider {
	case "postgresql", "postgres":
		return &PostgreSQLDialect{}
	case "mysql", "mariadb":
		return &MySQLDialect{}
	case "sqlite", "sqlite3":
		return &SQLiteDialect{}
	default:
		return &PostgreSQLDialect{}
	}
}

// Placeholders returns n placeholders starting at index start
func Placeholders(d Dialect, start, n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = d.GetPlaceholder(start + i)
	}
	return out
}
