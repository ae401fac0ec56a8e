package dialect

import (
	"fmt"
	"strings"
)

// SQLiteDialect implements the SQLite dialect
type SQLiteDialect struct{}

func (d *SQLiteDialect) Name() string {
	return "sqlite"
}

func (d *SQLiteDialect) QuoteIdentifier(name string) string {
	return fmt.Sprintf(`"%s"`, strings.ReplaceAll(name, `"`, `""`))
}

func (d *SQLiteDialect) MapType(logicalType string, isNullable bool) string {
	// SQLite types are affinities; DATE keeps the declared type so the
	// driver hands back time.Time for date columns
	var sqlType string
	switch strings.ToLower(logicalType) {
	case "string":
		sqlType = "TEXT"
	case "int", "bigint":
		sqlType = "INTEGER"
	case "decimal":
		sqlType = "NUMERIC"
	case "date":
		sqlType = "DATE"
	default:
		sqlType = "TEXT"
	}
	if !isNullable {
		sqlType += " NOT NULL"
	}
	return sqlType
}

func (d *SQLiteDialect) GetPlaceholder(index int) string {
	return "?"
}

func (d *SQLiteDialect) GetCurrentDateFunction() string {
	return "CURRENT_DATE"
}

func (d *SQLiteDialect) Concat(parts ...string) string {
	return "(" + strings.Join(parts, " || ") + ")"
}

func (d *SQLiteDialect) GetDriverName() string {
	return "sqlite3"
}
