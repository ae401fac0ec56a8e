package dialect

import (
	"fmt"
	"strings"
)

// PostgreSQLDialect implements the PostgreSQL dialect
type PostgreSQLDialect struct{}

func (d *PostgreSQLDialect) Name() string {
	return "postgresql"
}

func (d *PostgreSQLDialect) QuoteIdentifier(name string) string {
	return fmt.Sprintf(`"%s"`, strings.ReplaceAll(name, `"`, `""`))
}

func (d *PostgreSQLDialect) MapType(logicalType string, isNullable bool) string {
	var sqlType string
	switch strings.ToLower(logicalType) {
	case "string":
		sqlType = "VARCHAR(255)"
	case "int":
		sqlType = "INTEGER"
	case "bigint":
		sqlType = "BIGINT"
	case "decimal":
		sqlType = "NUMERIC(10, 2)"
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

func (d *PostgreSQLDialect) GetPlaceholder(index int) string {
	return fmt.Sprintf("$%d", index)
}

func (d *PostgreSQLDialect) GetCurrentDateFunction() string {
	return "CURRENT_DATE"
}

func (d *PostgreSQLDialect) Concat(parts ...string) string {
	return "(" + strings.Join(parts, " || ") + ")"
}

func (d *PostgreSQLDialect) GetDriverName() string {
	return "pgx"
}
