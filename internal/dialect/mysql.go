package dialect

import (
	"fmt"
	"strings"
)

// MySQLDialect implements the MySQL dialect
type MySQLDialect struct{}

func (d *MySQLDialect) Name() string {
	return "mysql"
}

func (d *MySQLDialect) QuoteIdentifier(name string) string {
	return fmt.Sprintf("`%s`", strings.ReplaceAll(name, "`", "``"))
}

func (d *MySQLDialect) MapType(logicalType string, isNullable bool) string {
	var sqlType string
	switch strings.ToLower(logicalType) {
	case "string":
		sqlType = "VARCHAR(191)" // utf8mb4 index limit
	case "int":
		sqlType = "INT"
	case "bigint":
		sqlType = "BIGINT"
	case "decimal":
		sqlType = "DECIMAL(10, 2)"
	case "date":
		sqlType = "DATE"
	default:
		sqlType = "VARCHAR(191)"
	}
	if !isNullable {
		sqlType += " NOT NULL"
	}
	return sqlType
}

func (d *MySQLDialect) GetPlaceholder(index int) string {
	return "?"
}

func (d *MySQLDialect) GetCurrentDateFunction() string {
	return "(CURRENT_DATE)"
}

// Concat uses CONCAT since || is logical OR unless PIPES_AS_CONCAT is set.
func (d *MySQLDialect) Concat(parts ...string) string {
	return "CONCAT(" + strings.Join(parts, ", ") + ")"
}

func (d *MySQLDialect) GetDriverName() string {
	return "mysql"
}
