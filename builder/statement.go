package builder

import (
	"fmt"
	"slices"
	"strings"

	"github.com/carlosnayan/hrmanager/internal/dialect"
)

// Statements renders the parameterized SQL for one table. Columns are
// always listed explicitly and values are always bound through placeholders.
// Callers are responsible for only passing trusted column names.
type Statements struct {
	dialect dialect.Dialect
	table   string
	columns []string
	key     string
}

// NewStatements creates the statement set for table. columns is the select
// and insert order; key is the primary key column.
func NewStatements(d dialect.Dialect, table string, columns []string, key string) *Statements {
	return &Statements{
		dialect: d,
		table:   table,
		columns: columns,
		key:     key,
	}
}

// Columns returns the select order
func (s *Statements) Columns() []string {
	return s.columns
}

// Find selects every row whose column equals the single parameter
func (s *Statements) Find(column string) string {
	return s.FindMatching(column)
}

// FindMatching selects every row where each column equals its parameter,
// parameters in argument order
func (s *Statements) FindMatching(columns ...string) string {
	conditions := make([]string, len(columns))
	for i, col := range columns {
		conditions[i] = fmt.Sprintf("%s = %s", s.quote(col), s.dialect.GetPlaceholder(i+1))
	}
	return fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY %s",
		s.selectList(""),
		s.quote(s.table),
		strings.Join(conditions, " AND "),
		s.quote(s.key),
	)
}

// UpdateWhereEquals sets column to the first parameter on every row where it
// equals the second
func (s *Statements) UpdateWhereEquals(column string) string {
	quoted := s.quote(column)
	return fmt.Sprintf(
		"UPDATE %s SET %s = %s WHERE %s = %s",
		s.quote(s.table),
		quoted,
		s.dialect.GetPlaceholder(1),
		quoted,
		s.dialect.GetPlaceholder(2),
	)
}

// UpdateWhereConcat sets setColumns from the leading parameters on every row
// where the concatenation of matchColumns joined by sep equals the last one
func (s *Statements) UpdateWhereConcat(setColumns, matchColumns []string, sep string) string {
	assignments := make([]string, len(setColumns))
	for i, col := range setColumns {
		assignments[i] = fmt.Sprintf("%s = %s", s.quote(col), s.dialect.GetPlaceholder(i+1))
	}

	parts := make([]string, 0, 2*len(matchColumns)-1)
	literal := "'" + strings.ReplaceAll(sep, "'", "''") + "'"
	for i, col := range matchColumns {
		if i > 0 {
			parts = append(parts, literal)
		}
		parts = append(parts, s.quote(col))
	}

	return fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = %s",
		s.quote(s.table),
		strings.Join(assignments, ", "),
		s.dialect.Concat(parts...),
		s.dialect.GetPlaceholder(len(setColumns)+1),
	)
}

// SelectAll selects every row ordered by key
func (s *Statements) SelectAll() string {
	return fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s",
		s.selectList(""),
		s.quote(s.table),
		s.quote(s.key),
	)
}

// SelectByKey selects the row whose key equals the single parameter
func (s *Statements) SelectByKey() string {
	return fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = %s",
		s.selectList(""),
		s.quote(s.table),
		s.quote(s.key),
		s.dialect.GetPlaceholder(1),
	)
}

// Insert writes every column in select order. A column listed in fallbacks
// is written as COALESCE(param, fallback), so a NULL parameter takes the
// store-side default expression.
func (s *Statements) Insert(fallbacks map[string]string) string {
	quoted := make([]string, len(s.columns))
	values := make([]string, len(s.columns))
	for i, col := range s.columns {
		quoted[i] = s.quote(col)
		placeholder := s.dialect.GetPlaceholder(i + 1)
		if fallback, ok := fallbacks[col]; ok {
			values[i] = fmt.Sprintf("COALESCE(%s, %s)", placeholder, fallback)
			continue
		}
		values[i] = placeholder
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		s.quote(s.table),
		strings.Join(quoted, ", "),
		strings.Join(values, ", "),
	)
}

// UpdateByKey writes every non-key column; the key is the last parameter.
// Columns named in keep are written as COALESCE(param, column), so a NULL
// parameter leaves the stored value untouched.
func (s *Statements) UpdateByKey(keep ...string) string {
	var assignments []string
	index := 1
	for _, col := range s.columns {
		if col == s.key {
			continue
		}
		quoted := s.quote(col)
		value := s.dialect.GetPlaceholder(index)
		if slices.Contains(keep, col) {
			value = fmt.Sprintf("COALESCE(%s, %s)", value, quoted)
		}
		assignments = append(assignments, fmt.Sprintf("%s = %s", quoted, value))
		index++
	}
	return fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = %s",
		s.quote(s.table),
		strings.Join(assignments, ", "),
		s.quote(s.key),
		s.dialect.GetPlaceholder(index),
	)
}

// DeleteByKey deletes the row whose key equals the single parameter
func (s *Statements) DeleteByKey() string {
	return fmt.Sprintf(
		"DELETE FROM %s WHERE %s = %s",
		s.quote(s.table),
		s.quote(s.key),
		s.dialect.GetPlaceholder(1),
	)
}

// RangeJoin describes a child table holding [start, end] periods per row
type RangeJoin struct {
	Table       string
	ForeignKey  string
	StartColumn string
	EndColumn   string
}

// Overlapping selects the distinct rows having at least one period in join
// that overlaps the closed interval given by the parameters
// (rangeEnd, rangeStart, rangeStart). A period with a NULL end is open and
// overlaps when it starts on or before rangeEnd and rangeStart is not in the
// future.
func (s *Statements) Overlapping(join RangeJoin) string {
	const parent, child = "p", "c"

	start := child + "." + s.quote(join.StartColumn)
	end := child + "." + s.quote(join.EndColumn)

	return fmt.Sprintf(
		"SELECT DISTINCT %s FROM %s %s JOIN %s %s ON %s.%s = %s.%s "+
			"WHERE %s <= %s AND ((%s IS NOT NULL AND %s >= %s) OR (%s IS NULL AND %s <= %s)) "+
			"ORDER BY %s.%s",
		s.selectList(parent),
		s.quote(s.table), parent,
		s.quote(join.Table), child,
		child, s.quote(join.ForeignKey), parent, s.quote(s.key),
		start, s.dialect.GetPlaceholder(1),
		end, end, s.dialect.GetPlaceholder(2),
		end, s.dialect.GetPlaceholder(3), s.dialect.GetCurrentDateFunction(),
		parent, s.quote(s.key),
	)
}

func (s *Statements) quote(name string) string {
	return s.dialect.QuoteIdentifier(name)
}

func (s *Statements) selectList(alias string) string {
	quoted := make([]string, len(s.columns))
	for i, col := range s.columns {
		quoted[i] = s.quote(col)
		if alias != "" {
			quoted[i] = alias + "." + quoted[i]
		}
	}
	return strings.Join(quoted, ", ")
}
