package testing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/carlosnayan/hrmanager/internal/dialect"
	"github.com/carlosnayan/hrmanager/internal/driver"
)

// JobPeriod is one job_history row. Dates are "YYYY-MM-DD"; an empty End
// stores NULL, meaning the period is ongoing.
type JobPeriod struct {
	EmployeeID int64
	Start      string
	End        string
	JobID      string
}

// InsertJobHistory writes periods into job_history
func InsertJobHistory(t *testing.T, db driver.Pool, d dialect.Dialect, periods ...JobPeriod) {
	t.Helper()

	cols := []string{"employee_id", "start_date", "end_date", "job_id"}
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.QuoteIdentifier(c)
	}
	stmt := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteIdentifier(jobHistoryTable.name),
		strings.Join(quoted, ", "),
		strings.Join(dialect.Placeholders(d, 1, len(cols)), ", "),
	)

	for _, p := range periods {
		var end any
		if p.End != "" {
			end = p.End
		}
		Exec(t, db, stmt, p.EmployeeID, p.Start, end, p.JobID)
	}
}

// CleanTestData deletes every row, children first
func CleanTestData(t *testing.T, db driver.Pool, d dialect.Dialect) {
	t.Helper()
	for i := len(schema) - 1; i >= 0; i-- {
		Exec(t, db, fmt.Sprintf("DELETE FROM %s", d.QuoteIdentifier(schema[i].name)))
	}
}
