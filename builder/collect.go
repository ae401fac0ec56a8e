package builder

import (
	"github.com/carlosnayan/hrmanager/internal/driver"
	"github.com/carlosnayan/hrmanager/internal/errors"
	"github.com/carlosnayan/hrmanager/internal/limits"
)

// CollectRows scans every row with scan and closes rows. It stops with
// ErrTooManyRows once limits.MaxScanRows is exceeded.
func CollectRows[T any](rows driver.Rows, scan func(driver.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		if len(out) >= limits.MaxScanRows {
			return nil, errors.Wrapf(errors.ErrTooManyRows, "more than %d rows", limits.MaxScanRows)
		}
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
